package pickuprapm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	pickuprapm "github.com/naismith-nerds/go-pickup-rapm/pkg/pickup-rapm"
)

func TestFitRatingsClosedForm(t *testing.T) {
	// One column, two observations of 2: beta = X'y / (X'X + lambda)
	// = 4 / (2 + 2) = 1 exactly.
	dm := &pickuprapm.DesignMatrix{
		Players:  []string{"Solo"},
		GameKeys: []pickuprapm.GameKey{{Date: "2024-01-01", GameNum: 1}, {Date: "2024-01-01", GameNum: 2}},
		X:        mat.NewDense(2, 1, []float64{1, 1}),
		Y:        []float64{2, 2},
	}

	ratings, err := pickuprapm.FitRatings(dm, 2)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.InDelta(t, 1.0, ratings[0].Rating, 1e-12)
}

func TestFitRatingsSparseSystem(t *testing.T) {
	// Heavily regularized fit on a near-singular system: every rating is
	// finite, pulled toward zero, and the full set sums to zero because
	// each game row itself sums to zero.
	games := pickuprapm.NormalizeGames(leagueRows(4))
	dm, err := pickuprapm.BuildDesignMatrix(games)
	require.NoError(t, err)

	ratings, err := pickuprapm.FitRatings(dm, 100)
	require.NoError(t, err)
	require.Len(t, ratings, 12)

	sum := 0.0
	for _, rating := range ratings {
		require.False(t, math.IsNaN(rating.Rating) || math.IsInf(rating.Rating, 0))
		assert.Less(t, math.Abs(rating.Rating), 21.0)
		sum += rating.Rating
	}
	assert.InDelta(t, 0, sum, 1e-8)
}

func TestFitRatingsSortedDescending(t *testing.T) {
	games := pickuprapm.NormalizeGames(leagueRows(8))
	dm, err := pickuprapm.BuildDesignMatrix(games)
	require.NoError(t, err)

	ratings, err := pickuprapm.FitRatings(dm, 10)
	require.NoError(t, err)

	for i := 1; i < len(ratings); i++ {
		assert.GreaterOrEqual(t, ratings[i-1].Rating, ratings[i].Rating)
	}
}
