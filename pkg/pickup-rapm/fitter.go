package pickuprapm

import (
	"fmt"
	"sort"
)

// FitRatings runs the final no-intercept ridge fit on the full dataset at
// the chosen strength and reads one rating per column identity. Ratings are
// point estimates only; no standard errors are computed. The result is
// sorted descending by rating, with ties left in column (lexical) order.
func FitRatings(dm *DesignMatrix, lambda float64) ([]PlayerRating, error) {
	coef, err := fitRidge(dm.X, dm.Y, lambda)
	if err != nil {
		return nil, fmt.Errorf("final ridge fit: %w", err)
	}

	ratings := make([]PlayerRating, len(dm.Players))
	for col, player := range dm.Players {
		ratings[col] = PlayerRating{Player: player, Rating: coef[col]}
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Rating > ratings[j].Rating
	})

	return ratings, nil
}
