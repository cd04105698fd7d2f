package pickuprapm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pickuprapm "github.com/naismith-nerds/go-pickup-rapm/pkg/pickup-rapm"
)

func statsFor(stats []pickuprapm.PlayerStats, player string) *pickuprapm.PlayerStats {
	for i := range stats {
		if stats[i].Player == player {
			return &stats[i]
		}
	}
	return nil
}

func TestComputePlayerStats(t *testing.T) {
	games := pickuprapm.NormalizeGames([]pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 21, 15), // A wins by 6
		row("2024-01-01", rosterA, rosterB, 17, 21), // B wins by 4
		row("2024-01-03", rosterA, rosterB, 21, 10), // A wins by 11
	})

	stats := pickuprapm.ComputePlayerStats(games)
	require.Len(t, stats, 10)

	p1 := statsFor(stats, "P1")
	require.NotNil(t, p1)
	assert.Equal(t, 3, p1.GamesPlayed)
	assert.Equal(t, 2, p1.DaysPlayed)
	assert.Equal(t, 2, p1.Wins)
	assert.Equal(t, 1, p1.Losses)
	assert.InDelta(t, 2.0/3.0, p1.WinPct, 1e-12)
	// (+6 - 4 + 11) / 3
	assert.InDelta(t, 13.0/3.0, p1.AvgScoreDiff, 1e-12)

	p6 := statsFor(stats, "P6")
	require.NotNil(t, p6)
	assert.Equal(t, 1, p6.Wins)
	assert.InDelta(t, -13.0/3.0, p6.AvgScoreDiff, 1e-12)
}

func TestComputePlayerStatsTieCountsAsLoss(t *testing.T) {
	games := pickuprapm.NormalizeGames([]pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 18, 18),
	})

	stats := pickuprapm.ComputePlayerStats(games)
	for _, playerStats := range stats {
		assert.Equal(t, 0, playerStats.Wins)
		assert.Equal(t, 1, playerStats.Losses)
	}
}

func TestMergePlayerRatingsTierFallback(t *testing.T) {
	games := pickuprapm.NormalizeGames([]pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 21, 15),
	})
	stats := pickuprapm.ComputePlayerStats(games)

	ratings := []pickuprapm.PlayerRating{
		{Player: "P1", Rating: 2.5},
		{Player: "Tier 1", Rating: -0.75},
	}
	tiers := map[string]string{"P6": "Tier 1", "P7": "Tier 2"}

	merged := pickuprapm.MergePlayerRatings(stats, ratings, tiers)

	p1 := statsFor(merged, "P1")
	require.NotNil(t, p1)
	assert.Equal(t, 2.5, p1.Rating)
	assert.False(t, p1.TieredRating)

	p6 := statsFor(merged, "P6")
	require.NotNil(t, p6)
	assert.Equal(t, -0.75, p6.Rating)
	assert.True(t, p6.TieredRating)

	// Mapped to a tier that was never rated: keeps zero, not flagged.
	p7 := statsFor(merged, "P7")
	require.NotNil(t, p7)
	assert.Zero(t, p7.Rating)
	assert.False(t, p7.TieredRating)

	// Sorted by rating descending.
	assert.Equal(t, "P1", merged[0].Player)
}
