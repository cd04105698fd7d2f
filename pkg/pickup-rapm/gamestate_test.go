package pickuprapm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pickuprapm "github.com/naismith-nerds/go-pickup-rapm/pkg/pickup-rapm"
)

func annotate(t *testing.T, rows []pickuprapm.RawGameRow) []pickuprapm.Game {
	t.Helper()
	return pickuprapm.AnnotateGameStates(pickuprapm.NormalizeGames(rows))
}

func clockFlags(games []pickuprapm.Game) []bool {
	flags := make([]bool, len(games))
	for i, game := range games {
		flags[i] = game.ClockInEffect
	}
	return flags
}

func TestClockShortGameCarriesForward(t *testing.T) {
	// Game 1 short, game 2 inherits the prior short, game 3 is the day's
	// last game and reaches a full score, so the override wins.
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 18, 15),
		row("2024-01-01", rosterA, rosterB, 22, 20),
		row("2024-01-01", rosterA, rosterB, 22, 17),
	})

	assert.Equal(t, []bool{true, true, false}, clockFlags(games))
}

func TestClockEarlyShortDayIsRetroactive(t *testing.T) {
	// Game 2 short makes the whole day an early-short day, so game 1 gets
	// the clock even though nothing short had happened yet when it was
	// played. Game 2 itself is last but short, so no override.
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 21, 19),
		row("2024-01-01", rosterA, rosterB, 15, 10),
	})

	assert.Equal(t, []bool{true, true}, clockFlags(games))
}

func TestClockFullDayNoClock(t *testing.T) {
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 21, 19),
		row("2024-01-01", rosterA, rosterB, 21, 15),
		row("2024-01-01", rosterA, rosterB, 23, 21),
	})

	assert.Equal(t, []bool{false, false, false}, clockFlags(games))
}

func TestClockLastGameOverride(t *testing.T) {
	// A third game short makes games 3 onward clocked, but the final game
	// going to 21 suspends the rule for that game only.
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 21, 18),
		row("2024-01-01", rosterA, rosterB, 21, 12),
		row("2024-01-01", rosterA, rosterB, 15, 12),
		row("2024-01-01", rosterA, rosterB, 21, 16),
	})

	assert.Equal(t, []bool{false, false, true, false}, clockFlags(games))
}

func TestClockSingleShortGameDay(t *testing.T) {
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 15, 10),
	})

	// Last game of the day, but short, so no override applies.
	assert.Equal(t, []bool{true}, clockFlags(games))
}

func TestClockDaysAreIndependent(t *testing.T) {
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 15, 10),
		row("2024-01-03", rosterA, rosterB, 21, 19),
	})

	// The short game on the 1st must not leak into the 3rd.
	assert.True(t, games[0].ClockInEffect)
	assert.False(t, games[1].ClockInEffect)
}

func TestPossessionFirstGameAlwaysUnknown(t *testing.T) {
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 21, 15),
		row("2024-01-03", rosterA, rosterB, 21, 15),
	})

	for _, game := range games {
		assert.Equal(t, pickuprapm.PossessionUnknown, game.StartingPossession,
			"game 1 of %s", game.Date)
	}
}

func TestPossessionFollowsRetainedWinners(t *testing.T) {
	// P1-P5 win game 1. In game 2, team A retains 2 of them and team B
	// retains 3, so team B starts with the ball.
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", team("P1", "P2", "P3", "P4", "P5"), team("P6", "P7", "P8", "P9", "P10"), 21, 15),
		row("2024-01-01", team("P1", "P2", "P6", "P7", "P8"), team("P3", "P4", "P5", "P9", "P10"), 18, 21),
	})

	require.Len(t, games, 2)
	assert.Equal(t, pickuprapm.PossessionB, games[1].StartingPossession)
}

func TestPossessionRetentionTieUnknown(t *testing.T) {
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", team("P1", "P2", "P3", "P4", "P5"), team("P6", "P7", "P8", "P9", "P10"), 21, 15),
		// Winners split 2-2 across the new teams (P5 sits out, P11 joins).
		row("2024-01-01", team("P1", "P2", "P6", "P7", "P8"), team("P3", "P4", "P9", "P10", "P11"), 21, 18),
	})

	assert.Equal(t, pickuprapm.PossessionUnknown, games[1].StartingPossession)
}

func TestPossessionAfterTiedGameUnknown(t *testing.T) {
	games := annotate(t, []pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 18, 18),
		row("2024-01-01", rosterA, rosterB, 21, 15),
	})

	require.Equal(t, pickuprapm.WinnerError, games[0].Winner)
	assert.Equal(t, pickuprapm.PossessionUnknown, games[1].StartingPossession)
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	games := pickuprapm.NormalizeGames([]pickuprapm.RawGameRow{
		row("2024-01-01", rosterA, rosterB, 15, 10),
	})

	_ = pickuprapm.AnnotateGameStates(games)
	assert.False(t, games[0].ClockInEffect, "input slice must stay untouched")
}
