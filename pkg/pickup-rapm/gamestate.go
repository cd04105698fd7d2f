package pickuprapm

import "sort"

// fullGameScore is the score a game runs to when nobody is in a hurry.
// Winning below it means the game was cut short.
const fullGameScore = 21

// AnnotateGameStates derives ClockInEffect and StartingPossession for every
// game and returns a new slice; the input is not modified. Both signals are
// sequential within a calendar date and never carry across dates.
//
// The clock rule: a shot clock is adopted for a game if that game was short,
// if either of the day's first two games was short, or if any earlier game
// that day was short. The rule is suspended for the day's final game when it
// nonetheless reaches a full score, overriding everything before it.
//
// Starting possession: the side retaining more players from the previous
// game's winning roster is assumed to take the ball first. The day's first
// game, retention ties, and games following a tied (Error) result are all
// Unknown.
func AnnotateGameStates(games []Game) []Game {
	annotated := make([]Game, len(games))
	copy(annotated, games)

	for _, dayIdx := range groupByDate(annotated) {
		annotateClock(annotated, dayIdx)
		annotatePossession(annotated, dayIdx)
	}

	return annotated
}

// groupByDate collects slice indices per date, each group ordered by GameNum.
// Dates are returned in ascending order for deterministic processing.
func groupByDate(games []Game) [][]int {
	byDate := make(map[string][]int)
	for i, game := range games {
		byDate[game.Date] = append(byDate[game.Date], i)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([][]int, 0, len(dates))
	for _, date := range dates {
		idx := byDate[date]
		sort.Slice(idx, func(a, b int) bool {
			return games[idx[a]].GameNum < games[idx[b]].GameNum
		})
		groups = append(groups, idx)
	}

	return groups
}

func annotateClock(games []Game, dayIdx []int) {
	earlyShortDay := false
	for pos, i := range dayIdx {
		if pos < 2 && isShort(games[i]) {
			earlyShortDay = true
		}
	}

	priorShort := false
	for _, i := range dayIdx {
		if isShort(games[i]) {
			priorShort = true
		}
		games[i].ClockInEffect = isShort(games[i]) || earlyShortDay || priorShort
	}

	// The override comes last: a full-score final game means the clock
	// pressure had lifted, regardless of how the day went.
	last := dayIdx[len(dayIdx)-1]
	if games[last].WinningScore >= fullGameScore {
		games[last].ClockInEffect = false
	}
}

func isShort(game Game) bool {
	return game.WinningScore < fullGameScore
}

func annotatePossession(games []Game, dayIdx []int) {
	for pos, i := range dayIdx {
		if pos == 0 {
			games[i].StartingPossession = PossessionUnknown
			continue
		}
		prev := games[dayIdx[pos-1]]
		games[i].StartingPossession = inferPossession(games[i], prev)
	}
}

func inferPossession(game, prev Game) Possession {
	var winningRoster [TeamSize]string
	switch prev.Winner {
	case WinnerA:
		winningRoster = prev.TeamA
	case WinnerB:
		winningRoster = prev.TeamB
	default:
		// Tied previous game: no winning side to retain from.
		return PossessionUnknown
	}

	winners := make(map[string]bool, TeamSize)
	for _, player := range winningRoster {
		if player != "" {
			winners[player] = true
		}
	}

	retainedA := countRetained(game.TeamA, winners)
	retainedB := countRetained(game.TeamB, winners)

	switch {
	case retainedA > retainedB:
		return PossessionA
	case retainedB > retainedA:
		return PossessionB
	default:
		return PossessionUnknown
	}
}

func countRetained(roster [TeamSize]string, winners map[string]bool) int {
	count := 0
	for _, player := range roster {
		if winners[player] {
			count++
		}
	}
	return count
}
