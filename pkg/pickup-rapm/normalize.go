package pickuprapm

// NormalizeGames turns raw sheet rows into Game records. Rows with a missing
// score are dropped before numbering, so GameNum values for each date always
// form a contiguous 1..N run in input order. Tied scores are kept but flagged
// with WinnerError; callers decide whether to filter them.
func NormalizeGames(rows []RawGameRow) []Game {
	games := make([]Game, 0, len(rows))
	gameNums := make(map[string]int)

	for _, row := range rows {
		if row.AScore == nil || row.BScore == nil {
			continue
		}

		gameNums[row.Date]++

		game := Game{
			Date:               row.Date,
			GameNum:            gameNums[row.Date],
			TeamA:              row.TeamA,
			TeamB:              row.TeamB,
			AScore:             *row.AScore,
			BScore:             *row.BScore,
			Winner:             deriveWinner(*row.AScore, *row.BScore),
			ScoreDiff:          *row.BScore - *row.AScore,
			WinningScore:       maxScore(*row.AScore, *row.BScore),
			StartingPossession: PossessionUnknown,
		}

		games = append(games, game)
	}

	return games
}

func deriveWinner(aScore, bScore int) Winner {
	switch {
	case bScore > aScore:
		return WinnerB
	case bScore < aScore:
		return WinnerA
	default:
		return WinnerError
	}
}

func maxScore(a, b int) int {
	if a > b {
		return a
	}
	return b
}
