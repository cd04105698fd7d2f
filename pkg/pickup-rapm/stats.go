package pickuprapm

import "sort"

// ComputePlayerStats aggregates each player's record across all games:
// appearances, distinct days, wins, losses, win percentage and average
// per-game score differential from that player's team perspective. A tied
// game (WinnerError) counts as a loss for everyone in it. Ratings are not
// filled in here; MergePlayerRatings attaches them.
func ComputePlayerStats(games []Game) []PlayerStats {
	type accumulator struct {
		games     int
		wins      int
		diffTotal int
		days      map[string]bool
	}

	byPlayer := make(map[string]*accumulator)
	record := func(player string, game Game, team Winner) {
		if player == "" {
			return
		}
		acc := byPlayer[player]
		if acc == nil {
			acc = &accumulator{days: make(map[string]bool)}
			byPlayer[player] = acc
		}

		acc.games++
		acc.days[game.Date] = true
		if game.Winner == team {
			acc.wins++
		}

		// Team perspective: positive when the player's side outscored.
		if team == WinnerA {
			acc.diffTotal += game.AScore - game.BScore
		} else {
			acc.diffTotal += game.BScore - game.AScore
		}
	}

	for _, game := range games {
		for _, player := range game.TeamA {
			record(player, game, WinnerA)
		}
		for _, player := range game.TeamB {
			record(player, game, WinnerB)
		}
	}

	stats := make([]PlayerStats, 0, len(byPlayer))
	for player, acc := range byPlayer {
		stats = append(stats, PlayerStats{
			Player:       player,
			GamesPlayed:  acc.games,
			DaysPlayed:   len(acc.days),
			Wins:         acc.wins,
			Losses:       acc.games - acc.wins,
			WinPct:       float64(acc.wins) / float64(acc.games),
			AvgScoreDiff: float64(acc.diffTotal) / float64(acc.games),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Wins != stats[j].Wins {
			return stats[i].Wins > stats[j].Wins
		}
		if stats[i].Losses != stats[j].Losses {
			return stats[i].Losses < stats[j].Losses
		}
		return stats[i].AvgScoreDiff > stats[j].AvgScoreDiff
	})

	return stats
}

// MergePlayerRatings attaches fitted ratings to player stats. Players rated
// individually get their own coefficient; tiered players inherit their tier
// identity's coefficient and are flagged. Players with neither (no tier
// mapping and no column) keep a zero rating. The merged table is sorted by
// rating, then wins, then win percentage, all descending.
func MergePlayerRatings(stats []PlayerStats, ratings []PlayerRating, tiers map[string]string) []PlayerStats {
	ratingByIdentity := make(map[string]float64, len(ratings))
	for _, r := range ratings {
		ratingByIdentity[r.Player] = r.Rating
	}

	merged := make([]PlayerStats, len(stats))
	copy(merged, stats)

	for i := range merged {
		if rating, ok := ratingByIdentity[merged[i].Player]; ok {
			merged[i].Rating = rating
			continue
		}
		if tier, ok := tiers[merged[i].Player]; ok {
			if rating, ok := ratingByIdentity[tier]; ok {
				merged[i].Rating = rating
				merged[i].TieredRating = true
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Rating != merged[j].Rating {
			return merged[i].Rating > merged[j].Rating
		}
		if merged[i].Wins != merged[j].Wins {
			return merged[i].Wins > merged[j].Wins
		}
		return merged[i].WinPct > merged[j].WinPct
	})

	return merged
}
