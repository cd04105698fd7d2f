package pickuprapm

// ComputeSpreads derives the rating-implied spread for each game and how far
// the actual result landed from it. Team quality is the sum of member
// ratings, falling back to the player's tier rating when the player was not
// rated individually; identities with no rating at all contribute zero.
// Spread uses the same b-minus-a convention as Game.ScoreDiff, so a positive
// spread favors team B.
func ComputeSpreads(games []Game, ratings []PlayerRating, tiers map[string]string) []GameSpread {
	ratingByIdentity := make(map[string]float64, len(ratings))
	for _, r := range ratings {
		ratingByIdentity[r.Player] = r.Rating
	}

	lookup := func(player string) float64 {
		if rating, ok := ratingByIdentity[player]; ok {
			return rating
		}
		if tier, ok := tiers[player]; ok {
			return ratingByIdentity[tier]
		}
		return 0
	}

	spreads := make([]GameSpread, 0, len(games))
	for _, game := range games {
		var aQuality, bQuality float64
		for _, player := range game.TeamA {
			if player != "" {
				aQuality += lookup(player)
			}
		}
		for _, player := range game.TeamB {
			if player != "" {
				bQuality += lookup(player)
			}
		}

		spread := bQuality - aQuality
		spreads = append(spreads, GameSpread{
			Date:           game.Date,
			GameNum:        game.GameNum,
			AQuality:       aQuality,
			BQuality:       bQuality,
			Spread:         spread,
			ScoreDiff:      game.ScoreDiff,
			DiffFromSpread: float64(game.ScoreDiff) - spread,
		})
	}

	return spreads
}
