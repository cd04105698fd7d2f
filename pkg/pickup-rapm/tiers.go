package pickuprapm

import "fmt"

// CountGamesPlayed counts roster appearances per player across all games.
// Empty roster slots are ignored.
func CountGamesPlayed(games []Game) map[string]int {
	counts := make(map[string]int)
	for _, game := range games {
		for _, player := range game.TeamA {
			if player != "" {
				counts[player]++
			}
		}
		for _, player := range game.TeamB {
			if player != "" {
				counts[player]++
			}
		}
	}
	return counts
}

// SubstituteTiers replaces low-sample player identities with their tier
// label and returns a new slice; the input is not modified. A player is
// substituted only when mapped in tiers AND gamesPlayed[player] < minGames.
// Unmapped players and players at or above the threshold pass through
// unchanged, which also makes the substitution idempotent: the first pass
// removes the mapped players from the rosters, so a second pass finds
// nothing to replace.
//
// A tier label that collides with a raw player identity would silently alias
// two different populations, so that is rejected up front. The check runs
// against the rosters themselves, not gamesPlayed: a caller-supplied count
// table may omit players who nonetheless appear in games. A label already
// present in the rosters is a collision only when this pass would actually
// substitute a rostered player into it; label-only rosters (the output of a
// previous substitution) pass through untouched.
func SubstituteTiers(games []Game, tiers map[string]string, gamesPlayed map[string]int, minGames int) ([]Game, error) {
	rosterIdentities := make(map[string]bool)
	for _, game := range games {
		for _, player := range game.TeamA {
			if player != "" {
				rosterIdentities[player] = true
			}
		}
		for _, player := range game.TeamB {
			if player != "" {
				rosterIdentities[player] = true
			}
		}
	}

	substitutions := make(map[string]string)
	for player, tier := range tiers {
		if gamesPlayed[player] < minGames {
			substitutions[player] = tier
		}
	}

	for player, tier := range substitutions {
		if rosterIdentities[tier] && rosterIdentities[player] {
			return nil, fmt.Errorf("tier label %q for player %q collides with an existing player identity", tier, player)
		}
	}

	substituted := make([]Game, len(games))
	copy(substituted, games)

	for i := range substituted {
		for slot, player := range substituted[i].TeamA {
			if tier, ok := substitutions[player]; ok {
				substituted[i].TeamA[slot] = tier
			}
		}
		for slot, player := range substituted[i].TeamB {
			if tier, ok := substitutions[player]; ok {
				substituted[i].TeamB[slot] = tier
			}
		}
	}

	return substituted, nil
}
