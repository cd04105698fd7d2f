package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	pickuprapm "github.com/naismith-nerds/go-pickup-rapm/pkg/pickup-rapm"
)

// Synthetic player pool for generated fixtures. Skills are drawn per run so
// the fitted ratings have something real to recover.
var fixtureNames = []string{
	"Alex", "Ben", "Carlos", "Dan", "Eli", "Frank", "Gabe", "Henry",
	"Isaiah", "Jake", "Kevin", "Liam", "Marcus", "Nate", "Omar", "Pete",
	"Quinn", "Ray", "Sam", "Tom", "Victor", "Will", "Xavier", "Zach",
}

// generateFixtures writes synthetic game and tier data for the demo. The
// generator plays out run days with a shared player pool: each day a subset
// of the pool shows up, rosters are drafted snake-style by skill, and scores
// follow team quality plus noise. Some days run short games, some rows are
// left with a tied or missing score so normalization has something to chew
// on. Output is deterministic per seed.
func generateFixtures(logger zerolog.Logger, seed int64, days int, gamesPath, tiersPath string) error {
	rng := rand.New(rand.NewSource(seed))

	skills := make(map[string]float64, len(fixtureNames))
	for _, name := range fixtureNames {
		skills[name] = rng.NormFloat64() * 1.5
	}

	var rows []pickuprapm.RawGameRow
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for day := 0; day < days; day++ {
		// Runs happen every two or three days.
		date = date.AddDate(0, 0, 2+rng.Intn(2))
		dateStr := date.Format("2006-01-02")

		attendees := pickAttendees(rng)
		numGames := 3 + rng.Intn(4)
		shortDay := rng.Float64() < 0.3

		for g := 0; g < numGames; g++ {
			teamA, teamB := draftRosters(rng, attendees, skills)

			target := 21
			if shortDay && rng.Float64() < 0.6 {
				target = 15
			}
			aScore, bScore := playOut(rng, teamA, teamB, skills, target)

			row := pickuprapm.RawGameRow{
				Date:   dateStr,
				TeamA:  teamA,
				TeamB:  teamB,
				AScore: &aScore,
				BScore: &bScore,
			}

			// Occasional recording mishaps, as in the real sheet.
			switch {
			case rng.Float64() < 0.02:
				row.BScore = nil
			case rng.Float64() < 0.02:
				tied := aScore
				row.BScore = &tied
			}

			rows = append(rows, row)
		}
	}

	tiers := assignTiers(skills)

	if err := writeJSON(gamesPath, rows); err != nil {
		return err
	}
	if err := writeJSON(tiersPath, tiers); err != nil {
		return err
	}

	logger.Info().
		Int("rows", len(rows)).
		Int("players", len(fixtureNames)).
		Str("games", gamesPath).
		Str("tiers", tiersPath).
		Msg("wrote synthetic fixtures")
	return nil
}

// pickAttendees selects the 10-16 players who showed up for a day.
func pickAttendees(rng *rand.Rand) []string {
	perm := rng.Perm(len(fixtureNames))
	count := 10 + rng.Intn(7)

	attendees := make([]string, count)
	for i := 0; i < count; i++ {
		attendees[i] = fixtureNames[perm[i]]
	}
	return attendees
}

// draftRosters picks 10 players from the day's attendees and splits them
// snake-style by skill, the way captains roughly balance pickup teams.
func draftRosters(rng *rand.Rand, attendees []string, skills map[string]float64) (teamA, teamB [pickuprapm.TeamSize]string) {
	perm := rng.Perm(len(attendees))
	picked := make([]string, 2*pickuprapm.TeamSize)
	for i := range picked {
		picked[i] = attendees[perm[i]]
	}

	sort.Slice(picked, func(i, j int) bool {
		return skills[picked[i]] > skills[picked[j]]
	})

	// Snake order: A B B A A B B A A B
	slotsA, slotsB := 0, 0
	for i, player := range picked {
		if (i+1)/2%2 == 0 {
			teamA[slotsA] = player
			slotsA++
		} else {
			teamB[slotsB] = player
			slotsB++
		}
	}
	return teamA, teamB
}

// playOut produces a final score for a game to the given target. The
// stronger team wins more often and by wider margins, with noise.
func playOut(rng *rand.Rand, teamA, teamB [pickuprapm.TeamSize]string, skills map[string]float64, target int) (aScore, bScore int) {
	var qualityA, qualityB float64
	for i := 0; i < pickuprapm.TeamSize; i++ {
		qualityA += skills[teamA[i]]
		qualityB += skills[teamB[i]]
	}

	diff := qualityA - qualityB + rng.NormFloat64()*3
	margin := int(math.Abs(diff)) + 1
	if margin >= target {
		margin = target - 1
	}

	if diff >= 0 {
		return target, target - margin
	}
	return target - margin, target
}

// assignTiers buckets every pool player into one of three tiers by skill.
// Tier identities stand in for these players when they have too few games
// for an individual rating.
func assignTiers(skills map[string]float64) []tierEntry {
	players := make([]string, 0, len(skills))
	for name := range skills {
		players = append(players, name)
	}
	sort.Slice(players, func(i, j int) bool {
		return skills[players[i]] > skills[players[j]]
	})

	entries := make([]tierEntry, len(players))
	for i, name := range players {
		tier := "Tier 1"
		switch {
		case i >= 2*len(players)/3:
			tier = "Tier 3"
		case i >= len(players)/3:
			tier = "Tier 2"
		}
		entries[i] = tierEntry{Player: name, Tier: tier}
	}
	return entries
}

func writeJSON(path string, value any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
