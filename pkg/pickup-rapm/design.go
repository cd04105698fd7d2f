package pickuprapm

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrInsufficientData means no regression can be formed from the input:
// there are no games or no player identities to rate.
var ErrInsufficientData = errors.New("insufficient data: need at least one game and one player identity")

// DesignMatrix is the game-by-player signed incidence matrix and its target
// vector. Row i corresponds to GameKeys[i]; column j to Players[j]. Entries
// are +1 for a team-A slot, -1 for team-B, and net out when tier
// substitution puts the same identity on both sides of one game.
type DesignMatrix struct {
	Players  []string  // Column identities, sorted lexically
	GameKeys []GameKey // Row identities, sorted by (Date, GameNum)
	X        *mat.Dense
	Y        []float64 // a_score - b_score per row
}

// GameKey identifies one game's row in the design matrix.
type GameKey struct {
	Date    string
	GameNum int
}

// BuildDesignMatrix projects games into the incidence matrix and target
// vector used by the ridge fit. Games and identities each get a stable index:
// games sorted by (Date, GameNum), identities sorted lexically. The same
// ordering is used for X rows and Y entries.
func BuildDesignMatrix(games []Game) (*DesignMatrix, error) {
	if len(games) == 0 {
		return nil, ErrInsufficientData
	}

	ordered := make([]Game, len(games))
	copy(ordered, games)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].GameNum < ordered[j].GameNum
	})

	playerSet := make(map[string]bool)
	for _, game := range ordered {
		for _, player := range game.TeamA {
			if player != "" {
				playerSet[player] = true
			}
		}
		for _, player := range game.TeamB {
			if player != "" {
				playerSet[player] = true
			}
		}
	}
	if len(playerSet) == 0 {
		return nil, ErrInsufficientData
	}

	players := make([]string, 0, len(playerSet))
	for player := range playerSet {
		players = append(players, player)
	}
	sort.Strings(players)

	playerToCol := make(map[string]int, len(players))
	for col, player := range players {
		playerToCol[player] = col
	}

	x := mat.NewDense(len(ordered), len(players), nil)
	y := make([]float64, len(ordered))
	keys := make([]GameKey, len(ordered))

	for row, game := range ordered {
		keys[row] = GameKey{Date: game.Date, GameNum: game.GameNum}
		y[row] = float64(game.AScore - game.BScore)

		// Contributions accumulate so a tiered identity appearing on both
		// sides nets out rather than being deduplicated.
		for _, player := range game.TeamA {
			if player != "" {
				col := playerToCol[player]
				x.Set(row, col, x.At(row, col)+1)
			}
		}
		for _, player := range game.TeamB {
			if player != "" {
				col := playerToCol[player]
				x.Set(row, col, x.At(row, col)-1)
			}
		}
	}

	return &DesignMatrix{
		Players:  players,
		GameKeys: keys,
		X:        x,
		Y:        y,
	}, nil
}
