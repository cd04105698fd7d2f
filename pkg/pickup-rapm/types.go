package pickuprapm

import "time"

// TeamSize is the fixed number of roster slots per side in a pickup game.
const TeamSize = 5

// Winner identifies which side won a game.
type Winner string

const (
	WinnerA Winner = "A"
	WinnerB Winner = "B"
	// WinnerError flags a tied score. Ties are impossible in a game played to
	// a target, so this is a data-quality signal rather than an outcome.
	WinnerError Winner = "Error"
)

// Possession identifies which side is inferred to have started with the ball.
type Possession string

const (
	PossessionA       Possession = "A"
	PossessionB       Possession = "B"
	PossessionUnknown Possession = "Unknown"
)

// RawGameRow represents one game as recorded in the source sheet: a date,
// ten roster slots and two scores. A nil score marks a row that was never
// filled in; such rows are dropped during normalization.
type RawGameRow struct {
	Date   string           `json:"date"` // YYYY-MM-DD
	TeamA  [TeamSize]string `json:"team_a"`
	TeamB  [TeamSize]string `json:"team_b"`
	AScore *int             `json:"a_score"`
	BScore *int             `json:"b_score"`
}

// Game is a normalized game record. GameNum is a 1-based sequence within the
// game's calendar date, so (Date, GameNum) identifies the game uniquely.
// ClockInEffect and StartingPossession are filled in by AnnotateGameStates.
type Game struct {
	Date         string           `json:"date"`
	GameNum      int              `json:"game_num"`
	TeamA        [TeamSize]string `json:"team_a"`
	TeamB        [TeamSize]string `json:"team_b"`
	AScore       int              `json:"a_score"`
	BScore       int              `json:"b_score"`
	Winner       Winner           `json:"winner"`
	ScoreDiff    int              `json:"score_diff"`    // b_score - a_score
	WinningScore int              `json:"winning_score"` // max(a_score, b_score)

	ClockInEffect      bool       `json:"clock_in_effect"`
	StartingPossession Possession `json:"starting_possession"`
}

// RatingsOptions configures tier substitution and the ridge regression fit.
type RatingsOptions struct {
	UseTiers          bool      `json:"use_tiers"`             // Substitute low-sample players with tier identities
	MinGamesToNotTier int       `json:"min_games_to_not_tier"` // Players below this count are tiered (default: 20)
	DefaultLambda     bool      `json:"default_lambda"`        // Skip cross-validation, use the stock lambda
	LambdaCandidates  []float64 `json:"lambda_candidates"`     // Ridge strengths searched by cross-validation
	KFolds            int       `json:"k_folds"`               // Cross-validation folds (default: 10)
	Seeds             []int64   `json:"seeds"`                 // Shuffle seeds averaged over (default: 0,11,21,42)
	Debug             bool      `json:"debug"`                 // Enable debug output during computation
}

// RatingsRequest contains everything needed to compute ratings.
type RatingsRequest struct {
	Games       []RawGameRow      `json:"games"`
	Tiers       map[string]string `json:"tiers,omitempty"`        // player -> tier label
	GamesPlayed map[string]int    `json:"games_played,omitempty"` // Optional; counted from rosters if nil
	Options     RatingsOptions    `json:"options"`
}

// PlayerRating is one identity's fitted coefficient. The identity may be a
// raw player or a tier label; the fit treats both uniformly.
type PlayerRating struct {
	Player string  `json:"player"`
	Rating float64 `json:"rating"`
}

// LambdaScore records the cross-validated error for one candidate strength.
type LambdaScore struct {
	Lambda   float64 `json:"lambda"`
	MeanRMSE float64 `json:"mean_rmse"`
}

// PlayerStats aggregates a player's record across all games, merged with
// their rating. TieredRating marks ratings inherited from a tier identity
// rather than fitted individually.
type PlayerStats struct {
	Player       string  `json:"player"`
	GamesPlayed  int     `json:"games_played"`
	DaysPlayed   int     `json:"days_played"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinPct       float64 `json:"win_pct"`
	AvgScoreDiff float64 `json:"avg_score_diff"` // From the player's team perspective
	Rating       float64 `json:"rating"`
	TieredRating bool    `json:"tiered_rating"`
}

// GameSpread is the rating-implied spread for one game alongside the actual
// result. Spread and DiffFromSpread follow the same b-minus-a convention as
// Game.ScoreDiff.
type GameSpread struct {
	Date           string  `json:"date"`
	GameNum        int     `json:"game_num"`
	AQuality       float64 `json:"a_quality"` // Sum of team A member ratings
	BQuality       float64 `json:"b_quality"`
	Spread         float64 `json:"spread"` // b_quality - a_quality
	ScoreDiff      int     `json:"score_diff"`
	DiffFromSpread float64 `json:"diff_from_spread"`
}

// RatingsResult contains the output of a full ratings run.
type RatingsResult struct {
	Games          []Game         `json:"games"`   // Normalized games annotated with clock/possession state
	Ratings        []PlayerRating `json:"ratings"` // Descending by rating
	BestLambda     float64        `json:"best_lambda"`
	LambdaSearch   []LambdaScore  `json:"lambda_search,omitempty"` // Empty when DefaultLambda was used
	PlayerStats    []PlayerStats  `json:"player_stats"`
	Spreads        []GameSpread   `json:"spreads"`
	ProcessingTime time.Duration  `json:"processing_time"`
	GamesProcessed int            `json:"games_processed"`
}

// DefaultRatingsOptions returns the stock engine configuration, matching the
// defaults the spreadsheet pipeline always ran with.
func DefaultRatingsOptions() RatingsOptions {
	return RatingsOptions{
		UseTiers:          true,
		MinGamesToNotTier: 20,
		DefaultLambda:     false,
		LambdaCandidates:  []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100},
		KFolds:            10,
		Seeds:             []int64{0, 11, 21, 42},
		Debug:             false,
	}
}

// defaultLambdaFor returns the stock ridge strength used when
// cross-validation is skipped. Tiered data is less sparse, so it needs less
// regularization.
func defaultLambdaFor(useTiers bool) float64 {
	if useTiers {
		return 25
	}
	return 100
}
