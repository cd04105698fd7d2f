package pickuprapm

import (
	"fmt"
	"time"
)

// ComputeRatings runs the full pipeline: normalize raw rows, infer per-game
// clock and possession state, substitute tiers, build the design matrix,
// pick a regularization strength and fit the final ridge model.
// This is the main entry point for the pickup-rapm package.
func ComputeRatings(request RatingsRequest) (*RatingsResult, error) {
	startTime := time.Now()

	request.Options = applyDefaults(request.Options)

	if err := validateRequest(request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	games := NormalizeGames(request.Games)
	games = AnnotateGameStates(games)

	if request.Options.Debug {
		fmt.Printf("🏀 Normalized %d games (%d raw rows, missing scores dropped)\n",
			len(games), len(request.Games))
	}

	gamesPlayed := request.GamesPlayed
	if gamesPlayed == nil {
		gamesPlayed = CountGamesPlayed(games)
	}

	fitGames := games
	if request.Options.UseTiers {
		substituted, err := SubstituteTiers(games, request.Tiers, gamesPlayed, request.Options.MinGamesToNotTier)
		if err != nil {
			return nil, fmt.Errorf("tier substitution failed: %w", err)
		}
		fitGames = substituted
	}

	dm, err := BuildDesignMatrix(fitGames)
	if err != nil {
		return nil, err
	}

	if request.Options.Debug {
		fmt.Printf("🔧 Design matrix: %d games × %d identities\n", len(dm.GameKeys), len(dm.Players))
	}

	var bestLambda float64
	var search []LambdaScore
	if request.Options.DefaultLambda {
		bestLambda = defaultLambdaFor(request.Options.UseTiers)
		if request.Options.Debug {
			fmt.Printf("⏭️  Skipping cross-validation, using stock lambda=%g\n", bestLambda)
		}
	} else {
		if request.Options.Debug {
			fmt.Printf("🔍 Cross-validating %d candidate strengths (%d folds × %d seeds)...\n",
				len(request.Options.LambdaCandidates), request.Options.KFolds, len(request.Options.Seeds))
		}
		bestLambda, search, err = SelectLambda(dm.X, dm.Y,
			request.Options.LambdaCandidates, request.Options.KFolds, request.Options.Seeds,
			request.Options.Debug)
		if err != nil {
			return nil, fmt.Errorf("regularization selection failed: %w", err)
		}
	}

	ratings, err := FitRatings(dm, bestLambda)
	if err != nil {
		return nil, err
	}

	stats := MergePlayerRatings(ComputePlayerStats(games), ratings, request.Tiers)
	spreads := ComputeSpreads(games, ratings, request.Tiers)

	return &RatingsResult{
		Games:          games,
		Ratings:        ratings,
		BestLambda:     bestLambda,
		LambdaSearch:   search,
		PlayerStats:    stats,
		Spreads:        spreads,
		ProcessingTime: time.Since(startTime),
		GamesProcessed: len(games),
	}, nil
}

// applyDefaults fills unset option fields. A fully zero options struct gets
// the stock configuration; otherwise only zero-valued knobs are defaulted.
// UseTiers is a plain bool, so when any option is set explicitly the caller
// must also set UseTiers explicitly.
func applyDefaults(opts RatingsOptions) RatingsOptions {
	if isZeroOptions(opts) {
		return DefaultRatingsOptions()
	}

	defaults := DefaultRatingsOptions()
	if opts.MinGamesToNotTier == 0 {
		opts.MinGamesToNotTier = defaults.MinGamesToNotTier
	}
	if opts.LambdaCandidates == nil {
		opts.LambdaCandidates = defaults.LambdaCandidates
	}
	if opts.KFolds == 0 {
		opts.KFolds = defaults.KFolds
	}
	if opts.Seeds == nil {
		opts.Seeds = defaults.Seeds
	}
	return opts
}

func isZeroOptions(opts RatingsOptions) bool {
	return !opts.UseTiers &&
		opts.MinGamesToNotTier == 0 &&
		!opts.DefaultLambda &&
		opts.LambdaCandidates == nil &&
		opts.KFolds == 0 &&
		opts.Seeds == nil &&
		!opts.Debug
}
