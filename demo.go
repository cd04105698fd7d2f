package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	pickuprapm "github.com/naismith-nerds/go-pickup-rapm/pkg/pickup-rapm"
)

func main() {
	// Command line flags
	var (
		configPath    = flag.String("config", "", "Path to YAML model config (env RAPM_* overrides file values)")
		dataFile      = flag.String("data", "fixtures/games.json", "Path to game rows JSON file")
		tiersFile     = flag.String("tiers", "fixtures/tiers.json", "Path to player tiers JSON file")
		genGames      = flag.Bool("gen-games", false, "Generate synthetic fixture data into fixtures/ and exit")
		genSeed       = flag.Int64("gen-seed", 1, "Seed for fixture generation")
		genDays       = flag.Int("gen-days", 40, "Number of run days to generate")
		defaultLambda = flag.Bool("default-lambda", false, "Skip cross-validation and use the stock lambda")
		top           = flag.Int("top", 30, "Number of rating rows to display")
		debug         = flag.Bool("debug", false, "Enable debug output during computation")
		verbose       = flag.Bool("verbose", false, "Also display game annotations and spreads")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *genGames {
		if err := generateFixtures(logger, *genSeed, *genDays, *dataFile, *tiersFile); err != nil {
			logger.Fatal().Err(err).Msg("fixture generation failed")
		}
		return
	}

	options, err := loadModelOptions(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("config", *configPath).Msg("could not load model config")
	}
	options.DefaultLambda = options.DefaultLambda || *defaultLambda
	options.Debug = *debug

	rows, err := loadGameRows(*dataFile)
	if err != nil {
		logger.Fatal().Err(err).Str("data", *dataFile).
			Msg("could not load game data; try -gen-games to create sample fixtures")
	}
	logger.Info().Int("rows", len(rows)).Str("file", *dataFile).Msg("loaded game rows")

	tiers, err := loadTiers(*tiersFile)
	if err != nil {
		logger.Warn().Err(err).Str("tiers", *tiersFile).Msg("no tiers file, proceeding without tier substitution")
		options.UseTiers = false
	}

	result, err := pickuprapm.ComputeRatings(pickuprapm.RatingsRequest{
		Games:   rows,
		Tiers:   tiers,
		Options: options,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("ratings computation failed")
	}

	logger.Info().
		Int("games", result.GamesProcessed).
		Float64("lambda", result.BestLambda).
		Dur("elapsed", result.ProcessingTime).
		Msg("ratings computed")

	displayRatings(result, *top)
	if len(result.LambdaSearch) > 0 {
		displayLambdaSearch(result.LambdaSearch)
	}
	displayClockSummary(result.Games)
	if *verbose {
		displayGames(result.Games)
		displaySpreads(result.Spreads)
	}
}

// loadGameRows reads raw game rows from a JSON file.
func loadGameRows(path string) ([]pickuprapm.RawGameRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var rows []pickuprapm.RawGameRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding game rows from %s: %w", path, err)
	}
	return rows, nil
}

// tierEntry is the on-disk shape of one player's tier assignment.
type tierEntry struct {
	Player string `json:"player"`
	Tier   string `json:"tier"`
}

// loadTiers reads player tier assignments into a player -> tier map.
func loadTiers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []tierEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding tiers from %s: %w", path, err)
	}

	tiers := make(map[string]string, len(entries))
	for _, entry := range entries {
		tiers[entry.Player] = entry.Tier
	}
	return tiers, nil
}

func displayRatings(result *pickuprapm.RatingsResult, top int) {
	fmt.Printf("\n🏀 RAPM Ratings (lambda=%g)\n", result.BestLambda)
	fmt.Printf("%-4s %-20s %9s %6s %6s %7s %7s\n", "#", "Player", "Rating", "W", "L", "Win%", "Tiered")
	fmt.Println("--------------------------------------------------------------")

	shown := 0
	for _, stats := range result.PlayerStats {
		if shown >= top {
			break
		}
		shown++
		tiered := ""
		if stats.TieredRating {
			tiered = "yes"
		}
		fmt.Printf("%-4d %-20s %9.3f %6d %6d %6.1f%% %7s\n",
			shown, stats.Player, stats.Rating, stats.Wins, stats.Losses, stats.WinPct*100, tiered)
	}
}

func displayLambdaSearch(scores []pickuprapm.LambdaScore) {
	fmt.Printf("\n🔍 Lambda search\n")
	fmt.Printf("%-10s %10s\n", "Lambda", "Mean RMSE")
	for _, score := range scores {
		fmt.Printf("%-10g %10.4f\n", score.Lambda, score.MeanRMSE)
	}
}

func displayClockSummary(games []pickuprapm.Game) {
	clockGames := 0
	knownPossession := 0
	for _, game := range games {
		if game.ClockInEffect {
			clockGames++
		}
		if game.StartingPossession != pickuprapm.PossessionUnknown {
			knownPossession++
		}
	}
	fmt.Printf("\n⏱️  Clock in effect for %d/%d games; starting possession inferred for %d\n",
		clockGames, len(games), knownPossession)
}

func displayGames(games []pickuprapm.Game) {
	fmt.Printf("\n📅 Games\n")
	fmt.Printf("%-12s %4s %7s %7s %-6s %6s %10s\n", "Date", "#", "A", "B", "Winner", "Clock", "Possession")
	for _, game := range games {
		clock := ""
		if game.ClockInEffect {
			clock = "on"
		}
		fmt.Printf("%-12s %4d %7d %7d %-6s %6s %10s\n",
			game.Date, game.GameNum, game.AScore, game.BScore, game.Winner, clock, game.StartingPossession)
	}
}

func displaySpreads(spreads []pickuprapm.GameSpread) {
	fmt.Printf("\n📊 Spreads vs results\n")
	fmt.Printf("%-12s %4s %8s %8s %8s %6s %9s\n", "Date", "#", "A Qual", "B Qual", "Spread", "Diff", "vs Spread")
	for _, spread := range spreads {
		fmt.Printf("%-12s %4d %8.2f %8.2f %8.2f %6d %9.2f\n",
			spread.Date, spread.GameNum, spread.AQuality, spread.BQuality,
			spread.Spread, spread.ScoreDiff, spread.DiffFromSpread)
	}
}
