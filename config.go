package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pickuprapm "github.com/naismith-nerds/go-pickup-rapm/pkg/pickup-rapm"
)

// modelConfig mirrors RatingsOptions for file/env loading.
type modelConfig struct {
	UseTiers          bool      `koanf:"use_tiers"`
	MinGamesToNotTier int       `koanf:"min_games_to_not_tier"`
	DefaultLambda     bool      `koanf:"default_lambda"`
	LambdaCandidates  []float64 `koanf:"lambda_candidates"`
	KFolds            int       `koanf:"k_folds"`
	Seeds             []int64   `koanf:"seeds"`
}

// loadModelOptions builds RatingsOptions by layering, low to high:
//  1. engine defaults
//  2. YAML file (when a path is given)
//  3. env vars (prefix RAPM_, e.g. RAPM_K_FOLDS=5; list-valued options
//     take comma-separated values, e.g. RAPM_SEEDS=0,11,21,42)
func loadModelOptions(path string) (pickuprapm.RatingsOptions, error) {
	defaults := pickuprapm.DefaultRatingsOptions()
	cfg := modelConfig{
		UseTiers:          defaults.UseTiers,
		MinGamesToNotTier: defaults.MinGamesToNotTier,
		DefaultLambda:     defaults.DefaultLambda,
		LambdaCandidates:  defaults.LambdaCandidates,
		KFolds:            defaults.KFolds,
		Seeds:             defaults.Seeds,
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return pickuprapm.RatingsOptions{}, fmt.Errorf("loading config file: %w", err)
		}
	}

	envProvider := env.ProviderWithValue("RAPM_", ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), "rapm_")
		// Comma-separated values decode into the slice-valued options.
		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			out := make([]interface{}, len(parts))
			for i, part := range parts {
				out[i] = strings.TrimSpace(part)
			}
			return key, out
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return pickuprapm.RatingsOptions{}, fmt.Errorf("loading env config: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return pickuprapm.RatingsOptions{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return pickuprapm.RatingsOptions{
		UseTiers:          cfg.UseTiers,
		MinGamesToNotTier: cfg.MinGamesToNotTier,
		DefaultLambda:     cfg.DefaultLambda,
		LambdaCandidates:  cfg.LambdaCandidates,
		KFolds:            cfg.KFolds,
		Seeds:             cfg.Seeds,
	}, nil
}
