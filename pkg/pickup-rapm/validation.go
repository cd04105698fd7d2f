package pickuprapm

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// validateRequest checks a ratings request after defaults have been applied.
// Configuration problems are fatal: this engine is a deterministic batch
// computation, so the correct response to a bad setup is to fail the run.
func validateRequest(request RatingsRequest) error {
	var errs []ValidationError

	if len(request.Games) == 0 {
		errs = append(errs, ValidationError{
			Field:   "games",
			Message: "at least one game row is required",
		})
	}

	opts := request.Options

	if opts.UseTiers && opts.MinGamesToNotTier <= 0 {
		errs = append(errs, ValidationError{
			Field:   "options.min_games_to_not_tier",
			Message: fmt.Sprintf("must be positive when tier substitution is enabled, got %d", opts.MinGamesToNotTier),
		})
	}

	for i, lambda := range opts.LambdaCandidates {
		if lambda <= 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("options.lambda_candidates[%d]", i),
				Message: fmt.Sprintf("ridge strength must be positive, got %g", lambda),
			})
		}
	}

	if !opts.DefaultLambda {
		if len(opts.LambdaCandidates) == 0 {
			errs = append(errs, ValidationError{
				Field:   "options.lambda_candidates",
				Message: "at least one candidate strength is required when cross-validating",
			})
		}
		if opts.KFolds < 2 {
			errs = append(errs, ValidationError{
				Field:   "options.k_folds",
				Message: fmt.Sprintf("at least 2 folds required, got %d", opts.KFolds),
			})
		}
		if len(opts.Seeds) == 0 {
			errs = append(errs, ValidationError{
				Field:   "options.seeds",
				Message: "at least one shuffle seed is required when cross-validating",
			})
		}
	}

	if len(errs) > 0 {
		return ValidationErrors{Errors: errs}
	}

	return nil
}
