package repository

import "errors"

// Repository errors define common error conditions across catalog readers.
// These errors communicate specific lookup failures from the catalog
// adapter to the engine; the engine converts them into warnings, never
// into aborted calculations.

var (
	// ErrPriceRuleNotFound is returned when no price rule matches a
	// lookup at any step of the fallback chain.
	ErrPriceRuleNotFound = errors.New("price rule not found")

	// ErrFinishingRuleNotFound is returned when a finishing service has
	// no pricing configured.
	ErrFinishingRuleNotFound = errors.New("finishing rule not found")

	// ErrMachineNotFound is returned when a machine ID is unknown to the
	// catalog entirely.
	ErrMachineNotFound = errors.New("machine not found")

	// ErrInvalidInput is returned when a reader receives invalid input.
	ErrInvalidInput = errors.New("invalid input provided")
)

// IsNotFoundError checks if the error is any catalog not-found error.
// This is useful for handling configuration gaps uniformly.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a missing catalog entry
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPriceRuleNotFound) ||
		errors.Is(err, ErrFinishingRuleNotFound) ||
		errors.Is(err, ErrMachineNotFound)
}
