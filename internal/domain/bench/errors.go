package bench

import (
	"errors"
	"fmt"
)

// Failure classes of a benchmark run. Setup and output failures abort the
// run with a non-zero exit; a scenario failure is recorded in its result row
// and never propagates as an error.
var (
	ErrSetup  = errors.New("setup failure")
	ErrOutput = errors.New("output failure")
)

// SetupFailure marks err as fatal pre-measurement setup (fixture, language
// server spawn, cache construction).
func SetupFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrSetup, err)
}

// OutputFailure marks err as a report persistence problem. Results were
// collected but could not be written.
func OutputFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrOutput, err)
}
