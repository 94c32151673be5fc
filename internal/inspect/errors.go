package inspect

import "errors"

// Sentinel errors surfaced by the comparison engine. Callers classify
// failures with errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidParameter reports a bad point count, dimension,
	// threshold, grade scale or custom coordinate.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfBounds reports a coordinate that is not valid in one of
	// the two images, typically because their dimensions differ.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrEmptyInput reports an aggregation over zero point results.
	ErrEmptyInput = errors.New("no point results to aggregate")
)
