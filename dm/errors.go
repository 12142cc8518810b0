package dm

import "errors"

var (
	// ErrInvalidArgument reports a parameter outside its allowed range:
	// an unknown alternative, a horizon below 1 or not below the sample
	// size, or a non-positive power.
	ErrInvalidArgument = errors.New("dm: invalid argument")

	// ErrInvalidInput reports malformed error sequences: mismatched
	// lengths, fewer than two observations, or non-finite values.
	ErrInvalidInput = errors.New("dm: invalid input")

	// ErrDegenerateVariance reports a non-positive long-run variance when
	// the horizon is already 1 and no fallback remains.
	ErrDegenerateVariance = errors.New("dm: variance of DM statistic is zero or negative")
)
