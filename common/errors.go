package common

import "github.com/pkg/errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// input arrays
	ErrorLengthMismatch = errors.New("values and weights arrays must have the same length")
	ErrorNegativeWeight = &invalidValueError{msg: "weights must be non-negative"}
	ErrorNonFinite      = &invalidValueError{msg: "input arrays must not contain NaN or infinite values"}

	// call parameters
	ErrorInvalidProbability = errors.New("quantile values must be between 0 and 1")
	ErrorInvalidDdof        = errors.New("ddof must be non-negative")
	ErrorUnknownMethod      = errors.New("unknown quantile method")
)

// invalidValueError matches itself and ErrorInvalidValue with errors.Is.
type invalidValueError struct {
	msg string
}

func (e *invalidValueError) Error() string {
	return e.msg
}

func (e *invalidValueError) Is(target error) bool {
	return target == ErrorInvalidValue
}
