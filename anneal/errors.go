package anneal

import "errors"

var (
	// ErrInvalidProblem indicates Problem.Length or Problem.MaxValue is
	// non-positive.
	ErrInvalidProblem = errors.New("anneal: invalid problem")
	// ErrInvalidState indicates an initial state that does not match
	// Problem.Length or carries a value outside [0, MaxValue).
	ErrInvalidState = errors.New("anneal: invalid initial state")
)
