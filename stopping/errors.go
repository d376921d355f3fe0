package stopping

import "errors"

var (
	// ErrInvalidConfig indicates a criterion parameter is out of range.
	ErrInvalidConfig = errors.New("stopping: invalid config")
	// ErrStoppingWindowReuse indicates a ConvergenceCriterion's sliding
	// window was reused by a second owner without an intervening Reset.
	ErrStoppingWindowReuse = errors.New("stopping: window reused by a different owner without Reset")
)
