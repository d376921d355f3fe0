package sampler

import "errors"

// ErrInvalidConfig indicates a sampler parameter is out of range.
// Returned at construction time (fail-fast).
var ErrInvalidConfig = errors.New("sampler: invalid config")
