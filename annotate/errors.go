package annotate

import "errors"

// ErrInvalidConfig indicates a parameter passed to NewAnnotator is out
// of range. Returned at construction time (fail-fast), never mid-run.
var ErrInvalidConfig = errors.New("annotate: invalid config")
