package simulate

import "errors"

// ErrInvalidConfig indicates a Config field is out of range.
var ErrInvalidConfig = errors.New("simulate: invalid config")
