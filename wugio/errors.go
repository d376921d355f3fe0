package wugio

import "errors"

// ErrInvalidFormat indicates a loaded ground-truth document failed
// structural validation.
var ErrInvalidFormat = errors.New("wugio: invalid format")
