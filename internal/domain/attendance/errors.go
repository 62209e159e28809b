package attendance

import "errors"

// ErrInvalidInput indicates a missing or malformed required field.
var ErrInvalidInput = errors.New("invalid attendance input")
