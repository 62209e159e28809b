package project

import "errors"

// ErrProjectNotFound indicates the requested project doesn't exist.
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidInput indicates the request failed validation.
var ErrInvalidInput = errors.New("invalid project input")
