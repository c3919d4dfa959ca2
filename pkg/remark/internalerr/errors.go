package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrNoComments    = errors.New("no usable comments extracted from input")
	ErrInvalidConfig = errors.New("invalid configuration")
)
