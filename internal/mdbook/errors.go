package mdbook

import "errors"

// Sentinel errors for protocol operations.
var (
	ErrMalformedInput = errors.New("malformed preprocessor input")
	ErrWriteBook      = errors.New("writing book failed")
	ErrInvalidOption  = errors.New("invalid preprocessor option")
)
