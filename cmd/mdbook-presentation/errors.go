package main

import "errors"

// Sentinel errors for command-line handling.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)
