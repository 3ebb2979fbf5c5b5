package main

import (
	"errors"
	"os"

	presentation "github.com/alnah/mdbook-presentation"
	"github.com/alnah/mdbook-presentation/internal/assets"
	"github.com/alnah/mdbook-presentation/internal/config"
	"github.com/alnah/mdbook-presentation/internal/mdbook"
)

// Exit codes for the mdbook-presentation CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// "supports" answers with ExitSuccess (supported) or ExitGeneral (not supported),
// as mdBook expects.
const (
	ExitSuccess = 0 // Book processed, renderer supported
	ExitGeneral = 1 // General/unexpected error, renderer not supported
	ExitUsage   = 2 // Invalid flags, config, rules or markers
	ExitIO      = 3 // Unreadable input, unwritable output, asset read failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdbook.ErrMalformedInput) ||
		errors.Is(err, mdbook.ErrWriteBook) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, mdbook.ErrInvalidOption) ||
		errors.Is(err, presentation.ErrInvalidRule) ||
		errors.Is(err, presentation.ErrInvalidAssetPath) ||
		errors.Is(err, presentation.ErrDecoration) ||
		errors.Is(err, presentation.ErrUnbalancedMarkers) ||
		errors.Is(err, presentation.ErrNestedMarkers) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingArgument) {
		return ExitUsage
	}

	return ExitGeneral
}
