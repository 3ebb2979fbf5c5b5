package pipeline

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrRender indicates the markdown renderer failed on a block body.
	ErrRender = errors.New("markdown rendering failed")

	// ErrNilRenderer indicates a block rule was applied without a renderer.
	ErrNilRenderer = errors.New("block rule requires a renderer")

	// ErrUnbalancedMarkers indicates a start marker without an end marker, or the reverse.
	ErrUnbalancedMarkers = errors.New("unbalanced markers")

	// ErrNestedMarkers indicates a start marker found inside an open region of the same rule.
	ErrNestedMarkers = errors.New("nested markers")
)
