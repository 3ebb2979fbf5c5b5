package presentation

import (
	"errors"

	"github.com/alnah/mdbook-presentation/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrChapter          = errors.New("processing chapter failed")
	ErrInvalidRule      = errors.New("invalid rule")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrDecoration       = errors.New("loading decoration failed")

	// Re-exported from the rewriting pipeline.
	ErrRender            = pipeline.ErrRender
	ErrUnbalancedMarkers = pipeline.ErrUnbalancedMarkers
	ErrNestedMarkers     = pipeline.ErrNestedMarkers
)
