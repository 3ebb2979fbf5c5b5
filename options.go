package presentation

import (
	"log/slog"

	"github.com/alnah/mdbook-presentation/internal/pipeline"
)

// Renderer converts a markdown fragment to HTML. Block rules call it once per
// region. Implementations must be deterministic.
type Renderer interface {
	Render(markdown string) (string, error)
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc = pipeline.RendererFunc

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithRules replaces the built-in rules. Rules are applied in the given order.
func WithRules(rules ...Rule) Option {
	return func(p *Preprocessor) {
		p.rules = append([]Rule(nil), rules...)
	}
}

// WithRenderer sets the markdown renderer used by block rules.
// Overrides WithHighlighting.
func WithRenderer(r Renderer) Option {
	return func(p *Preprocessor) {
		p.renderer = r
	}
}

// WithHighlighting enables server-side highlighting of fenced code blocks
// inside block regions, using the named chroma style.
func WithHighlighting(style string) Option {
	return func(p *Preprocessor) {
		p.highlightStyle = style
	}
}

// WithDecoration sets the text placed around every chapter.
// Overrides WithAssetPath, WithStyle and WithScript.
func WithDecoration(d Decoration) Option {
	return func(p *Preprocessor) {
		p.decoration = &d
	}
}

// WithoutDecoration leaves chapters undecorated.
func WithoutDecoration() Option {
	return WithDecoration(Decoration{})
}

// WithAssetPath sets a directory whose styles/ and scripts/ override the
// built-in decoration assets.
func WithAssetPath(path string) Option {
	return func(p *Preprocessor) {
		p.assetPath = path
	}
}

// WithStyle selects the stylesheet by name (without .css).
func WithStyle(name string) Option {
	return func(p *Preprocessor) {
		p.styleName = name
	}
}

// WithScript selects the script by name (without .js).
func WithScript(name string) Option {
	return func(p *Preprocessor) {
		p.scriptName = name
	}
}

// WithStrict rejects chapters whose markers are unbalanced or nested instead
// of pairing them by position.
func WithStrict(strict bool) Option {
	return func(p *Preprocessor) {
		p.strict = strict
	}
}

// WithLogger sets the logger. Chapters and regions are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Preprocessor) {
		if logger != nil {
			p.logger = logger
		}
	}
}
