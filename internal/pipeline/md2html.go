package pipeline

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer abstracts Markdown to HTML conversion of a single fragment.
type Renderer interface {
	Render(markdown string) (string, error)
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc func(markdown string) (string, error)

// Render calls f(markdown).
func (f RendererFunc) Render(markdown string) (string, error) {
	return f(markdown)
}

// GoldmarkRenderer converts Markdown fragments to HTML using goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// RendererOption configures a GoldmarkRenderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	highlightStyle string
}

// WithHighlighting enables server-side syntax highlighting of fenced code
// blocks with the named chroma style (e.g. "github", "monokai").
// An empty style leaves code blocks to the browser.
func WithHighlighting(style string) RendererOption {
	return func(c *rendererConfig) {
		c.highlightStyle = style
	}
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions.
// Raw HTML is passed through: book chapters routinely embed HTML, and
// the output is handed back to the host tool rather than served directly.
func NewGoldmarkRenderer(opts ...RendererOption) *GoldmarkRenderer {
	var cfg rendererConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if cfg.highlightStyle != "" {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.highlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.TabWidth(4),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts a Markdown fragment to an HTML fragment.
// Block elements are each terminated by a newline; empty input yields "".
func (g *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

// Compile-time interface checks.
var (
	_ Renderer = (*GoldmarkRenderer)(nil)
	_ Renderer = RendererFunc(nil)
)
