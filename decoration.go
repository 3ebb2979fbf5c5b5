package presentation

import (
	"fmt"

	"github.com/alnah/mdbook-presentation/internal/assets"
)

// Decoration is the constant text placed around every chapter:
// a stylesheet before the content and a script after it.
type Decoration struct {
	Header string
	Footer string
}

// NewDecoration builds the decoration for a stylesheet and a script.
func NewDecoration(css, js string) Decoration {
	return Decoration{
		Header: "<style>" + css + "</style>\n\n",
		Footer: "\n\n<script>" + js + "</script>",
	}
}

// Apply wraps content with the header and footer.
func (d Decoration) Apply(content string) string {
	return d.Header + content + d.Footer
}

// LoadDecoration builds a decoration from named assets. Assets found under
// basePath (styles/{style}.css, scripts/{script}.js) take precedence over
// the built-in ones; empty names select the built-in "presentation" assets.
func LoadDecoration(basePath, style, script string) (Decoration, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return Decoration{}, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return loadDecoration(resolver, style, script)
}

func loadDecoration(loader assets.AssetLoader, style, script string) (Decoration, error) {
	if style == "" {
		style = assets.DefaultStyleName
	}
	if script == "" {
		script = assets.DefaultScriptName
	}

	css, err := loader.LoadStyle(style)
	if err != nil {
		return Decoration{}, fmt.Errorf("%w: %w", ErrDecoration, err)
	}
	js, err := loader.LoadScript(script)
	if err != nil {
		return Decoration{}, fmt.Errorf("%w: %w", ErrDecoration, err)
	}
	return NewDecoration(css, js), nil
}
