package mdbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/alnah/mdbook-presentation/internal/config"
)

// Context is the preprocessor context mdBook sends ahead of the book:
// the book root, the parsed book.toml, the renderer and the mdBook version.
// It is kept as raw JSON and queried on demand.
type Context struct {
	raw []byte
}

// NewContext wraps raw context JSON.
func NewContext(raw []byte) *Context {
	return &Context{raw: raw}
}

// Root returns the book root directory.
func (c *Context) Root() string {
	return gjson.GetBytes(c.raw, "root").String()
}

// Renderer returns the renderer the book is being built for.
func (c *Context) Renderer() string {
	return gjson.GetBytes(c.raw, "renderer").String()
}

// Version returns the running mdBook version.
func (c *Context) Version() string {
	return gjson.GetBytes(c.raw, "mdbook_version").String()
}

// Options returns the raw [preprocessor.<name>] table, or an empty result.
func (c *Context) Options(name string) gjson.Result {
	return gjson.GetBytes(c.raw, "config.preprocessor."+escapePath(name))
}

// ApplyOptions overlays the [preprocessor.<name>] table of book.toml onto cfg
// and validates the result. Recognised keys:
//
//	strict = true
//	highlight = "github"
//	asset-path = "theme/presentation"   # relative to the book root
//	style = "dark"
//	script = "presentation"
//	no-decoration = false
//	[[preprocessor.presentation.rules]]
//	name = "web-only"
//	policy = "block"
//	class = "article-content"
//
// Keys mdBook itself uses in the table (command, before, after, renderers)
// are ignored.
func (c *Context) ApplyOptions(cfg *config.Config, name string) error {
	table := c.Options(name)
	if !table.Exists() {
		return nil
	}
	if !table.IsObject() {
		return fmt.Errorf("%w: preprocessor.%s must be a table", ErrInvalidOption, name)
	}

	var err error
	field := func(key string) string { return "preprocessor." + name + "." + key }

	if cfg.Strict, err = boolOption(table, "strict", field, cfg.Strict); err != nil {
		return err
	}
	if cfg.Assets.Disabled, err = boolOption(table, "no-decoration", field, cfg.Assets.Disabled); err != nil {
		return err
	}
	if cfg.Render.Highlight, err = stringOption(table, "highlight", field, cfg.Render.Highlight); err != nil {
		return err
	}
	if cfg.Assets.Style, err = stringOption(table, "style", field, cfg.Assets.Style); err != nil {
		return err
	}
	if cfg.Assets.Script, err = stringOption(table, "script", field, cfg.Assets.Script); err != nil {
		return err
	}

	assetPath, err := stringOption(table, "asset-path", field, "")
	if err != nil {
		return err
	}
	if assetPath != "" {
		if !filepath.IsAbs(assetPath) && c.Root() != "" {
			assetPath = filepath.Join(c.Root(), assetPath)
		}
		cfg.Assets.BasePath = assetPath
	}

	if rules := table.Get("rules"); rules.Exists() {
		if !rules.IsArray() {
			return fmt.Errorf("%w: %s must be an array of tables", ErrInvalidOption, field("rules"))
		}
		cfg.Rules = make([]config.RuleConfig, 0, len(rules.Array()))
		for i, r := range rules.Array() {
			rule, err := ruleOption(r, fmt.Sprintf("%s[%d]", field("rules"), i))
			if err != nil {
				return err
			}
			cfg.Rules = append(cfg.Rules, rule)
		}
	}

	return cfg.Validate()
}

func ruleOption(r gjson.Result, field string) (config.RuleConfig, error) {
	if !r.IsObject() {
		return config.RuleConfig{}, fmt.Errorf("%w: %s must be a table", ErrInvalidOption, field)
	}

	var rule config.RuleConfig
	targets := []struct {
		key string
		dst *string
	}{
		{"name", &rule.Name},
		{"policy", &rule.Policy},
		{"class", &rule.Class},
		{"open", &rule.Open},
		{"close", &rule.Close},
		{"start", &rule.Start},
		{"end", &rule.End},
	}
	sub := func(key string) string { return field + "." + key }
	for _, t := range targets {
		v, err := stringOption(r, t.key, sub, "")
		if err != nil {
			return config.RuleConfig{}, err
		}
		*t.dst = v
	}
	rule.Policy = strings.ToLower(rule.Policy)
	return rule, nil
}

func boolOption(table gjson.Result, key string, field func(string) string, def bool) (bool, error) {
	v := table.Get(escapePath(key))
	if !v.Exists() {
		return def, nil
	}
	if v.Type != gjson.True && v.Type != gjson.False {
		return def, fmt.Errorf("%w: %s must be a boolean, got %s", ErrInvalidOption, field(key), v.Raw)
	}
	return v.Bool(), nil
}

func stringOption(table gjson.Result, key string, field func(string) string, def string) (string, error) {
	v := table.Get(escapePath(key))
	if !v.Exists() {
		return def, nil
	}
	if v.Type != gjson.String {
		return def, fmt.Errorf("%w: %s must be a string, got %s", ErrInvalidOption, field(key), v.Raw)
	}
	return v.String(), nil
}

// escapePath escapes gjson path syntax in a single key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
