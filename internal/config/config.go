// Package config loads and validates the preprocessor configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// AppName is the directory searched under the user config dir.
const AppName = "mdbook-presentation"

// MaxFileSize limits config input to prevent memory exhaustion (1MB).
const MaxFileSize = 1 << 20

// Field length limits.
const (
	MaxRules            = 32
	MaxRuleNameLength   = 64
	MaxClassLength      = 200
	MaxMarkerLength     = 100
	MaxLiteralLength    = 500 // comment open/close replacements
	MaxAssetNameLength  = 64
	MaxPathLength       = 4096
	MaxStyleNameLength  = 50 // chroma style
	MaxPolicyNameLength = 10
)

// Policy names accepted in rule definitions.
const (
	PolicyBlock   = "block"
	PolicyComment = "comment"
)

// Config holds all configuration for the preprocessor.
type Config struct {
	Rules  []RuleConfig `yaml:"rules"` // nil = built-in rules
	Assets AssetsConfig `yaml:"assets"`
	Render RenderConfig `yaml:"render"`
	Strict bool         `yaml:"strict"` // reject unbalanced or nested markers
}

// RuleConfig describes one tag rule. Start and End default to "$name$" and
// "$name-end$".
type RuleConfig struct {
	Name   string `yaml:"name"`
	Policy string `yaml:"policy"` // "block" (default) or "comment"
	Class  string `yaml:"class"`  // block only
	Open   string `yaml:"open"`   // comment only
	Close  string `yaml:"close"`  // comment only
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
}

// AssetsConfig defines the decoration injected around every chapter.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	Style    string `yaml:"style"`    // Empty = built-in "presentation"
	Script   string `yaml:"script"`   // Empty = built-in "presentation"
	Disabled bool   `yaml:"disabled"` // No decoration at all
}

// RenderConfig defines markdown rendering options for block rules.
type RenderConfig struct {
	Highlight string `yaml:"highlight"` // chroma style name, empty = no server-side highlighting
}

// DefaultConfig returns a configuration using built-in rules and assets.
func DefaultConfig() *Config {
	return &Config{
		Rules:  nil,
		Assets: AssetsConfig{},
		Render: RenderConfig{},
		Strict: false,
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers that fill a
// Config from another source (e.g. book.toml options).
func (c *Config) Validate() error {
	if len(c.Rules) > MaxRules {
		return fmt.Errorf("%w: rules (%d rules, max %d)", ErrFieldTooLong, len(c.Rules), MaxRules)
	}

	seen := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		if err := r.validate(field); err != nil {
			return err
		}
		if r.Name != "" {
			if seen[r.Name] {
				return fmt.Errorf("%w: %s.name: duplicate rule %q", ErrInvalidField, field, r.Name)
			}
			seen[r.Name] = true
		}
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.style", c.Assets.Style, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.script", c.Assets.Script, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.highlight", c.Render.Highlight, MaxStyleNameLength); err != nil {
		return err
	}

	return nil
}

func (r RuleConfig) validate(field string) error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"name", r.Name, MaxRuleNameLength},
		{"policy", r.Policy, MaxPolicyNameLength},
		{"class", r.Class, MaxClassLength},
		{"open", r.Open, MaxLiteralLength},
		{"close", r.Close, MaxLiteralLength},
		{"start", r.Start, MaxMarkerLength},
		{"end", r.End, MaxMarkerLength},
	}
	for _, c := range checks {
		if err := validateFieldLength(field+"."+c.name, c.value, c.max); err != nil {
			return err
		}
	}

	if r.Name == "" && (r.Start == "" || r.End == "") {
		return fmt.Errorf("%w: %s: name or both start and end are required", ErrInvalidField, field)
	}

	switch strings.ToLower(r.Policy) {
	case "", PolicyBlock, PolicyComment:
		// valid
	default:
		return fmt.Errorf("%w: %s.policy: %q (must be block or comment)", ErrInvalidField, field, r.Policy)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data, rejecting unknown fields, and validates it.
func Parse(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrConfigParse)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxFileSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML, e.g. to print the effective configuration.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory first, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
