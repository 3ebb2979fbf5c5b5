// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and, when known, a user config location to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "mdbook-presentation") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnbalancedMarkers returns hints for strict-mode marker errors.
func ForUnbalancedMarkers() string {
	return formatHints([]string{
		"close every $name$ with $name-end$ before opening the next one",
		"remove strict = true to pair markers by position instead",
	})
}

// ForUnsupportedRenderer returns a hint when the book targets another renderer.
func ForUnsupportedRenderer(renderer string) string {
	if renderer == "" {
		return ""
	}
	return format("only the html renderer is supported; got " + renderer)
}

// ForVersionMismatch returns a hint when mdBook and the preprocessor versions differ.
func ForVersionMismatch(got, want string) string {
	return format("built against mdbook " + want + ", running under " + got + "; output may differ")
}

// ForMalformedInput returns a hint for undecodable stdin.
func ForMalformedInput() string {
	return format("this command is meant to be run by mdbook build; use 'supports <renderer>' to probe it")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
