package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "no paths",
			paths:    nil,
			contains: []string{"hint:", "--config"},
			excludes: []string{"create"},
		},
		{
			name:     "user config path suggested",
			paths:    []string{"book.yaml", "/home/u/.config/mdbook-presentation/book.yaml"},
			contains: []string{"create /home/u/.config/mdbook-presentation/book.yaml"},
		},
		{
			name:     "local paths only",
			paths:    []string{"book.yaml", "book.yml"},
			excludes: []string{"create"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.paths)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("ForConfigNotFound() = %q, should contain %q", got, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("ForConfigNotFound() = %q, should not contain %q", got, s)
				}
			}
		})
	}
}

func TestForUnsupportedRenderer(t *testing.T) {
	t.Parallel()

	if got := ForUnsupportedRenderer(""); got != "" {
		t.Errorf("ForUnsupportedRenderer(\"\") = %q, want empty", got)
	}
	if got := ForUnsupportedRenderer("epub"); !strings.Contains(got, "epub") {
		t.Errorf("ForUnsupportedRenderer(epub) = %q, should name the renderer", got)
	}
}

func TestHintFormat(t *testing.T) {
	t.Parallel()

	for name, got := range map[string]string{
		"markers": ForUnbalancedMarkers(),
		"version": ForVersionMismatch("0.3.7", "0.4.40"),
		"input":   ForMalformedInput(),
	} {
		if !strings.HasPrefix(got, "\n  hint: ") {
			t.Errorf("%s hint = %q, want \"\\n  hint: \" prefix", name, got)
		}
		if strings.Count(got, "hint:") != 1 {
			t.Errorf("%s hint = %q, want a single hint line", name, got)
		}
	}
}
