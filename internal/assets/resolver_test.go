package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_Fallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles", DefaultStyleName+".css", "/* custom */")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom style wins", func(t *testing.T) {
		t.Parallel()

		css, err := resolver.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if css != "/* custom */" {
			t.Errorf("LoadStyle() = %q, want custom content", css)
		}
	})

	t.Run("missing custom script falls back to embedded", func(t *testing.T) {
		t.Parallel()

		js, err := resolver.LoadScript(DefaultScriptName)
		if err != nil {
			t.Fatalf("LoadScript() error = %v", err)
		}
		if !strings.Contains(js, "presentation_mode") {
			t.Errorf("LoadScript() should return embedded script, got %q", js)
		}
	})

	t.Run("validation errors do not fall back", func(t *testing.T) {
		t.Parallel()

		if _, err := resolver.LoadStyle("../x"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle(../x) error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("not found anywhere", func(t *testing.T) {
		t.Parallel()

		if _, err := resolver.LoadScript("nowhere"); !errors.Is(err, ErrScriptNotFound) {
			t.Errorf("LoadScript(nowhere) error = %v, want ErrScriptNotFound", err)
		}
	})
}
