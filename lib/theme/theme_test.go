package theme

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) error = %v", err)
	}
}

func TestFromContext(t *testing.T) {
	if got := FromContext(context.Background()); got != Default() {
		t.Errorf("FromContext(empty) = %+v, want Default()", got)
	}

	custom := Default()
	custom.Name = "midnight"
	custom.Subtle = "#999999"
	ctx := WithContext(context.Background(), custom)

	got := FromContext(ctx)
	if got != custom {
		t.Errorf("FromContext() = %+v, want %+v", got, custom)
	}

	// The theme travels by value; editing a copy leaves the context alone.
	got.Subtle = "#000000"
	if FromContext(ctx).Subtle != "#999999" {
		t.Error("theme in context was mutated through a copy")
	}
}

func TestCSS(t *testing.T) {
	css := Default().CSS()

	if !strings.HasPrefix(css, ":root{") || !strings.HasSuffix(css, "}") {
		t.Errorf("CSS() = %q, want a :root rule", css)
	}
	for _, want := range []string{"--color-subtle:#718096;", "--color-brand:#2b6cb0;", "--radius:0.375rem;"} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS() missing %q", want)
		}
	}
	if Default().CSS() != css {
		t.Error("CSS() is not deterministic")
	}
}

func TestCSSStripsBreakout(t *testing.T) {
	th := Default()
	th.BodyFont = "x;}</style><script>"
	css := th.CSS()
	if strings.Contains(css, "</style>") || strings.Count(css, "}") != 1 {
		t.Errorf("CSS() = %q, value escaped its declaration", css)
	}
}

func TestStyle(t *testing.T) {
	var buf bytes.Buffer
	if err := Style(Default()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), `<style id="theme" data-theme="virtualica">:root{`) {
		t.Errorf("Style() = %s", buf.String())
	}
}

func TestLoadFromTOML(t *testing.T) {
	data := []byte(`
name = "midnight"
radius = "0"

[palette]
background = "#0b1021"
text = "#e2e8f0"

[typography]
body_font = "Georgia, serif"
`)

	th, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML() error = %v", err)
	}
	if th.Name != "midnight" {
		t.Errorf("Name = %q, want midnight", th.Name)
	}
	if th.Background != "#0b1021" || th.Text != "#e2e8f0" {
		t.Errorf("palette = %q/%q", th.Background, th.Text)
	}
	if th.BodyFont != "Georgia, serif" || th.Radius != "0" {
		t.Errorf("typography = %q, radius = %q", th.BodyFont, th.Radius)
	}
	// Unset keys fall back to the default theme.
	if th.Brand != Default().Brand || th.HeadingFont != Default().HeadingFont {
		t.Errorf("defaults not kept: brand %q heading %q", th.Brand, th.HeadingFont)
	}
}

func TestLoadFromTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad syntax", `name = `, "parse TOML"},
		{"bad color", "[palette]\nbrand = \"blue\"", `invalid hex color "blue"`},
		{"empty name", `name = ""`, `missing required field "name"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromTOML([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadFromTOML() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	th := Default()
	th.Name = "saved"
	th.Accent = "#ff0080"

	data, err := SaveToTOML(th)
	if err != nil {
		t.Fatalf("SaveToTOML() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded != th {
		t.Errorf("LoadFile() = %+v, want %+v", loaded, th)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFile(missing) error = nil")
	}
}
