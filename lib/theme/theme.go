// Package theme holds the immutable style tokens shared by every component.
//
// A Theme is created once at startup, from the built-in default or a TOML
// file, and handed to the component tree through the request context:
//
//	ctx = theme.WithContext(ctx, t)
//	...
//	t := theme.FromContext(ctx)
//
// Tokens reach the browser as CSS custom properties (see CSS and Style), so
// components refer to var(--color-subtle) and never hard-code colors.
package theme

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Theme defines the palette and typography of the application.
// It is a value type: copies never affect the original.
type Theme struct {
	Name string

	// Palette
	Brand      string // brand mark, primary buttons
	Background string // page background
	Surface    string // cards and bars
	Text       string // body text
	Subtle     string // muted text, e.g. the copyright line
	Accent     string // links and focus rings
	Border     string

	// Typography
	HeadingFont string
	BodyFont    string
	BaseSize    string // root font size, e.g. "16px"

	Radius string // corner radius for buttons and cards
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Name:        "virtualica",
		Brand:       "#2b6cb0",
		Background:  "#f7fafc",
		Surface:     "#ffffff",
		Text:        "#1a202c",
		Subtle:      "#718096",
		Accent:      "#3182ce",
		Border:      "#e2e8f0",
		HeadingFont: "Inter, system-ui, sans-serif",
		BodyFont:    "Inter, system-ui, sans-serif",
		BaseSize:    "16px",
		Radius:      "0.375rem",
	}
}

// Vars returns the theme as CSS custom properties in a fixed order.
func (t Theme) Vars() [][2]string {
	return [][2]string{
		{"--color-brand", t.Brand},
		{"--color-bg", t.Background},
		{"--color-surface", t.Surface},
		{"--color-text", t.Text},
		{"--color-subtle", t.Subtle},
		{"--color-accent", t.Accent},
		{"--color-border", t.Border},
		{"--font-heading", t.HeadingFont},
		{"--font-body", t.BodyFont},
		{"--font-size-base", t.BaseSize},
		{"--radius", t.Radius},
	}
}

// CSS renders the theme as a :root rule.
func (t Theme) CSS() string {
	var sb strings.Builder
	sb.WriteString(":root{")
	for _, v := range t.Vars() {
		fmt.Fprintf(&sb, "%s:%s;", v[0], cssValue(v[1]))
	}
	sb.WriteString("}")
	return sb.String()
}

// cssValue strips characters that could close the rule or the style element.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '{', '}', ';', '<', '>':
			return -1
		}
		return r
	}, s)
}

// Style renders the theme as a <style> element for the document head.
func Style(t Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<style id="theme" data-theme="`+templ.EscapeString(t.Name)+`">`+t.CSS()+`</style>`)
		return err
	})
}

type ctxKey struct{}

// WithContext returns a context carrying t.
func WithContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the theme carried by ctx, or Default if none was set.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(ctxKey{}).(Theme); ok {
		return t
	}
	return Default()
}
