package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
//
//	name = "midnight"
//
//	[palette]
//	brand = "#2b6cb0"
//	...
//
//	[typography]
//	heading_font = "Inter, sans-serif"
type tomlTheme struct {
	Name       string         `toml:"name"`
	Palette    tomlPalette    `toml:"palette"`
	Typography tomlTypography `toml:"typography"`
	Radius     string         `toml:"radius"`
}

type tomlPalette struct {
	Brand      string `toml:"brand"`
	Background string `toml:"background"`
	Surface    string `toml:"surface"`
	Text       string `toml:"text"`
	Subtle     string `toml:"subtle"`
	Accent     string `toml:"accent"`
	Border     string `toml:"border"`
}

type tomlTypography struct {
	HeadingFont string `toml:"heading_font"`
	BodyFont    string `toml:"body_font"`
	BaseSize    string `toml:"base_size"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFile reads a TOML theme from path.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return LoadFromTOML(data)
}

// LoadFromTOML parses a TOML theme definition. Keys left out of the file
// keep their Default values; colors that are present must be #RRGGBB.
func LoadFromTOML(data []byte) (Theme, error) {
	tt := toTOML(Default())
	if _, err := toml.Decode(string(data), &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:        tt.Name,
		Brand:       tt.Palette.Brand,
		Background:  tt.Palette.Background,
		Surface:     tt.Palette.Surface,
		Text:        tt.Palette.Text,
		Subtle:      tt.Palette.Subtle,
		Accent:      tt.Palette.Accent,
		Border:      tt.Palette.Border,
		HeadingFont: tt.Typography.HeadingFont,
		BodyFont:    tt.Typography.BodyFont,
		BaseSize:    tt.Typography.BaseSize,
		Radius:      tt.Radius,
	}

	if err := Validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toTOML(t)); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func toTOML(t Theme) tomlTheme {
	return tomlTheme{
		Name: t.Name,
		Palette: tomlPalette{
			Brand:      t.Brand,
			Background: t.Background,
			Surface:    t.Surface,
			Text:       t.Text,
			Subtle:     t.Subtle,
			Accent:     t.Accent,
			Border:     t.Border,
		},
		Typography: tomlTypography{
			HeadingFont: t.HeadingFont,
			BodyFont:    t.BodyFont,
			BaseSize:    t.BaseSize,
		},
		Radius: t.Radius,
	}
}

// Validate checks that every token is present and colors are valid hex.
func Validate(t Theme) error {
	required := []struct{ field, value string }{
		{"name", t.Name},
		{"heading_font", t.HeadingFont},
		{"body_font", t.BodyFont},
		{"base_size", t.BaseSize},
		{"radius", t.Radius},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.field)
		}
	}

	colors := []struct{ field, value string }{
		{"brand", t.Brand},
		{"background", t.Background},
		{"surface", t.Surface},
		{"text", t.Text},
		{"subtle", t.Subtle},
		{"accent", t.Accent},
		{"border", t.Border},
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(c.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", c.value, c.field)
		}
	}
	return nil
}
