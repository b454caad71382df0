// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// themeFile mirrors the on-disk Cannoli theme format.
type themeFile struct {
	Font            string `toml:"font"`
	BackgroundImage string `toml:"background_image"`

	Colors struct {
		Highlight       string `toml:"highlight"`
		Accent          string `toml:"accent"`
		ButtonLabel     string `toml:"button_label"`
		Hint            string `toml:"hint"`
		Text            string `toml:"text"`
		HighlightedText string `toml:"highlighted_text"`
		Background      string `toml:"background"`
	} `toml:"colors"`
}

// DefaultTheme creates a theme with Cannoli's default colors and the specified font.
func DefaultTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x000000),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}

// LoadTheme reads a Cannoli theme TOML file. Colors are "#RRGGBB" strings;
// missing colors keep the Cannoli defaults.
func LoadTheme(path, fallbackFontPath string) (internal.Theme, error) {
	theme := DefaultTheme(fallbackFontPath)

	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return theme, fmt.Errorf("cannoli: load theme %s: %w", path, err)
	}

	if file.Font != "" {
		theme.FontPath = file.Font
	}
	theme.BackgroundImagePath = file.BackgroundImage

	if c, err := parseHexColor(file.Colors.Highlight); err == nil {
		theme.HighlightColor = c
	}
	if c, err := parseHexColor(file.Colors.Accent); err == nil {
		theme.AccentColor = c
	}
	if c, err := parseHexColor(file.Colors.ButtonLabel); err == nil {
		theme.ButtonLabelColor = c
	}
	if c, err := parseHexColor(file.Colors.Hint); err == nil {
		theme.HintColor = c
	}
	if c, err := parseHexColor(file.Colors.Text); err == nil {
		theme.TextColor = c
	}
	if c, err := parseHexColor(file.Colors.HighlightedText); err == nil {
		theme.HighlightedTextColor = c
	}
	if c, err := parseHexColor(file.Colors.Background); err == nil {
		theme.BackgroundColor = c
	}

	return theme, nil
}

func parseHexColor(value string) (sdl.Color, error) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(value) != 6 {
		return sdl.Color{}, fmt.Errorf("cannoli: malformed color %q", value)
	}

	hex, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("cannoli: malformed color %q: %w", value, err)
	}

	return internal.HexToColor(uint32(hex)), nil
}
