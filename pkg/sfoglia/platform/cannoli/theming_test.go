package cannoli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme("/fonts/test.ttf")

	assert.Equal(t, "/fonts/test.ttf", theme.FontPath)
	assert.Equal(t, internal.HexToColor(0x008080), theme.AccentColor)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
font = "/custom/font.ttf"
background_image = "/custom/bg.png"

[colors]
accent = "#FF8800"
text = "#102030"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	theme, err := LoadTheme(path, "/fallback/font.ttf")
	require.NoError(t, err)

	assert.Equal(t, "/custom/font.ttf", theme.FontPath)
	assert.Equal(t, "/custom/bg.png", theme.BackgroundImagePath)
	assert.Equal(t, internal.HexToColor(0xFF8800), theme.AccentColor)
	assert.Equal(t, internal.HexToColor(0x102030), theme.TextColor)
	assert.Equal(t, internal.HexToColor(0xFFFFFF), theme.HighlightColor, "unset colors keep defaults")
}

func TestLoadThemeMissingFile(t *testing.T) {
	theme, err := LoadTheme("/nonexistent/theme.toml", "/fallback/font.ttf")

	assert.Error(t, err)
	assert.Equal(t, "/fallback/font.ttf", theme.FontPath, "defaults come back alongside the error")
}

func TestLoadThemeMalformedColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
[colors]
accent = "not-a-color"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	theme, err := LoadTheme(path, "/fallback/font.ttf")
	require.NoError(t, err)
	assert.Equal(t, internal.HexToColor(0x008080), theme.AccentColor, "malformed colors are ignored")
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, internal.HexToColor(0xA1B2C3), c)

	c, err = parseHexColor("  0F0F0F ")
	require.NoError(t, err)
	assert.Equal(t, internal.HexToColor(0x0F0F0F), c)

	_, err = parseHexColor("#FFF")
	assert.Error(t, err)

	_, err = parseHexColor("#GGGGGG")
	assert.Error(t, err)
}
