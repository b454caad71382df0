package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 255, G: 128, B: 0, A: 255}, HexToColor(0xFF8000))
	assert.Equal(t, sdl.Color{A: 255}, HexToColor(0x000000))
	assert.Equal(t, sdl.Color{R: 255, G: 255, B: 255, A: 255}, HexToColor(0xFFFFFF))
}

func TestSetGetTheme(t *testing.T) {
	original := GetTheme()
	defer SetTheme(original)

	theme := original
	theme.AccentColor = HexToColor(0x112233)
	SetTheme(theme)

	assert.Equal(t, HexToColor(0x112233), GetTheme().AccentColor)
}

func TestPaddingSums(t *testing.T) {
	p := Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	assert.Equal(t, int32(6), p.Horizontal())
	assert.Equal(t, int32(4), p.Vertical())

	u := UniformPadding(7)
	assert.Equal(t, int32(14), u.Horizontal())
	assert.Equal(t, int32(14), u.Vertical())
}
