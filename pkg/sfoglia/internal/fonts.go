package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded UI fonts at their scaled point sizes.
type FontSet struct {
	LargeFont  *ttf.Font // Page titles
	MediumFont *ttf.Font // List items, headers
	SmallFont  *ttf.Font // Hints, footer, state messages
}

// Fonts is the active font set. Valid after Init.
var Fonts FontSet

// Base point sizes at the 640px reference width.
const (
	largeFontSize  = 28
	mediumFontSize = 22
	smallFontSize  = 16
)

func initFonts() {
	path := GetTheme().FontPath
	scale := GetScaleFactor()

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(path, int(float32(size)*scale))
		if err != nil {
			GetInternalLogger().Error("Failed to load font", "path", path, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		LargeFont:  open(largeFontSize),
		MediumFont: open(mediumFontSize),
		SmallFont:  open(smallFontSize),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
