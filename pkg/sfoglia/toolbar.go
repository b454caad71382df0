package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Toolbar is the title bar drawn above a list page, with an optional back
// chevron when the page can be dismissed.
type Toolbar struct {
	Title    string
	ShowBack bool

	icons *internal.TextureCache
}

// NewToolbar creates a toolbar with the given title.
func NewToolbar(title string) *Toolbar {
	return &Toolbar{Title: title, icons: internal.NewTextureCache()}
}

// Height returns the toolbar height scaled for the current window.
func (t *Toolbar) Height() int32 {
	return int32(float32(constants.DefaultToolbarHeight) * internal.GetScaleFactor())
}

// Render draws the toolbar across the top of the window.
func (t *Toolbar) Render(renderer *sdl.Renderer, width int32) {
	if renderer == nil {
		return
	}

	theme := internal.GetTheme()
	height := t.Height()

	bar := sdl.Rect{X: 0, Y: 0, W: width, H: height}
	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	renderer.FillRect(&bar)

	separator := sdl.Rect{X: 0, Y: height - 2, W: width, H: 2}
	renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, theme.AccentColor.A)
	renderer.FillRect(&separator)

	textX := int32(20)
	if t.ShowBack {
		iconSize := int32(24)
		if icon := internal.IconTexture(renderer, t.icons, "back", constants.IconBack, iconSize); icon != nil {
			dst := sdl.Rect{X: 16, Y: height/2 - iconSize/2, W: iconSize, H: iconSize}
			renderer.Copy(icon, nil, &dst)
		}
		textX = 16 + 24 + 12
	}

	font := internal.Fonts.LargeFont
	textY := height / 2
	if font != nil {
		textY -= int32(font.Height()) / 2
	}
	drawText(renderer, font, t.Title, theme.TextColor, textX, textY, constants.TextAlignLeft)
}

// Destroy releases cached textures.
func (t *Toolbar) Destroy() {
	t.icons.Destroy()
}
