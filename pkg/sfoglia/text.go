package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// renderText rasterizes text into a texture. The caller owns the texture.
func renderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32, error) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0, NewInfrastructureError("render_text", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, NewInfrastructureError("render_text", err)
	}
	return texture, surface.W, surface.H, nil
}

// drawText renders text at (x, y) with the given alignment, then releases
// the texture. Failures are logged and skipped so one broken glyph run
// never takes the frame down.
func drawText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32, align constants.TextAlign) {
	if text == "" || font == nil {
		return
	}
	texture, w, h, err := renderText(renderer, font, text, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render text", "error", err)
		return
	}
	defer texture.Destroy()

	switch align {
	case constants.TextAlignCenter:
		x -= w / 2
	case constants.TextAlignRight:
		x -= w
	}
	dst := sdl.Rect{X: x, Y: y, W: w, H: h}
	renderer.Copy(texture, nil, &dst)
}
