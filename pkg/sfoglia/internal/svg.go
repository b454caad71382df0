package internal

import (
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RenderSVG rasterizes an SVG document to a texture of the given pixel size.
// The caller owns the returned texture.
func RenderSVG(renderer *sdl.Renderer, svg string, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(int(width), int(height), scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), width, height, 32, width*4, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}

// IconTexture returns a rasterized icon from the cache, rendering it on miss.
// The cache owns the returned texture; do not destroy it.
func IconTexture(renderer *sdl.Renderer, cache *TextureCache, key, svg string, size int32) *sdl.Texture {
	if texture := cache.Get(key); texture != nil {
		return texture
	}

	texture, err := RenderSVG(renderer, svg, size, size)
	if err != nil {
		GetInternalLogger().Error("Failed to rasterize icon", "key", key, "error", err)
		return nil
	}

	cache.Set(key, texture)
	return texture
}
