package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// NoPosition marks a view that does not currently represent an adapter entry.
const NoPosition = -1

// View is a single laid-out list child: a rectangle the adapter draws into.
// Geometry is in viewport pixels; translation is applied on top of the laid-out
// rect at draw time, which is how the pinned header is moved without
// re-laying it out.
type View struct {
	Position int // adapter position this view is bound to, or NoPosition
	Kind     int // adapter item kind, fixed at creation

	X, Y int32 // laid-out top-left corner
	W, H int32 // measured size

	TranslationX int32
	TranslationY int32

	Margins internal.Padding

	Removed bool // the underlying entry is pending removal
	Invalid bool // the binding is stale and must not anchor layout

	ignored bool // excluded from flow accounting; managed by its owner

	// Draw renders the view's content into dst. Set by the adapter at
	// creation; nil views render nothing (useful headless).
	Draw func(renderer *sdl.Renderer, view *View, dst sdl.Rect)
}

// Left returns the laid-out left edge, without translation.
func (v *View) Left() int32 { return v.X }

// Top returns the laid-out top edge, without translation.
func (v *View) Top() int32 { return v.Y }

// Right returns the laid-out right edge, without translation.
func (v *View) Right() int32 { return v.X + v.W }

// Bottom returns the laid-out bottom edge, without translation.
func (v *View) Bottom() int32 { return v.Y + v.H }

// DrawRect returns the on-screen rectangle including translation.
func (v *View) DrawRect() sdl.Rect {
	return sdl.Rect{
		X: v.X + v.TranslationX,
		Y: v.Y + v.TranslationY,
		W: v.W,
		H: v.H,
	}
}

func (v *View) resetTranslation() {
	v.TranslationX = 0
	v.TranslationY = 0
}
