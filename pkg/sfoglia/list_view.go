package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"
)

// ListView owns a HoverLayout and renders its children into a rectangle of
// the window. It is the Host the layout managers schedule work through:
// layout requests are coalesced and run at the start of the next Render,
// and OnNextRender callbacks run after that frame has been produced.
type ListView struct {
	layout *HoverLayout
	rect   sdl.Rect

	needsLayout bool
	nextRender  []func()
}

// NewListView creates a list view with the given scroll axis and direction.
func NewListView(orientation Orientation, reverse bool) *ListView {
	lv := &ListView{needsLayout: true}
	lv.layout = NewHoverLayout(orientation, reverse)
	lv.layout.SetHost(lv)
	return lv
}

// Layout returns the pinning layout manager for configuration and queries.
func (lv *ListView) Layout() *HoverLayout { return lv.layout }

// SetAdapter swaps the content source.
func (lv *ListView) SetAdapter(adapter Adapter) {
	lv.layout.SetAdapter(adapter)
	lv.RequestLayout()
}

// SetRect positions the list inside the window and sizes its viewport.
func (lv *ListView) SetRect(rect sdl.Rect) {
	lv.rect = rect
	lv.layout.Base().SetViewport(rect.W, rect.H)
	lv.RequestLayout()
}

// Rect returns the list's rectangle inside the window.
func (lv *ListView) Rect() sdl.Rect { return lv.rect }

// RequestLayout schedules a layout pass before the next Render.
func (lv *ListView) RequestLayout() { lv.needsLayout = true }

// OnNextRender queues fn to run once after the next rendered frame.
func (lv *ListView) OnNextRender(fn func()) {
	lv.nextRender = append(lv.nextRender, fn)
}

// ScrollBy scrolls along the layout's axis and returns the consumed delta.
func (lv *ListView) ScrollBy(delta int32) int32 {
	if lv.layout.CanScrollVertically() {
		return lv.layout.ScrollVerticallyBy(delta)
	}
	if lv.layout.CanScrollHorizontally() {
		return lv.layout.ScrollHorizontallyBy(delta)
	}
	return 0
}

// ScrollToPosition scrolls so position sits at the leading edge.
func (lv *ListView) ScrollToPosition(position int) {
	lv.layout.ScrollToPosition(position)
}

// ScrollToPositionWithOffset scrolls position to offset pixels into the
// viewport.
func (lv *ListView) ScrollToPositionWithOffset(position int, offset int32) {
	lv.layout.ScrollToPositionWithOffset(position, offset)
}

// SaveState captures scroll state as an opaque blob.
func (lv *ListView) SaveState() ([]byte, error) {
	return lv.layout.SaveState()
}

// RestoreState reinstates a blob produced by SaveState.
func (lv *ListView) RestoreState(data []byte) error {
	if err := lv.layout.RestoreState(data); err != nil {
		return err
	}
	lv.RequestLayout()
	return nil
}

// Render runs a pending layout pass if one was requested, draws the attached
// children in order (the pinned header is attached last, so it draws on
// top), then fires queued next-render callbacks.
func (lv *ListView) Render(renderer *sdl.Renderer) {
	if lv.needsLayout {
		lv.needsLayout = false
		lv.layout.Layout(false)
	}

	if renderer != nil {
		clip := lv.rect
		renderer.SetClipRect(&clip)
		base := lv.layout.Base()
		for i := 0; i < base.ChildCount(); i++ {
			v := base.ChildAt(i)
			if v.Draw == nil {
				continue
			}
			dst := v.DrawRect()
			dst.X += lv.rect.X
			dst.Y += lv.rect.Y
			v.Draw(renderer, v, dst)
		}
		renderer.SetClipRect(nil)
	}

	if len(lv.nextRender) > 0 {
		callbacks := lv.nextRender
		lv.nextRender = nil
		for _, fn := range callbacks {
			fn()
		}
	}
}
