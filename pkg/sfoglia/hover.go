package sfoglia

import (
	"bytes"
	"encoding/gob"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// HoverLayout is a LinearLayout that pins the current section's header view
// to the viewport's leading edge while its section is scrolled, and lets the
// next section's header push it off as that section arrives.
//
// It owns a LinearLayout rather than extending one: every delegated call
// that walks children runs inside a detach/reattach bracket so the pinned
// view never takes part in the base layout's flow accounting, then the pin
// state is recomputed from the resulting child geometry.
type HoverLayout struct {
	base *LinearLayout

	adapter Adapter
	index   headerIndex

	hover         *View
	hoverPosition int
	attachCount   int

	translationX int32
	translationY int32

	scrollEnabled bool

	pendingPosition int
	pendingOffset   int32
}

// NewHoverLayout creates a pinning layout over a fresh base layout with the
// given axis and direction.
func NewHoverLayout(orientation Orientation, reverse bool) *HoverLayout {
	return &HoverLayout{
		base:            NewLinearLayout(orientation, reverse),
		hoverPosition:   NoPosition,
		scrollEnabled:   true,
		pendingPosition: NoPosition,
		pendingOffset:   InvalidOffset,
	}
}

// Base exposes the underlying layout for host wiring and geometry setup.
func (h *HoverLayout) Base() *LinearLayout { return h.base }

// SetHost attaches the owning widget to both layers.
func (h *HoverLayout) SetHost(host Host) { h.base.SetHost(host) }

// SetAdapter swaps the content source. Any pinned header from the previous
// adapter is discarded and the header index is rebuilt.
func (h *HoverLayout) SetAdapter(adapter Adapter) {
	if h.adapter != nil {
		h.adapter.UnregisterObserver((*hoverObserver)(h))
	}
	if h.hover != nil {
		h.scrapHover(false)
	}

	h.base.SetAdapter(adapter)
	h.adapter = adapter
	if adapter != nil {
		adapter.RegisterObserver((*hoverObserver)(h))
	}
	h.index.rebuild(adapter)
}

// SetScrollEnabled toggles user scrolling. Programmatic scrolls and layout
// keep working while disabled.
func (h *HoverLayout) SetScrollEnabled(enabled bool) { h.scrollEnabled = enabled }

// ScrollEnabled reports whether user scrolling is accepted.
func (h *HoverLayout) ScrollEnabled() bool { return h.scrollEnabled }

// SetHoverTranslationY offsets the pinned header from the leading edge on
// the Y axis. Takes effect on the next layout pass.
func (h *HoverLayout) SetHoverTranslationY(dy int32) {
	h.translationY = dy
	if host := h.base.host; host != nil {
		host.RequestLayout()
	}
}

// SetHoverTranslationX offsets the pinned header from the leading edge on
// the X axis. Takes effect on the next layout pass.
func (h *HoverLayout) SetHoverTranslationX(dx int32) {
	h.translationX = dx
	if host := h.base.host; host != nil {
		host.RequestLayout()
	}
}

// Hover returns the currently pinned header view, or nil.
func (h *HoverLayout) Hover() *View { return h.hover }

// HoverPosition returns the adapter position of the pinned header, or
// NoPosition.
func (h *HoverLayout) HoverPosition() int { return h.hoverPosition }

// IsHovering reports whether position is currently rendered as the pinned
// header.
func (h *HoverLayout) IsHovering(position int) bool {
	return h.hover != nil && h.hoverPosition == position
}

// --- Detach bracket ---

// bracket detaches the pinned view for the duration of a child-walking base
// call and returns the function that reattaches it. Brackets nest: only the
// outermost pair touches the child list.
func (h *HoverLayout) bracket() func() {
	h.attachCount--
	if h.attachCount == 0 && h.hover != nil {
		h.base.DetachView(h.hover)
	}
	return func() {
		h.attachCount++
		if h.attachCount == 1 && h.hover != nil {
			h.base.AttachView(h.hover)
		}
	}
}

// --- Delegated layout & scrolling ---

// Layout performs a layout pass and re-resolves the pinned header against
// the new child geometry.
func (h *HoverLayout) Layout(preLayout bool) {
	release := h.bracket()
	h.base.Layout(preLayout)
	release()
	if !preLayout {
		h.updateHover(true)
	}
}

// CanScrollVertically reports whether user scrolling on the Y axis is
// currently possible.
func (h *HoverLayout) CanScrollVertically() bool {
	return h.scrollEnabled && h.base.CanScrollVertically()
}

// CanScrollHorizontally reports whether user scrolling on the X axis is
// currently possible.
func (h *HoverLayout) CanScrollHorizontally() bool {
	return h.scrollEnabled && h.base.CanScrollHorizontally()
}

// ScrollVerticallyBy scrolls by dy and returns the consumed delta.
func (h *HoverLayout) ScrollVerticallyBy(dy int32) int32 {
	release := h.bracket()
	consumed := h.base.ScrollVerticallyBy(dy)
	release()
	if consumed != 0 {
		h.updateHover(false)
	}
	return consumed
}

// ScrollHorizontallyBy scrolls by dx and returns the consumed delta.
func (h *HoverLayout) ScrollHorizontallyBy(dx int32) int32 {
	release := h.bracket()
	consumed := h.base.ScrollHorizontallyBy(dx)
	release()
	if consumed != 0 {
		h.updateHover(false)
	}
	return consumed
}

// ScrollToPosition scrolls so that position sits at the leading edge,
// compensating for the pinned header.
func (h *HoverLayout) ScrollToPosition(position int) {
	h.ScrollToPositionWithOffset(position, InvalidOffset)
}

// ScrollToPositionWithOffset scrolls so that position's leading edge ends up
// offset pixels into the viewport. If the target would land under a pinned
// header the offset is adjusted so the item is actually visible.
func (h *HoverLayout) ScrollToPositionWithOffset(position int, offset int32) {
	h.scrollToWithOffset(position, offset, true)
}

func (h *HoverLayout) scrollToWithOffset(position int, offset int32, adjustForHover bool) {
	h.setPendingScroll(NoPosition, InvalidOffset)

	if !adjustForHover {
		h.base.ScrollToPositionWithOffset(position, offset)
		return
	}

	headerIdx := h.index.findOrBefore(position)
	if headerIdx == -1 || h.index.find(position) != -1 {
		// No header governs the target, or the target is itself a header.
		h.base.ScrollToPositionWithOffset(position, offset)
		return
	}

	if h.index.find(position-1) != -1 {
		// The target sits right below its header. Scroll to the header so
		// both are visible and nothing needs pinning.
		h.base.ScrollToPositionWithOffset(position-1, offset)
		return
	}

	if h.hover != nil && headerIdx == h.index.find(h.hoverPosition) {
		// The governing header is already pinned and will stay pinned, so
		// make room for it above the target.
		adjusted := h.hoverMainSize()
		if offset != InvalidOffset {
			adjusted += offset
		}
		h.base.ScrollToPositionWithOffset(position, adjusted)
		return
	}

	// The governing header is not pinned yet. Scroll first, then correct
	// once the header view exists and its size is known.
	h.setPendingScroll(position, offset)
	h.base.ScrollToPositionWithOffset(position, offset)
}

func (h *HoverLayout) setPendingScroll(position int, offset int32) {
	h.pendingPosition = position
	h.pendingOffset = offset
}

func (h *HoverLayout) hoverMainSize() int32 {
	if h.base.orientation == Vertical {
		return h.hover.H
	}
	return h.hover.W
}

// --- Delegated queries ---

// ComputeVerticalScrollExtent estimates the visible span for scrollbars.
func (h *HoverLayout) ComputeVerticalScrollExtent() int32 {
	release := h.bracket()
	defer release()
	return h.base.ComputeVerticalScrollExtent()
}

// ComputeVerticalScrollOffset estimates the scrolled distance for scrollbars.
func (h *HoverLayout) ComputeVerticalScrollOffset() int32 {
	release := h.bracket()
	defer release()
	return h.base.ComputeVerticalScrollOffset()
}

// ComputeVerticalScrollRange estimates the total content span for scrollbars.
func (h *HoverLayout) ComputeVerticalScrollRange() int32 {
	release := h.bracket()
	defer release()
	return h.base.ComputeVerticalScrollRange()
}

// ComputeHorizontalScrollExtent estimates the visible span for scrollbars.
func (h *HoverLayout) ComputeHorizontalScrollExtent() int32 {
	release := h.bracket()
	defer release()
	return h.base.ComputeHorizontalScrollExtent()
}

// ComputeHorizontalScrollOffset estimates the scrolled distance for scrollbars.
func (h *HoverLayout) ComputeHorizontalScrollOffset() int32 {
	release := h.bracket()
	defer release()
	return h.base.ComputeHorizontalScrollOffset()
}

// ComputeHorizontalScrollRange estimates the total content span for scrollbars.
func (h *HoverLayout) ComputeHorizontalScrollRange() int32 {
	release := h.bracket()
	defer release()
	return h.base.ComputeHorizontalScrollRange()
}

// ComputeScrollVectorFor returns the direction toward targetPosition.
func (h *HoverLayout) ComputeScrollVectorFor(targetPosition int) sdl.FPoint {
	release := h.bracket()
	defer release()
	return h.base.ComputeScrollVectorFor(targetPosition)
}

// FindFirstVisiblePosition returns the first partially visible position.
func (h *HoverLayout) FindFirstVisiblePosition() int {
	release := h.bracket()
	defer release()
	return h.base.FindFirstVisiblePosition()
}

// FindFirstCompletelyVisiblePosition returns the first fully visible position.
func (h *HoverLayout) FindFirstCompletelyVisiblePosition() int {
	release := h.bracket()
	defer release()
	return h.base.FindFirstCompletelyVisiblePosition()
}

// FindLastVisiblePosition returns the last partially visible position.
func (h *HoverLayout) FindLastVisiblePosition() int {
	release := h.bracket()
	defer release()
	return h.base.FindLastVisiblePosition()
}

// FindLastCompletelyVisiblePosition returns the last fully visible position.
func (h *HoverLayout) FindLastCompletelyVisiblePosition() int {
	release := h.bracket()
	defer release()
	return h.base.FindLastCompletelyVisiblePosition()
}

// FindViewByPosition returns the flowed child bound to position, or nil.
// The pinned header never satisfies this lookup.
func (h *HoverLayout) FindViewByPosition(position int) *View {
	return h.base.FindViewByPosition(position)
}

// --- Pin resolution ---

// updateHover re-resolves which header, if any, must be pinned, given the
// current child geometry. layout forces a rebind even when the governing
// header is unchanged.
func (h *HoverLayout) updateHover(layout bool) {
	if h.index.len() > 0 && h.base.ChildCount() > 0 {
		// Find the first child that can anchor the resolution.
		var anchorView *View
		anchorIndex := -1
		for i := 0; i < h.base.ChildCount(); i++ {
			child := h.base.ChildAt(i)
			if h.isViewValidAnchor(child) {
				anchorView = child
				anchorIndex = i
				break
			}
		}

		if anchorView != nil {
			anchorPos := anchorView.Position
			headerIdx := h.index.findOrBefore(anchorPos)
			headerPos := -1
			if headerIdx != -1 {
				headerPos = h.index.at(headerIdx)
			}
			nextHeaderPos := -1
			if headerIdx+1 < h.index.len() {
				nextHeaderPos = h.index.at(headerIdx + 1)
			}

			// Pin only when a header governs the anchor, the header itself
			// is not resting fully inside the viewport, and the next header
			// is not immediately adjacent.
			if headerPos != -1 &&
				(headerPos != anchorPos || h.isViewOnBoundary(anchorView)) &&
				nextHeaderPos != headerPos+1 {

				if h.hover != nil && h.hover.Kind != h.adapter.Kind(headerPos) {
					// The header kind changed, a rebind is not enough.
					h.scrapHover(true)
				}
				if h.hover == nil {
					h.createHover(headerPos)
				}
				if layout || h.hover.Position != headerPos {
					h.bindHover(headerPos)
				}

				// The next header pushes the pinned one off as it arrives.
				var nextHeaderView *View
				if nextHeaderPos != -1 {
					nextHeaderView = h.base.ChildAt(anchorIndex + (nextHeaderPos - anchorPos))
					if nextHeaderView == h.hover {
						nextHeaderView = nil
					}
				}
				h.hover.TranslationX = h.hoverX(nextHeaderView)
				h.hover.TranslationY = h.hoverY(nextHeaderView)
				return
			}
		}
	}

	if h.hover != nil {
		h.scrapHover(true)
	}
}

// isViewValidAnchor reports whether child's binding is current and at least
// part of it has not scrolled past the leading edge.
func (h *HoverLayout) isViewValidAnchor(child *View) bool {
	if child.Removed || child.Invalid {
		return false
	}
	if h.base.orientation == Vertical {
		if h.base.reverse {
			return child.Top()+child.TranslationY <= h.base.height+h.translationY
		}
		return child.Bottom()-child.TranslationY >= h.translationY
	}
	if h.base.reverse {
		return child.Left()+child.TranslationX <= h.base.width+h.translationX
	}
	return child.Right()-child.TranslationX >= h.translationX
}

// isViewOnBoundary reports whether child has started to cross the leading
// edge, meaning its own header row no longer fully shows.
func (h *HoverLayout) isViewOnBoundary(child *View) bool {
	if h.base.orientation == Vertical {
		if h.base.reverse {
			return child.Bottom()-child.TranslationY > h.base.height+h.translationY
		}
		return child.Top()+child.TranslationY < h.translationY
	}
	if h.base.reverse {
		return child.Right()-child.TranslationX > h.base.width+h.translationX
	}
	return child.Left()+child.TranslationX < h.translationX
}

// hoverY resolves the pinned view's Y translation, honoring the push-off
// from the next section's header.
func (h *HoverLayout) hoverY(nextHeader *View) int32 {
	if h.base.orientation != Vertical {
		return h.translationY
	}
	y := h.translationY
	if h.base.reverse {
		y += h.base.height - h.hover.H
	}
	if nextHeader != nil {
		if h.base.reverse {
			if limit := nextHeader.Bottom() + nextHeader.Margins.Bottom; limit > y {
				y = limit
			}
		} else {
			if limit := nextHeader.Top() - nextHeader.Margins.Top - h.hover.H; limit < y {
				y = limit
			}
		}
	}
	return y
}

// hoverX resolves the pinned view's X translation, honoring the push-off
// from the next section's header.
func (h *HoverLayout) hoverX(nextHeader *View) int32 {
	if h.base.orientation != Horizontal {
		return h.translationX
	}
	x := h.translationX
	if h.base.reverse {
		x += h.base.width - h.hover.W
	}
	if nextHeader != nil {
		if h.base.reverse {
			if limit := nextHeader.Right() + nextHeader.Margins.Right; limit > x {
				x = limit
			}
		} else {
			if limit := nextHeader.Left() - nextHeader.Margins.Left - h.hover.W; limit < x {
				x = limit
			}
		}
	}
	return x
}

// --- Pinned view lifecycle ---

func (h *HoverLayout) createHover(position int) {
	hover := h.base.Recycler().ViewFor(position)
	if listener, ok := h.adapter.(HoverAttachListener); ok {
		listener.OnAttachHover(hover)
	}
	h.base.AddView(hover)
	h.measureAndLayoutHover(hover)
	h.base.IgnoreView(hover)
	h.hover = hover
	h.hoverPosition = position
	h.attachCount = 1
	internal.GetInternalLogger().Debug("pinned header created", "position", position)
}

func (h *HoverLayout) bindHover(position int) {
	h.base.Recycler().Bind(h.hover, position)
	h.hoverPosition = position
	h.measureAndLayoutHover(h.hover)

	// A position-and-offset scroll may have been waiting for the pinned
	// view to exist so its size could be compensated for. Re-run it after
	// this frame settles, unless a newer request superseded it.
	if h.pendingPosition != NoPosition && h.base.host != nil {
		queuedPosition, queuedOffset := h.pendingPosition, h.pendingOffset
		h.base.host.OnNextRender(func() {
			if h.pendingPosition != queuedPosition || h.pendingOffset != queuedOffset {
				return
			}
			h.setPendingScroll(NoPosition, InvalidOffset)
			h.scrollToWithOffset(queuedPosition, queuedOffset, true)
		})
	}
}

func (h *HoverLayout) scrapHover(recycle bool) {
	hover := h.hover
	h.hover = nil
	h.hoverPosition = NoPosition
	h.attachCount = 0
	hover.resetTranslation()
	if listener, ok := h.adapter.(HoverAttachListener); ok {
		listener.OnDetachHover(hover)
	}
	h.base.StopIgnoringView(hover)
	h.base.RemoveView(hover)
	if recycle {
		h.base.Recycler().Recycle(hover)
	}
	internal.GetInternalLogger().Debug("pinned header scrapped", "recycled", recycle)
}

// measureAndLayoutHover places the pinned view at the zero edge of the
// scroll axis, spanning the padded viewport across. Its translation then
// positions it each pass.
func (h *HoverLayout) measureAndLayoutHover(hover *View) {
	if h.base.orientation == Vertical {
		hover.X = h.base.padding.Left
		hover.W = h.base.width - h.base.padding.Horizontal()
		hover.Y = 0
	} else {
		hover.Y = h.base.padding.Top
		hover.H = h.base.height - h.base.padding.Vertical()
		hover.X = 0
	}
}

// --- Data change handling ---

// hoverObserver adapts adapter notifications onto the header index and the
// pinned view's lifecycle. Defined as a distinct type so HoverLayout's own
// method set stays free of DataObserver.
type hoverObserver HoverLayout

func (o *hoverObserver) layout() *HoverLayout { return (*HoverLayout)(o) }

func (o *hoverObserver) Changed() {
	h := o.layout()
	h.index.rebuild(h.adapter)
	if h.hover != nil && !h.index.contains(h.hoverPosition) {
		h.scrapHover(false)
	}
	h.requestLayout()
}

func (o *hoverObserver) RangeInserted(start, count int) {
	h := o.layout()
	h.index.applyInserted(h.adapter, start, count)
	if h.hover != nil && h.hoverPosition >= start {
		h.hoverPosition += count
		h.hover.Position = h.hoverPosition
	}
	h.requestLayout()
}

func (o *hoverObserver) RangeRemoved(start, count int) {
	h := o.layout()
	pinnedDeleted := h.index.applyRemoved(start, count, h.hoverPosition)
	if h.hover != nil {
		if pinnedDeleted {
			h.scrapHover(false)
		} else if h.hoverPosition >= start+count {
			h.hoverPosition -= count
			h.hover.Position = h.hoverPosition
		}
	}
	h.requestLayout()
}

func (o *hoverObserver) RangeMoved(from, to, count int) {
	h := o.layout()
	h.index.applyMoved(from, to, count)
	if h.hover != nil {
		pos := h.hoverPosition
		switch {
		case pos >= from && pos < from+count:
			pos += to - from
		case from < to && pos >= from+count && pos <= to:
			pos -= count
		case from > to && pos >= to && pos < from:
			pos += count
		}
		if pos != h.hoverPosition {
			h.hoverPosition = pos
			h.hover.Position = pos
		}
	}
	h.requestLayout()
}

func (h *HoverLayout) requestLayout() {
	if h.base.host != nil {
		h.base.host.RequestLayout()
	}
}

// --- Saved state ---

// hoverSavedState carries the pinning layer's pending scroll on top of the
// base layout's anchor.
type hoverSavedState struct {
	PendingScrollPosition int
	PendingScrollOffset   int32
	Super                 []byte
}

// SaveState captures scroll position and any pending position-with-offset
// request as an opaque blob.
func (h *HoverLayout) SaveState() ([]byte, error) {
	super, err := h.base.SaveState()
	if err != nil {
		return nil, err
	}
	state := hoverSavedState{
		PendingScrollPosition: h.pendingPosition,
		PendingScrollOffset:   h.pendingOffset,
		Super:                 super,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RestoreState reinstates a blob produced by SaveState.
func (h *HoverLayout) RestoreState(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var state hoverSavedState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}
	h.pendingPosition = state.PendingScrollPosition
	h.pendingOffset = state.PendingScrollOffset
	return h.base.RestoreState(state.Super)
}
