package sfoglia

import (
	"bytes"
	"encoding/gob"
	"math"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Orientation selects the scroll axis of a list.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// InvalidOffset means "no specific offset" in scroll-to-position requests.
const InvalidOffset = math.MinInt32

// Host is what a layout manager needs from the widget that owns it: the
// ability to schedule a layout pass and to run a callback once the next
// rendered frame (layout included) has completed.
type Host interface {
	RequestLayout()
	OnNextRender(fn func())
}

// LinearLayout is the base list layout: it fills the viewport with
// consecutive item views, scrolls them with edge clamping, and recycles
// views that leave the viewport. HoverLayout builds the pinned-header
// behavior on top of it by delegation.
//
// Internally all main-axis math happens in "axis space", where coordinates
// increase in the direction of increasing adapter position regardless of
// orientation and the reverse flag. Physical rects are produced at placement.
type LinearLayout struct {
	orientation Orientation
	reverse     bool

	adapter  Adapter
	recycler *Recycler
	host     Host

	width, height int32
	padding       internal.Padding

	// attached holds every attached view in draw order: the flowed children
	// first, in ascending position order, then any ignored views (the pinned
	// header). Offsetting during a scroll touches all of them, which is why
	// HoverLayout detaches its header around every pass.
	attached []*View

	pendingPosition int
	pendingOffset   int32
}

// NewLinearLayout creates a base layout with the given axis and direction.
func NewLinearLayout(orientation Orientation, reverse bool) *LinearLayout {
	return &LinearLayout{
		orientation:     orientation,
		reverse:         reverse,
		pendingPosition: NoPosition,
		pendingOffset:   InvalidOffset,
	}
}

// Orientation returns the scroll axis.
func (l *LinearLayout) Orientation() Orientation { return l.orientation }

// ReverseLayout reports whether positions grow from the trailing edge.
func (l *LinearLayout) ReverseLayout() bool { return l.reverse }

// SetHost attaches the owning widget.
func (l *LinearLayout) SetHost(host Host) { l.host = host }

// SetViewport sets the viewport size in pixels.
func (l *LinearLayout) SetViewport(width, height int32) {
	l.width = width
	l.height = height
}

// Width returns the viewport width.
func (l *LinearLayout) Width() int32 { return l.width }

// Height returns the viewport height.
func (l *LinearLayout) Height() int32 { return l.height }

// SetPadding sets the viewport padding. Children are laid out inside it.
func (l *LinearLayout) SetPadding(padding internal.Padding) { l.padding = padding }

// Padding returns the viewport padding.
func (l *LinearLayout) Padding() internal.Padding { return l.padding }

// SetAdapter swaps the content source. Attached flowed views are dropped.
func (l *LinearLayout) SetAdapter(adapter Adapter) {
	l.detachAndRecycleFlowed()
	l.adapter = adapter
	if adapter != nil {
		l.recycler = NewRecycler(adapter)
	} else {
		l.recycler = nil
	}
}

// Adapter returns the current content source.
func (l *LinearLayout) Adapter() Adapter { return l.adapter }

// Recycler returns the view recycler. Valid once an adapter is set.
func (l *LinearLayout) Recycler() *Recycler { return l.recycler }

// ItemCount returns the adapter's item count, or 0 without an adapter.
func (l *LinearLayout) ItemCount() int {
	if l.adapter == nil {
		return 0
	}
	return l.adapter.Count()
}

// --- Attached-child bookkeeping ---

// ChildCount returns the number of attached views, ignored ones included.
func (l *LinearLayout) ChildCount() int { return len(l.attached) }

// ChildAt returns the attached view at index i, or nil out of range.
// Flowed children come first in ascending position order.
func (l *LinearLayout) ChildAt(i int) *View {
	if i < 0 || i >= len(l.attached) {
		return nil
	}
	return l.attached[i]
}

// AddView attaches a view without flowing it through layout. Used by
// HoverLayout for the pinned header.
func (l *LinearLayout) AddView(v *View) {
	l.attached = append(l.attached, v)
}

// RemoveView detaches v permanently.
func (l *LinearLayout) RemoveView(v *View) {
	l.detach(v)
}

// DetachView temporarily detaches v, keeping its state.
func (l *LinearLayout) DetachView(v *View) {
	l.detach(v)
}

// AttachView reattaches a previously detached view at the end of the
// draw order.
func (l *LinearLayout) AttachView(v *View) {
	l.attached = append(l.attached, v)
}

// IgnoreView excludes v from flow accounting. It stays attached and is
// still moved by scroll offsets.
func (l *LinearLayout) IgnoreView(v *View) { v.ignored = true }

// StopIgnoringView returns v to normal accounting so it can be recycled.
func (l *LinearLayout) StopIgnoringView(v *View) { v.ignored = false }

func (l *LinearLayout) detach(v *View) {
	for i, c := range l.attached {
		if c == v {
			l.attached = append(l.attached[:i], l.attached[i+1:]...)
			return
		}
	}
}

func (l *LinearLayout) firstFlowed() *View {
	for _, v := range l.attached {
		if !v.ignored {
			return v
		}
	}
	return nil
}

func (l *LinearLayout) lastFlowed() *View {
	for i := len(l.attached) - 1; i >= 0; i-- {
		if !l.attached[i].ignored {
			return l.attached[i]
		}
	}
	return nil
}

func (l *LinearLayout) prependFlowed(v *View) {
	l.attached = append(l.attached, nil)
	copy(l.attached[1:], l.attached)
	l.attached[0] = v
}

func (l *LinearLayout) appendFlowed(v *View) {
	i := 0
	for ; i < len(l.attached); i++ {
		if l.attached[i].ignored {
			break
		}
	}
	l.attached = append(l.attached, nil)
	copy(l.attached[i+1:], l.attached[i:])
	l.attached[i] = v
}

func (l *LinearLayout) detachAndRecycleFlowed() {
	kept := l.attached[:0]
	for _, v := range l.attached {
		if v.ignored {
			kept = append(kept, v)
		} else if l.recycler != nil {
			l.recycler.Recycle(v)
		}
	}
	l.attached = kept
}

// --- Axis-space geometry ---

func (l *LinearLayout) viewportMain() int32 {
	if l.orientation == Vertical {
		return l.height
	}
	return l.width
}

func (l *LinearLayout) axisStart() int32 {
	if l.orientation == Vertical {
		if l.reverse {
			return l.padding.Bottom
		}
		return l.padding.Top
	}
	if l.reverse {
		return l.padding.Right
	}
	return l.padding.Left
}

func (l *LinearLayout) axisEnd() int32 {
	if l.orientation == Vertical {
		if l.reverse {
			return l.height - l.padding.Top
		}
		return l.height - l.padding.Bottom
	}
	if l.reverse {
		return l.width - l.padding.Left
	}
	return l.width - l.padding.Right
}

func (l *LinearLayout) mainSize(v *View) int32 {
	if l.orientation == Vertical {
		return v.H
	}
	return v.W
}

// decoratedMain returns the view's main-axis footprint including margins.
func (l *LinearLayout) decoratedMain(v *View) int32 {
	if l.orientation == Vertical {
		return v.H + v.Margins.Vertical()
	}
	return v.W + v.Margins.Horizontal()
}

// childStart returns the axis-space start of v's decorated bounds.
func (l *LinearLayout) childStart(v *View) int32 {
	if l.orientation == Vertical {
		if l.reverse {
			return l.height - (v.Y + v.H + v.Margins.Bottom)
		}
		return v.Y - v.Margins.Top
	}
	if l.reverse {
		return l.width - (v.X + v.W + v.Margins.Right)
	}
	return v.X - v.Margins.Left
}

// childEnd returns the axis-space end of v's decorated bounds.
func (l *LinearLayout) childEnd(v *View) int32 {
	return l.childStart(v) + l.decoratedMain(v)
}

// placeChild positions v so its decorated bounds start at axis coordinate a.
func (l *LinearLayout) placeChild(v *View, a int32) {
	if l.orientation == Vertical {
		if l.reverse {
			v.Y = l.height - a - v.Margins.Bottom - v.H
		} else {
			v.Y = a + v.Margins.Top
		}
		return
	}
	if l.reverse {
		v.X = l.width - a - v.Margins.Right - v.W
	} else {
		v.X = a + v.Margins.Left
	}
}

// measureChild sizes v across the cross axis: children span the full
// viewport minus padding and their own margins. The main-axis size comes
// from the adapter at bind time.
func (l *LinearLayout) measureChild(v *View) {
	if l.orientation == Vertical {
		v.W = l.width - l.padding.Horizontal() - v.Margins.Horizontal()
		v.X = l.padding.Left + v.Margins.Left
	} else {
		v.H = l.height - l.padding.Vertical() - v.Margins.Vertical()
		v.Y = l.padding.Top + v.Margins.Top
	}
}

// offsetChildrenAxis moves every attached view, ignored ones included, by
// delta in axis space.
func (l *LinearLayout) offsetChildrenAxis(delta int32) {
	physical := delta
	if l.reverse {
		physical = -delta
	}
	for _, v := range l.attached {
		if l.orientation == Vertical {
			v.Y += physical
		} else {
			v.X += physical
		}
	}
}

// --- Layout & fill ---

// SetPendingScroll records a programmatic scroll target applied on the next
// layout pass.
func (l *LinearLayout) SetPendingScroll(position int, offset int32) {
	l.pendingPosition = position
	l.pendingOffset = offset
}

// ScrollToPositionWithOffset schedules a layout that puts position's leading
// edge offset pixels from the viewport's leading edge.
func (l *LinearLayout) ScrollToPositionWithOffset(position int, offset int32) {
	l.SetPendingScroll(position, offset)
	if l.host != nil {
		l.host.RequestLayout()
	}
}

// Layout performs a full layout pass. Preliminary passes (preLayout) keep
// the previous children untouched.
func (l *LinearLayout) Layout(preLayout bool) {
	if preLayout {
		return
	}

	count := l.ItemCount()
	if count == 0 {
		l.detachAndRecycleFlowed()
		l.pendingPosition = NoPosition
		l.pendingOffset = InvalidOffset
		return
	}

	anchorPos := 0
	anchorAxis := l.axisStart()

	if l.pendingPosition != NoPosition {
		anchorPos = l.pendingPosition
		if anchorPos >= count {
			anchorPos = count - 1
		}
		if anchorPos < 0 {
			anchorPos = 0
		}
		if l.pendingOffset != InvalidOffset {
			anchorAxis = l.axisStart() + l.pendingOffset
		}
		l.pendingPosition = NoPosition
		l.pendingOffset = InvalidOffset
	} else if first := l.firstFlowed(); first != nil {
		anchorPos = first.Position
		if anchorPos >= count {
			anchorPos = count - 1
		} else {
			anchorAxis = l.childStart(first)
		}
	}

	l.detachAndRecycleFlowed()
	l.fillFrom(anchorPos, anchorAxis)
	l.fixGaps()
}

func (l *LinearLayout) fillFrom(pos int, axis int32) {
	count := l.ItemCount()

	a := axis
	for p := pos; p < count && a < l.axisEnd(); p++ {
		v := l.recycler.ViewFor(p)
		l.measureChild(v)
		l.placeChild(v, a)
		l.appendFlowed(v)
		a += l.decoratedMain(v)
	}

	a = axis
	for p := pos - 1; p >= 0 && a > l.axisStart(); p-- {
		v := l.recycler.ViewFor(p)
		l.measureChild(v)
		a -= l.decoratedMain(v)
		l.placeChild(v, a)
		l.prependFlowed(v)
	}
}

// fillEnd appends views after the last flowed child until axis coordinate
// limit is covered or the adapter runs out.
func (l *LinearLayout) fillEnd(limit int32) {
	last := l.lastFlowed()
	if last == nil {
		return
	}
	a := l.childEnd(last)
	for p := last.Position + 1; p < l.ItemCount() && a < limit; p++ {
		v := l.recycler.ViewFor(p)
		l.measureChild(v)
		l.placeChild(v, a)
		l.appendFlowed(v)
		a += l.decoratedMain(v)
	}
}

// fillStart prepends views before the first flowed child until axis
// coordinate limit is covered or position 0 is reached.
func (l *LinearLayout) fillStart(limit int32) {
	first := l.firstFlowed()
	if first == nil {
		return
	}
	a := l.childStart(first)
	for p := first.Position - 1; p >= 0 && a > limit; p-- {
		v := l.recycler.ViewFor(p)
		l.measureChild(v)
		a -= l.decoratedMain(v)
		l.placeChild(v, a)
		l.prependFlowed(v)
	}
}

func (l *LinearLayout) fixGaps() {
	first := l.firstFlowed()
	last := l.lastFlowed()
	if first == nil || last == nil {
		return
	}

	if last.Position == l.ItemCount()-1 {
		if gap := l.axisEnd() - l.childEnd(last); gap > 0 {
			l.offsetChildrenAxis(gap)
			l.fillStart(l.axisStart())
			if ff := l.firstFlowed(); ff.Position == 0 {
				if over := l.childStart(ff) - l.axisStart(); over > 0 {
					l.offsetChildrenAxis(-over)
					l.fillEnd(l.axisEnd())
				}
			}
		}
	} else if first.Position == 0 {
		if gap := l.childStart(first) - l.axisStart(); gap > 0 {
			l.offsetChildrenAxis(-gap)
			l.fillEnd(l.axisEnd())
		}
	}

	l.recycleOffscreen()
}

func (l *LinearLayout) recycleOffscreen() {
	kept := l.attached[:0]
	for _, v := range l.attached {
		if !v.ignored && (l.childEnd(v) <= l.axisStart() || l.childStart(v) >= l.axisEnd()) {
			l.recycler.Recycle(v)
			continue
		}
		kept = append(kept, v)
	}
	l.attached = kept
}

// --- Scrolling ---

// CanScrollVertically reports whether this layout scrolls on the Y axis.
func (l *LinearLayout) CanScrollVertically() bool { return l.orientation == Vertical }

// CanScrollHorizontally reports whether this layout scrolls on the X axis.
func (l *LinearLayout) CanScrollHorizontally() bool { return l.orientation == Horizontal }

// ScrollVerticallyBy scrolls the content by dy pixels (positive scrolls
// toward larger positions in normal layout) and returns the consumed delta.
func (l *LinearLayout) ScrollVerticallyBy(dy int32) int32 {
	if l.orientation != Vertical || dy == 0 {
		return 0
	}
	return l.scrollPhysicalBy(dy)
}

// ScrollHorizontallyBy scrolls the content by dx pixels and returns the
// consumed delta.
func (l *LinearLayout) ScrollHorizontallyBy(dx int32) int32 {
	if l.orientation != Horizontal || dx == 0 {
		return 0
	}
	return l.scrollPhysicalBy(dx)
}

func (l *LinearLayout) scrollPhysicalBy(delta int32) int32 {
	axisDelta := delta
	if l.reverse {
		axisDelta = -delta
	}
	consumed := l.scrollAxisBy(axisDelta)
	if l.reverse {
		return -consumed
	}
	return consumed
}

func (l *LinearLayout) scrollAxisBy(delta int32) int32 {
	if delta == 0 || l.firstFlowed() == nil {
		return 0
	}

	var consumed int32
	if delta > 0 {
		l.fillEnd(l.axisEnd() + delta)
		last := l.lastFlowed()
		available := l.childEnd(last) - l.axisEnd()
		if available < 0 {
			available = 0
		}
		consumed = delta
		if last.Position == l.ItemCount()-1 && available < delta {
			consumed = available
		}
	} else {
		l.fillStart(l.axisStart() + delta)
		first := l.firstFlowed()
		available := l.childStart(first) - l.axisStart()
		if available > 0 {
			available = 0
		}
		consumed = delta
		if first.Position == 0 && available > delta {
			consumed = available
		}
	}

	if consumed == 0 {
		return 0
	}

	l.offsetChildrenAxis(-consumed)
	l.recycleOffscreen()
	return consumed
}

// --- Scroll indicator estimates ---

func (l *LinearLayout) averageChildMain() int32 {
	var total int32
	var n int32
	for _, v := range l.attached {
		if v.ignored {
			continue
		}
		total += l.decoratedMain(v)
		n++
	}
	if n == 0 {
		return 0
	}
	return total / n
}

func (l *LinearLayout) computeExtent() int32 {
	span := l.axisEnd() - l.axisStart()
	if r := l.computeRange(); r < span {
		return r
	}
	return span
}

func (l *LinearLayout) computeRange() int32 {
	return l.averageChildMain() * int32(l.ItemCount())
}

func (l *LinearLayout) computeOffset() int32 {
	first := l.firstFlowed()
	if first == nil {
		return 0
	}
	offset := int32(first.Position)*l.averageChildMain() + (l.axisStart() - l.childStart(first))
	if offset < 0 {
		offset = 0
	}
	if l.reverse {
		offset = l.computeRange() - l.computeExtent() - offset
		if offset < 0 {
			offset = 0
		}
	}
	return offset
}

// ComputeVerticalScrollExtent estimates the visible span for scrollbars.
func (l *LinearLayout) ComputeVerticalScrollExtent() int32 {
	if l.orientation != Vertical {
		return 0
	}
	return l.computeExtent()
}

// ComputeVerticalScrollOffset estimates the scrolled distance for scrollbars.
func (l *LinearLayout) ComputeVerticalScrollOffset() int32 {
	if l.orientation != Vertical {
		return 0
	}
	return l.computeOffset()
}

// ComputeVerticalScrollRange estimates the total content span for scrollbars.
func (l *LinearLayout) ComputeVerticalScrollRange() int32 {
	if l.orientation != Vertical {
		return 0
	}
	return l.computeRange()
}

// ComputeHorizontalScrollExtent estimates the visible span for scrollbars.
func (l *LinearLayout) ComputeHorizontalScrollExtent() int32 {
	if l.orientation != Horizontal {
		return 0
	}
	return l.computeExtent()
}

// ComputeHorizontalScrollOffset estimates the scrolled distance for scrollbars.
func (l *LinearLayout) ComputeHorizontalScrollOffset() int32 {
	if l.orientation != Horizontal {
		return 0
	}
	return l.computeOffset()
}

// ComputeHorizontalScrollRange estimates the total content span for scrollbars.
func (l *LinearLayout) ComputeHorizontalScrollRange() int32 {
	if l.orientation != Horizontal {
		return 0
	}
	return l.computeRange()
}

// ComputeScrollVectorFor returns the direction toward targetPosition as a
// unit vector along the scroll axis.
func (l *LinearLayout) ComputeScrollVectorFor(targetPosition int) sdl.FPoint {
	first := l.firstFlowed()
	if first == nil {
		return sdl.FPoint{}
	}
	direction := float32(1)
	if targetPosition < first.Position {
		direction = -1
	}
	if l.reverse {
		direction = -direction
	}
	if l.orientation == Vertical {
		return sdl.FPoint{Y: direction}
	}
	return sdl.FPoint{X: direction}
}

// --- Position queries ---

// FindFirstVisiblePosition returns the position of the first flowed child
// with any part inside the viewport, or NoPosition.
func (l *LinearLayout) FindFirstVisiblePosition() int {
	for _, v := range l.attached {
		if v.ignored {
			continue
		}
		if l.childEnd(v) > l.axisStart() && l.childStart(v) < l.axisEnd() {
			return v.Position
		}
	}
	return NoPosition
}

// FindFirstCompletelyVisiblePosition returns the position of the first
// flowed child fully inside the viewport, or NoPosition.
func (l *LinearLayout) FindFirstCompletelyVisiblePosition() int {
	for _, v := range l.attached {
		if v.ignored {
			continue
		}
		if l.childStart(v) >= l.axisStart() && l.childEnd(v) <= l.axisEnd() {
			return v.Position
		}
	}
	return NoPosition
}

// FindLastVisiblePosition returns the position of the last flowed child
// with any part inside the viewport, or NoPosition.
func (l *LinearLayout) FindLastVisiblePosition() int {
	for i := len(l.attached) - 1; i >= 0; i-- {
		v := l.attached[i]
		if v.ignored {
			continue
		}
		if l.childEnd(v) > l.axisStart() && l.childStart(v) < l.axisEnd() {
			return v.Position
		}
	}
	return NoPosition
}

// FindLastCompletelyVisiblePosition returns the position of the last flowed
// child fully inside the viewport, or NoPosition.
func (l *LinearLayout) FindLastCompletelyVisiblePosition() int {
	for i := len(l.attached) - 1; i >= 0; i-- {
		v := l.attached[i]
		if v.ignored {
			continue
		}
		if l.childStart(v) >= l.axisStart() && l.childEnd(v) <= l.axisEnd() {
			return v.Position
		}
	}
	return NoPosition
}

// FindViewByPosition returns the flowed child bound to position, or nil.
func (l *LinearLayout) FindViewByPosition(position int) *View {
	for _, v := range l.attached {
		if !v.ignored && v.Position == position {
			return v
		}
	}
	return nil
}

// --- Saved state ---

// linearSavedState is the base layout's contribution to instance state.
type linearSavedState struct {
	AnchorPosition int
	AnchorOffset   int32
}

// SaveState captures the scroll anchor as an opaque blob.
func (l *LinearLayout) SaveState() ([]byte, error) {
	state := linearSavedState{AnchorPosition: NoPosition, AnchorOffset: InvalidOffset}
	if first := l.firstFlowed(); first != nil {
		state.AnchorPosition = first.Position
		state.AnchorOffset = l.childStart(first) - l.axisStart()
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RestoreState schedules a layout that restores a previously saved anchor.
func (l *LinearLayout) RestoreState(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var state linearSavedState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}
	if state.AnchorPosition != NoPosition {
		l.SetPendingScroll(state.AnchorPosition, state.AnchorOffset)
	}
	return nil
}
