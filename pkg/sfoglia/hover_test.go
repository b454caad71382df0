package sfoglia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// newListHarness builds a 100x240 vertical list over adapter and runs the
// first layout pass. With 40px rows, six children fill the viewport.
func newListHarness(adapter Adapter) *ListView {
	lv := NewListView(Vertical, false)
	lv.SetRect(sdl.Rect{W: 100, H: 240})
	lv.SetAdapter(adapter)
	lv.Render(nil)
	return lv
}

func TestHoverNoPinWhileHeaderResting(t *testing.T) {
	lv := newListHarness(sections(5, 5, 5))

	assert.Nil(t, lv.Layout().Hover(), "a header resting in place needs no pin")
	assert.Equal(t, NoPosition, lv.Layout().HoverPosition())
}

func TestHoverPinsOnScroll(t *testing.T) {
	adapter := sections(5, 5, 5)
	lv := newListHarness(adapter)

	consumed := lv.ScrollBy(20)
	require.Equal(t, int32(20), consumed)

	layout := lv.Layout()
	hover := layout.Hover()
	require.NotNil(t, hover, "header crossing the edge gets pinned")
	assert.Equal(t, 0, layout.HoverPosition())
	assert.True(t, layout.IsHovering(0))
	assert.Equal(t, int32(0), hover.TranslationY, "pinned flush to the leading edge")
	assert.Equal(t, 1, adapter.attached)

	base := layout.Base()
	assert.Same(t, hover, base.ChildAt(base.ChildCount()-1), "pinned view draws last")
}

func TestHoverPushOffByNextHeader(t *testing.T) {
	lv := newListHarness(sections(5, 5, 5))

	lv.ScrollBy(230)

	hover := lv.Layout().Hover()
	require.NotNil(t, hover)
	assert.Equal(t, 0, lv.Layout().HoverPosition())
	assert.Equal(t, int32(-30), hover.TranslationY, "next header 10px from the edge pushes a 40px pin up by 30")
	assert.Equal(t, int32(-30), hover.DrawRect().Y)
}

func TestHoverHandoffBetweenSections(t *testing.T) {
	adapter := sections(5, 5, 5)
	lv := newListHarness(adapter)

	lv.ScrollBy(230)
	first := lv.Layout().Hover()
	require.NotNil(t, first)

	// The next header reaches the edge: nothing needs pinning.
	lv.ScrollBy(10)
	assert.Nil(t, lv.Layout().Hover())

	// It crosses the edge: now it pins.
	lv.ScrollBy(20)
	require.NotNil(t, lv.Layout().Hover())
	assert.Equal(t, 6, lv.Layout().HoverPosition())
}

func TestHoverAdjacentHeadersSuppressPin(t *testing.T) {
	// A section with no rows stacks its header back to back with the next
	// one: headers sit at positions 0, 1 and 7.
	lv := newListHarness(sections(0, 5, 5))

	lv.ScrollBy(20)
	layout := lv.Layout()
	assert.Nil(t, layout.Hover(), "a header immediately followed by another never pins")
	assert.Equal(t, NoPosition, layout.HoverPosition())

	// Once the second header crosses the edge it governs alone and pins
	// as usual.
	lv.ScrollBy(40)
	require.NotNil(t, layout.Hover())
	assert.Equal(t, 1, layout.HoverPosition())
}

func TestHoverRebindReusesView(t *testing.T) {
	adapter := sections(5, 5, 5)
	lv := newListHarness(adapter)

	lv.ScrollBy(230)
	first := lv.Layout().Hover()
	require.NotNil(t, first)
	require.Equal(t, 0, first.Position)

	// One scroll step carries the boundary past the next header, so the
	// pin re-resolves from header 0 to header 6 in a single pass.
	lv.ScrollBy(30)
	second := lv.Layout().Hover()
	require.NotNil(t, second)
	assert.Same(t, first, second, "same kind rebinds in place")
	assert.Equal(t, 6, second.Position)
	assert.Equal(t, 1, adapter.attached, "rebinding is not a new pin")
}

func TestHoverKindChangeRecreates(t *testing.T) {
	adapter := sections(5, 5, 5)
	adapter.items[6].kind = 2
	lv := newListHarness(adapter)

	lv.ScrollBy(230)
	first := lv.Layout().Hover()
	require.NotNil(t, first)
	require.Equal(t, 1, first.Kind)

	lv.ScrollBy(30)
	second := lv.Layout().Hover()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, second.Kind)
	assert.Equal(t, 2, adapter.attached)
	assert.Equal(t, 1, adapter.detached)
}

func TestHoverScrapsWhenPinnedHeaderRemoved(t *testing.T) {
	adapter := sections(5, 5, 5)
	lv := newListHarness(adapter)

	lv.ScrollBy(20)
	require.NotNil(t, lv.Layout().Hover())

	adapter.items = adapter.items[2:]
	adapter.NotifyRemoved(0, 2)

	assert.Nil(t, lv.Layout().Hover(), "deleting the pinned header drops the pin immediately")
	assert.Equal(t, 1, adapter.detached)
	assert.Equal(t, []int{4, 10}, lv.Layout().index.positions)
}

func TestHoverInsertShiftsPinnedPosition(t *testing.T) {
	adapter := sections(5, 5, 5)
	lv := newListHarness(adapter)

	lv.ScrollBy(20)
	require.Equal(t, 0, lv.Layout().HoverPosition())

	adapter.items = append([]testItem{{kind: 0}, {kind: 0}}, adapter.items...)
	adapter.NotifyInserted(0, 2)

	assert.Equal(t, 2, lv.Layout().HoverPosition())
	assert.Equal(t, []int{2, 8, 14}, lv.Layout().index.positions)
}

func TestHoverFullRefreshScrapsStalePin(t *testing.T) {
	adapter := sections(5, 5, 5)
	lv := newListHarness(adapter)

	lv.ScrollBy(20)
	require.NotNil(t, lv.Layout().Hover())

	// The pinned position is no longer a header after the refresh.
	adapter.items[0].header = false
	adapter.items[0].kind = 0
	adapter.NotifyChanged()

	assert.Nil(t, lv.Layout().Hover())
}

func TestHoverTranslationOffsetsPin(t *testing.T) {
	lv := newListHarness(sections(5, 5, 5))

	lv.Layout().SetHoverTranslationY(10)
	lv.ScrollBy(20)

	hover := lv.Layout().Hover()
	require.NotNil(t, hover)
	assert.Equal(t, int32(10), hover.TranslationY)
}

func TestHoverReverseLayoutPinsAtBottom(t *testing.T) {
	lv := NewListView(Vertical, true)
	lv.SetRect(sdl.Rect{W: 100, H: 240})
	lv.SetAdapter(sections(5, 5, 5))
	lv.Render(nil)

	require.Nil(t, lv.Layout().Hover())

	consumed := lv.ScrollBy(-20)
	require.Equal(t, int32(-20), consumed)

	hover := lv.Layout().Hover()
	require.NotNil(t, hover)
	assert.Equal(t, 0, lv.Layout().HoverPosition())
	assert.Equal(t, int32(200), hover.TranslationY, "pinned to the bottom edge in reverse layout")
}

func TestHoverScrollEnabledGatesUserScroll(t *testing.T) {
	lv := newListHarness(sections(5, 5, 5))
	layout := lv.Layout()

	layout.SetScrollEnabled(false)
	assert.False(t, layout.CanScrollVertically())
	assert.Equal(t, int32(0), lv.ScrollBy(20))

	layout.SetScrollEnabled(true)
	assert.True(t, layout.CanScrollVertically())
	assert.Equal(t, int32(20), lv.ScrollBy(20))
}

// --- Scroll-to-position interception ---

func newHoverHarness(adapter Adapter) (*HoverLayout, *fakeHost) {
	hl := NewHoverLayout(Vertical, false)
	host := &fakeHost{}
	hl.SetHost(host)
	hl.Base().SetViewport(100, 240)
	hl.SetAdapter(adapter)
	hl.Layout(false)
	return hl, host
}

func TestScrollToHeaderIsUnadjusted(t *testing.T) {
	hl, _ := newHoverHarness(sections(5, 5, 5))

	hl.ScrollToPositionWithOffset(6, 10)

	assert.Equal(t, 6, hl.base.pendingPosition)
	assert.Equal(t, int32(10), hl.base.pendingOffset)
	assert.Equal(t, NoPosition, hl.pendingPosition)
}

func TestScrollToFirstRowRedirectsToItsHeader(t *testing.T) {
	hl, _ := newHoverHarness(sections(5, 5, 5))

	hl.ScrollToPositionWithOffset(7, 0)

	assert.Equal(t, 6, hl.base.pendingPosition, "row right below a header scrolls to the header instead")
}

func TestScrollToRowUnderActivePinAdjustsOffset(t *testing.T) {
	hl, _ := newHoverHarness(sections(5, 5, 5))

	// Pin header 6 by scrolling into its section.
	hl.ScrollVerticallyBy(280)
	require.Equal(t, 6, hl.HoverPosition())

	hl.ScrollToPositionWithOffset(9, 5)

	assert.Equal(t, 9, hl.base.pendingPosition)
	assert.Equal(t, int32(45), hl.base.pendingOffset, "offset grows by the pinned header's height")
	assert.Equal(t, NoPosition, hl.pendingPosition, "no continuation needed")
}

func TestScrollToRowWithoutPinRunsContinuation(t *testing.T) {
	hl, host := newHoverHarness(sections(5, 5, 5))

	hl.ScrollToPositionWithOffset(9, 5)
	assert.Equal(t, 9, hl.pendingPosition, "correction deferred until the pin exists")
	assert.Equal(t, int32(5), hl.pendingOffset)

	// The layout pass creates the pin and queues the correction.
	hl.Layout(false)
	require.NotNil(t, hl.Hover())
	require.Len(t, host.callbacks, 1)

	host.flush()
	assert.Equal(t, NoPosition, hl.pendingPosition)
	assert.Equal(t, int32(45), hl.base.pendingOffset)

	hl.Layout(false)
	v := hl.FindViewByPosition(9)
	require.NotNil(t, v)
	assert.Equal(t, int32(45), v.Top(), "target clears the pinned header")
	assert.Equal(t, 6, hl.HoverPosition())
}

func TestScrollToContinuationSkipsSupersededRequest(t *testing.T) {
	hl, host := newHoverHarness(sections(5, 5, 5, 5))

	hl.ScrollToPositionWithOffset(9, 5)
	hl.Layout(false)
	require.Equal(t, 6, hl.HoverPosition())
	require.Len(t, host.callbacks, 1)

	// A second request to a row under a different unpinned header replaces
	// the first before the frame settles.
	hl.ScrollToPositionWithOffset(15, 3)
	require.Equal(t, 15, hl.pendingPosition)

	before := host.layoutRequests
	host.flush()
	assert.Equal(t, before, host.layoutRequests, "the stale correction stays inert")
	assert.Equal(t, 15, hl.pendingPosition, "the replacement keeps waiting for its own pin")
	assert.Equal(t, int32(3), hl.pendingOffset)

	// The replacement's own layout pass pins its header and corrects it.
	hl.Layout(false)
	require.Equal(t, 12, hl.HoverPosition())
	require.Len(t, host.callbacks, 1)
	host.flush()
	assert.Equal(t, NoPosition, hl.pendingPosition)
	assert.Equal(t, 15, hl.base.pendingPosition)
	assert.Equal(t, int32(43), hl.base.pendingOffset)

	hl.Layout(false)
	v := hl.FindViewByPosition(15)
	require.NotNil(t, v)
	assert.Equal(t, int32(43), v.Top())
}

func TestScrollToPlainTargetWithoutGoverningHeader(t *testing.T) {
	adapter := flat(20)
	hl, _ := newHoverHarness(adapter)

	hl.ScrollToPositionWithOffset(10, 0)

	assert.Equal(t, 10, hl.base.pendingPosition)
	assert.Equal(t, NoPosition, hl.pendingPosition)
}

func TestHoverSaveRestoreRoundtrip(t *testing.T) {
	hl, _ := newHoverHarness(sections(5, 5, 5))
	hl.ScrollVerticallyBy(280)
	hl.setPendingScroll(9, 5)

	data, err := hl.SaveState()
	require.NoError(t, err)

	restored, _ := newHoverHarness(sections(5, 5, 5))
	require.NoError(t, restored.RestoreState(data))

	assert.Equal(t, 9, restored.pendingPosition)
	assert.Equal(t, int32(5), restored.pendingOffset)

	restored.Layout(false)
	assert.Equal(t, hl.FindFirstVisiblePosition(), restored.FindFirstVisiblePosition())
}

func TestHoverAdapterSwapDropsPin(t *testing.T) {
	adapter := sections(5, 5, 5)
	lv := newListHarness(adapter)
	lv.ScrollBy(20)
	require.NotNil(t, lv.Layout().Hover())

	replacement := sections(2, 2)
	lv.SetAdapter(replacement)

	assert.Nil(t, lv.Layout().Hover())
	assert.Equal(t, []int{0, 3}, lv.Layout().index.positions)
	assert.Equal(t, 1, adapter.detached)
}
