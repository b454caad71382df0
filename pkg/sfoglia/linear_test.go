package sfoglia

import (
	"testing"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilledLayout(t *testing.T, adapter Adapter, width, height int32) *LinearLayout {
	t.Helper()
	l := NewLinearLayout(Vertical, false)
	l.SetViewport(width, height)
	l.SetAdapter(adapter)
	l.Layout(false)
	return l
}

func TestLinearLayoutFillsViewport(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)

	require.Equal(t, 6, l.ChildCount())
	for i := 0; i < 6; i++ {
		v := l.ChildAt(i)
		assert.Equal(t, i, v.Position)
		assert.Equal(t, int32(i)*40, v.Top())
		assert.Equal(t, int32(100), v.W, "children span the viewport width")
	}
}

func TestLinearLayoutPadding(t *testing.T) {
	adapter := flat(20)
	l := NewLinearLayout(Vertical, false)
	l.SetViewport(100, 240)
	l.SetPadding(internal.Padding{Top: 10, Bottom: 10, Left: 5, Right: 5})
	l.SetAdapter(adapter)
	l.Layout(false)

	v := l.ChildAt(0)
	assert.Equal(t, int32(10), v.Top())
	assert.Equal(t, int32(5), v.Left())
	assert.Equal(t, int32(90), v.W)
}

func TestLinearLayoutEmptyAdapter(t *testing.T) {
	l := newFilledLayout(t, flat(0), 100, 240)

	assert.Equal(t, 0, l.ChildCount())
	assert.Equal(t, int32(0), l.ScrollVerticallyBy(50))
	assert.Equal(t, NoPosition, l.FindFirstVisiblePosition())
}

func TestLinearLayoutScrollConsumesAndRecycles(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)

	consumed := l.ScrollVerticallyBy(100)
	assert.Equal(t, int32(100), consumed)

	first := l.firstFlowed()
	require.NotNil(t, first)
	assert.Equal(t, 2, first.Position, "fully offscreen children are recycled")
	assert.Equal(t, int32(-20), first.Top())
	assert.Equal(t, 2, l.FindFirstVisiblePosition())
	assert.Equal(t, 3, l.FindFirstCompletelyVisiblePosition())
}

func TestLinearLayoutScrollClampsAtEnd(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)

	consumed := l.ScrollVerticallyBy(10000)
	assert.Equal(t, int32(560), consumed, "20 items * 40px minus the viewport")
	assert.Equal(t, 19, l.FindLastVisiblePosition())
	assert.Equal(t, int32(0), l.ScrollVerticallyBy(1), "already at the end")

	consumed = l.ScrollVerticallyBy(-10000)
	assert.Equal(t, int32(-560), consumed)
	assert.Equal(t, 0, l.FindFirstVisiblePosition())
	assert.Equal(t, int32(0), l.ChildAt(0).Top())
}

func TestLinearLayoutShortContentStaysAtStart(t *testing.T) {
	l := newFilledLayout(t, flat(3), 100, 240)

	assert.Equal(t, int32(0), l.ChildAt(0).Top())
	assert.Equal(t, int32(0), l.ScrollVerticallyBy(50), "content shorter than the viewport never scrolls")
	assert.Equal(t, int32(0), l.ChildAt(0).Top())
}

func TestLinearLayoutViewReuse(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)
	require.Equal(t, 6, adapter.created)

	for i := 0; i < 5; i++ {
		l.ScrollVerticallyBy(40)
		l.ScrollVerticallyBy(-40)
	}
	assert.Equal(t, 7, adapter.created, "scrolling back and forth reuses pooled views")
}

func TestLinearLayoutReverse(t *testing.T) {
	adapter := flat(20)
	l := NewLinearLayout(Vertical, true)
	l.SetViewport(100, 240)
	l.SetAdapter(adapter)
	l.Layout(false)

	first := l.firstFlowed()
	require.NotNil(t, first)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, int32(200), first.Top(), "position 0 sits at the bottom")

	consumed := l.ScrollVerticallyBy(-100)
	assert.Equal(t, int32(-100), consumed, "scrolling up advances a reverse list")
	assert.Equal(t, 2, l.FindFirstVisiblePosition())
}

func TestLinearLayoutHorizontal(t *testing.T) {
	adapter := flat(20)
	l := NewLinearLayout(Horizontal, false)
	l.SetViewport(320, 100)
	l.SetAdapter(adapter)
	l.Layout(false)

	require.Equal(t, 4, l.ChildCount())
	assert.Equal(t, int32(100), l.ChildAt(1).Left())
	assert.Equal(t, int32(100), l.ChildAt(0).H, "children span the viewport height")
	assert.False(t, l.CanScrollVertically())
	assert.True(t, l.CanScrollHorizontally())
	assert.Equal(t, int32(0), l.ScrollVerticallyBy(10))

	consumed := l.ScrollHorizontallyBy(150)
	assert.Equal(t, int32(150), consumed)
	assert.Equal(t, 1, l.FindFirstVisiblePosition())
}

func TestLinearLayoutScrollToPositionWithOffset(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)

	l.SetPendingScroll(10, 30)
	l.Layout(false)

	v := l.FindViewByPosition(10)
	require.NotNil(t, v)
	assert.Equal(t, int32(30), v.Top())
}

func TestLinearLayoutSaveRestore(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)
	l.ScrollVerticallyBy(100)

	data, err := l.SaveState()
	require.NoError(t, err)

	restored := NewLinearLayout(Vertical, false)
	restored.SetViewport(100, 240)
	restored.SetAdapter(flat(20))
	require.NoError(t, restored.RestoreState(data))
	restored.Layout(false)

	assert.Equal(t, l.FindFirstVisiblePosition(), restored.FindFirstVisiblePosition())
	first := restored.firstFlowed()
	require.NotNil(t, first)
	assert.Equal(t, int32(-20), first.Top())
}

func TestLinearLayoutScrollIndicators(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)

	assert.Equal(t, int32(240), l.ComputeVerticalScrollExtent())
	assert.Equal(t, int32(800), l.ComputeVerticalScrollRange())
	assert.Equal(t, int32(0), l.ComputeVerticalScrollOffset())

	l.ScrollVerticallyBy(100)
	assert.Equal(t, int32(100), l.ComputeVerticalScrollOffset())

	assert.Equal(t, int32(0), l.ComputeHorizontalScrollRange(), "cross axis reports zero")
}

func TestLinearLayoutIgnoredViewExcludedFromFlow(t *testing.T) {
	adapter := flat(20)
	l := newFilledLayout(t, adapter, 100, 240)

	floating := &View{Position: 99, H: 40, W: 100}
	l.AddView(floating)
	l.IgnoreView(floating)

	assert.Equal(t, 7, l.ChildCount())
	assert.Nil(t, l.FindViewByPosition(99), "ignored views never satisfy lookups")

	before := floating.Y
	l.ScrollVerticallyBy(40)
	assert.Equal(t, before-40, floating.Y, "offsets move ignored views too")

	l.Layout(false)
	assert.Equal(t, 7, l.ChildCount(), "layout keeps ignored views attached")
}
