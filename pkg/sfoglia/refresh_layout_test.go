package sfoglia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshPullAccumulatesAtTop(t *testing.T) {
	lv := newListHarness(flat(20))
	r := NewRefreshLayout(lv, nil)

	consumed := r.ScrollBy(-50)
	assert.Equal(t, int32(-50), consumed, "the list is at the top, the pull takes the whole delta")
	assert.Equal(t, RefreshStatePulling, r.State())
	assert.Equal(t, int32(50), r.Pulled())

	r.ScrollBy(-40)
	assert.Equal(t, RefreshStateArmed, r.State(), "past the threshold")
}

func TestRefreshPullUnwindsBeforeScrolling(t *testing.T) {
	lv := newListHarness(flat(20))
	r := NewRefreshLayout(lv, nil)

	r.ScrollBy(-50)
	require.Equal(t, int32(50), r.Pulled())

	consumed := r.ScrollBy(30)
	assert.Equal(t, int32(30), consumed)
	assert.Equal(t, int32(20), r.Pulled(), "forward scroll unwinds the pull first")
	assert.Equal(t, 0, lv.Layout().FindFirstVisiblePosition(), "the list itself did not move")
}

func TestRefreshReleaseBelowThresholdSnapsBack(t *testing.T) {
	lv := newListHarness(flat(20))
	r := NewRefreshLayout(lv, nil)

	r.ScrollBy(-50)
	r.Release()

	assert.Equal(t, RefreshStateIdle, r.State())
	assert.Equal(t, int32(0), r.Pulled())
}

func TestRefreshReleaseWhenArmedRunsCallback(t *testing.T) {
	lv := newListHarness(flat(20))

	var finish func()
	r := NewRefreshLayout(lv, func(done func()) { finish = done })

	r.ScrollBy(-90)
	require.Equal(t, RefreshStateArmed, r.State())

	r.Release()
	require.NotNil(t, finish, "refresh work started")
	assert.True(t, r.IsRefreshing())

	r.Update()
	assert.True(t, r.IsRefreshing(), "stays refreshing until done is called")
	assert.Equal(t, int32(0), r.ScrollBy(-20), "scrolling is swallowed while refreshing")

	finish()
	r.Update()
	assert.Equal(t, RefreshStateIdle, r.State())
	assert.Equal(t, int32(0), r.Pulled())
}

func TestRefreshTriggerWithoutCallbackCompletes(t *testing.T) {
	lv := newListHarness(flat(20))
	r := NewRefreshLayout(lv, nil)

	r.Trigger()
	require.True(t, r.IsRefreshing())

	r.Update()
	assert.Equal(t, RefreshStateIdle, r.State())
}

func TestRefreshScrolledListPullsNothing(t *testing.T) {
	lv := newListHarness(flat(20))
	r := NewRefreshLayout(lv, nil)
	lv.ScrollBy(100)

	consumed := r.ScrollBy(-60)
	assert.Equal(t, int32(-60), consumed)
	assert.Equal(t, RefreshStateIdle, r.State(), "the list consumed the delta, no pull")
	assert.Equal(t, int32(0), r.Pulled())
}
