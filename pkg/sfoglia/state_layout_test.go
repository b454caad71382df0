package sfoglia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateLayoutTransitions(t *testing.T) {
	lv := newListHarness(flat(5))
	s := NewStateLayout(lv)

	assert.Equal(t, ViewStateContent, s.State())

	s.ShowLoading("")
	assert.Equal(t, ViewStateLoading, s.State())
	assert.NotEmpty(t, s.resolveMessage(), "loading falls back to the localized default")

	s.ShowEmpty("no downloads")
	assert.Equal(t, ViewStateEmpty, s.State())
	assert.Equal(t, "no downloads", s.resolveMessage())

	s.ShowError("")
	assert.Equal(t, ViewStateError, s.State())
	assert.NotEmpty(t, s.resolveMessage())

	s.ShowContent()
	assert.Equal(t, ViewStateContent, s.State())
	assert.Empty(t, s.message, "custom messages reset with the state")
}

func TestStateLayoutRenderDelegatesToList(t *testing.T) {
	lv := newListHarness(flat(5))
	s := NewStateLayout(lv)

	lv.RequestLayout()
	s.Render(nil)
	assert.Equal(t, 5, lv.Layout().Base().ChildCount(), "content state runs the list's layout pass")

	s.ShowLoading("")
	s.Render(nil)
}
