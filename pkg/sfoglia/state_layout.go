package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// ViewState is what a StateLayout currently shows in place of, or as, the
// list content.
type ViewState int

const (
	ViewStateContent ViewState = iota // The list itself
	ViewStateLoading                  // Spinner while content loads
	ViewStateEmpty                    // Placeholder for an empty list
	ViewStateError                    // Failure message with a retry hint
)

// StateLayout multiplexes a ListView with loading, empty, and error
// placeholders. In the content state it renders the list; in every other
// state it renders a centered icon and message instead.
type StateLayout struct {
	list    *ListView
	state   ViewState
	message string
	icons   *internal.TextureCache
}

// NewStateLayout wraps list, starting in the content state.
func NewStateLayout(list *ListView) *StateLayout {
	return &StateLayout{list: list, icons: internal.NewTextureCache()}
}

// State returns the current view state.
func (s *StateLayout) State() ViewState { return s.state }

// ShowContent switches to the list content.
func (s *StateLayout) ShowContent() {
	s.state = ViewStateContent
	s.message = ""
	s.list.RequestLayout()
}

// ShowLoading switches to the loading placeholder. An empty message uses
// the localized default.
func (s *StateLayout) ShowLoading(message string) {
	s.state = ViewStateLoading
	s.message = message
}

// ShowEmpty switches to the empty placeholder. An empty message uses the
// localized default.
func (s *StateLayout) ShowEmpty(message string) {
	s.state = ViewStateEmpty
	s.message = message
}

// ShowError switches to the error placeholder. An empty message uses the
// localized default.
func (s *StateLayout) ShowError(message string) {
	s.state = ViewStateError
	s.message = message
}

func (s *StateLayout) resolveMessage() string {
	if s.message != "" {
		return s.message
	}
	switch s.state {
	case ViewStateLoading:
		return internal.T(internal.MsgLoading)
	case ViewStateEmpty:
		return internal.T(internal.MsgEmpty)
	case ViewStateError:
		return internal.T(internal.MsgError)
	}
	return ""
}

// Render draws the list or the active placeholder.
func (s *StateLayout) Render(renderer *sdl.Renderer) {
	if s.state == ViewStateContent {
		s.list.Render(renderer)
		return
	}
	if renderer == nil {
		return
	}

	theme := internal.GetTheme()
	rect := s.list.Rect()
	centerX := rect.X + rect.W/2
	centerY := rect.Y + rect.H/2

	iconSize := int32(48)
	var key, svg string
	switch s.state {
	case ViewStateLoading:
		key, svg = "loading", constants.IconRefresh
	case ViewStateEmpty:
		key, svg = "empty", constants.IconInbox
	case ViewStateError:
		key, svg = "error", constants.IconAlert
	}
	if icon := internal.IconTexture(renderer, s.icons, key, svg, iconSize); icon != nil {
		dst := sdl.Rect{
			X: centerX - iconSize/2,
			Y: centerY - iconSize - 8,
			W: iconSize,
			H: iconSize,
		}
		if s.state == ViewStateLoading {
			angle := float64(sdl.GetTicks64()%1000) * 0.36
			renderer.CopyEx(icon, nil, &dst, angle, nil, sdl.FLIP_NONE)
		} else {
			renderer.Copy(icon, nil, &dst)
		}
	}

	drawText(renderer, internal.Fonts.MediumFont, s.resolveMessage(), theme.HintColor,
		centerX, centerY+8, constants.TextAlignCenter)

	if s.state == ViewStateError {
		drawText(renderer, internal.Fonts.SmallFont, internal.T(internal.MsgRetry), theme.HintColor,
			centerX, centerY+48, constants.TextAlignCenter)
	}
}

// Destroy releases cached textures.
func (s *StateLayout) Destroy() {
	s.icons.Destroy()
}
