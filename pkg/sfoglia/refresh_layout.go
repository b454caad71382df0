package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// RefreshState is the pull-to-refresh gesture's current phase.
type RefreshState int

const (
	RefreshStateIdle       RefreshState = iota // No gesture in progress
	RefreshStatePulling                        // Pulled past the edge, below the trigger distance
	RefreshStateArmed                          // Pulled far enough; releasing triggers a refresh
	RefreshStateRefreshing                     // Refresh work running
)

const defaultRefreshThreshold int32 = 80

// RefreshLayout wraps a ListView with pull-to-refresh: scroll deltas the
// list cannot consume at the leading edge accumulate into a pull distance,
// and releasing past the threshold starts the refresh callback.
//
// The callback receives a done function, safe to call from any goroutine;
// the refreshing state clears on the frame after done runs.
type RefreshLayout struct {
	list      *ListView
	onRefresh func(done func())

	state     RefreshState
	pulled    int32
	threshold int32

	working *atomic.Bool
	icons   *internal.TextureCache
}

// NewRefreshLayout wraps list. onRefresh may be nil, in which case a
// triggered refresh completes immediately.
func NewRefreshLayout(list *ListView, onRefresh func(done func())) *RefreshLayout {
	return &RefreshLayout{
		list:      list,
		onRefresh: onRefresh,
		threshold: defaultRefreshThreshold,
		working:   atomic.NewBool(false),
		icons:     internal.NewTextureCache(),
	}
}

// SetThreshold sets the pull distance that arms the refresh.
func (r *RefreshLayout) SetThreshold(threshold int32) {
	if threshold > 0 {
		r.threshold = threshold
	}
}

// State returns the gesture phase.
func (r *RefreshLayout) State() RefreshState { return r.state }

// Pulled returns the accumulated pull distance in pixels.
func (r *RefreshLayout) Pulled() int32 { return r.pulled }

// IsRefreshing reports whether refresh work is running.
func (r *RefreshLayout) IsRefreshing() bool { return r.state == RefreshStateRefreshing }

// ScrollBy routes a scroll delta through the list, accumulating any part
// the list could not consume at the leading edge into the pull distance.
// Returns the total consumed delta.
func (r *RefreshLayout) ScrollBy(delta int32) int32 {
	if r.state == RefreshStateRefreshing {
		return 0
	}

	var consumed int32

	// Scrolling forward unwinds an existing pull before the list moves.
	if delta > 0 && r.pulled > 0 {
		use := delta
		if use > r.pulled {
			use = r.pulled
		}
		r.pulled -= use
		delta -= use
		consumed += use
		r.updatePullState()
	}

	if delta != 0 {
		listConsumed := r.list.ScrollBy(delta)
		consumed += listConsumed
		if leftover := delta - listConsumed; leftover < 0 {
			r.pulled += -leftover
			consumed += leftover
			r.updatePullState()
		}
	}

	return consumed
}

// Release ends the pull gesture: past the threshold it starts the refresh,
// otherwise the pull snaps back.
func (r *RefreshLayout) Release() {
	switch r.state {
	case RefreshStateArmed:
		r.begin()
	case RefreshStatePulling:
		r.pulled = 0
		r.state = RefreshStateIdle
	}
}

// Trigger starts a refresh without a gesture, as from a dedicated button.
func (r *RefreshLayout) Trigger() {
	if r.state != RefreshStateRefreshing {
		r.begin()
	}
}

func (r *RefreshLayout) begin() {
	r.state = RefreshStateRefreshing
	r.pulled = r.threshold
	r.working.Store(true)
	internal.GetLogger().Info("Refresh started")
	if r.onRefresh != nil {
		r.onRefresh(func() { r.working.Store(false) })
	} else {
		r.working.Store(false)
	}
}

// Update advances the state machine. Call once per frame.
func (r *RefreshLayout) Update() {
	if r.state == RefreshStateRefreshing && !r.working.Load() {
		r.state = RefreshStateIdle
		r.pulled = 0
		r.list.RequestLayout()
		internal.GetLogger().Info("Refresh finished")
	}
}

func (r *RefreshLayout) updatePullState() {
	switch {
	case r.pulled <= 0:
		r.pulled = 0
		r.state = RefreshStateIdle
	case r.pulled >= r.threshold:
		r.state = RefreshStateArmed
	default:
		r.state = RefreshStatePulling
	}
}

// Render draws the pull indicator above the list content.
func (r *RefreshLayout) Render(renderer *sdl.Renderer) {
	if r.state == RefreshStateIdle || renderer == nil {
		return
	}

	theme := internal.GetTheme()
	listRect := r.list.Rect()
	height := r.pulled
	if height > r.threshold {
		height = r.threshold
	}
	bar := sdl.Rect{X: listRect.X, Y: listRect.Y, W: listRect.W, H: height}

	renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, theme.AccentColor.A)
	renderer.FillRect(&bar)

	iconSize := int32(24)
	if icon := internal.IconTexture(renderer, r.icons, "refresh", constants.IconRefresh, iconSize); icon != nil {
		dst := sdl.Rect{
			X: bar.X + bar.W/2 - iconSize/2,
			Y: bar.Y + bar.H/2 - iconSize/2,
			W: iconSize,
			H: iconSize,
		}
		angle := 0.0
		if r.state == RefreshStateRefreshing {
			angle = float64(sdl.GetTicks64()%1000) * 0.36
		}
		renderer.CopyEx(icon, nil, &dst, angle, nil, sdl.FLIP_NONE)
	}

	label := internal.T(internal.MsgPullToRefresh)
	switch r.state {
	case RefreshStateArmed:
		label = internal.T(internal.MsgReleaseRefresh)
	case RefreshStateRefreshing:
		label = internal.T(internal.MsgRefreshing)
	}
	drawText(renderer, internal.Fonts.SmallFont, label, theme.ButtonLabelColor,
		bar.X+bar.W/2, bar.Y+bar.H+4, constants.TextAlignCenter)
}

// Destroy releases cached textures.
func (r *RefreshLayout) Destroy() {
	r.icons.Destroy()
}
