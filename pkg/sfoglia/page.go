package sfoglia

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// ListPageSettings configures a ListPage.
type ListPageSettings struct {
	InitialPosition    int                // Adapter position selected on entry; headers are skipped
	DisableBackButton  bool               // Ignore the B button instead of cancelling
	EnableRefresh      bool               // Allow pull-to-refresh and the Select shortcut
	OnRefresh          func(done func())  // Refresh work; nil exits the page with ListActionRefreshed
	EmptyMessage       string             // Placeholder when the adapter is empty; localized default when blank
	ScrollStep         int32              // Pixels per directional scroll; DefaultScrollStep when zero
	OnSelectionChanged func(position int) // Called whenever the selection moves
}

type internalListPageSettings struct {
	Margins    internal.Padding
	InputDelay time.Duration
	Title      string
	ScrollStep int32
}

func defaultListPageSettings(title string) internalListPageSettings {
	return internalListPageSettings{
		Margins:    internal.UniformPadding(20),
		InputDelay: constants.DefaultInputDelay,
		Title:      title,
		ScrollStep: constants.DefaultScrollStep,
	}
}

type listPageController struct {
	list    *ListView
	refresh *RefreshLayout
	states  *StateLayout
	toolbar *Toolbar

	adapter  Adapter
	settings internalListPageSettings
	options  ListPageSettings

	selected         int
	lastInputTime    time.Time
	directionalInput internal.DirectionalInput
}

func newListPageController(title string, options ListPageSettings, adapter Adapter) *listPageController {
	c := &listPageController{
		adapter:          adapter,
		settings:         defaultListPageSettings(title),
		options:          options,
		selected:         NoPosition,
		lastInputTime:    time.Now(),
		directionalInput: internal.NewDirectionalInputWithTiming(150*time.Millisecond, 50*time.Millisecond),
	}
	if options.ScrollStep > 0 {
		c.settings.ScrollStep = options.ScrollStep
	}

	c.list = NewListView(Vertical, false)
	c.list.Layout().Base().SetPadding(internal.Padding{
		Left:  c.settings.Margins.Left,
		Right: c.settings.Margins.Right,
	})
	c.list.SetAdapter(adapter)

	c.refresh = NewRefreshLayout(c.list, options.OnRefresh)
	c.states = NewStateLayout(c.list)
	c.toolbar = NewToolbar(title)
	c.toolbar.ShowBack = !options.DisableBackButton

	return c
}

// selectable reports whether position holds a selectable row.
func (c *listPageController) selectable(position int) bool {
	return position >= 0 && position < c.adapter.Count() && !c.adapter.IsHeader(position)
}

// nearestSelectable walks from position in direction until it finds a
// non-header row, or returns NoPosition.
func (c *listPageController) nearestSelectable(position, direction int) int {
	for p := position; p >= 0 && p < c.adapter.Count(); p += direction {
		if !c.adapter.IsHeader(p) {
			return p
		}
	}
	return NoPosition
}

func (c *listPageController) setSelection(position int) {
	if position == c.selected {
		return
	}
	c.selected = position
	if c.options.OnSelectionChanged != nil {
		c.options.OnSelectionChanged(position)
	}
}

func (c *listPageController) moveSelection(direction int) {
	next := c.nearestSelectable(c.selected+direction, direction)
	if next == NoPosition {
		// Selection is at the list edge. A further pull up feeds the
		// refresh gesture.
		if direction < 0 {
			c.refresh.ScrollBy(-c.settings.ScrollStep)
		}
		return
	}
	c.setSelection(next)
	c.ensureVisible(next)
}

func (c *listPageController) ensureVisible(position int) {
	layout := c.list.Layout()
	first := layout.FindFirstCompletelyVisiblePosition()
	last := layout.FindLastCompletelyVisiblePosition()
	switch {
	case first != NoPosition && position < first:
		c.list.ScrollToPosition(position)
	case last != NoPosition && position > last:
		c.refresh.ScrollBy(c.settings.ScrollStep)
	}
}

func (c *listPageController) handleInput(event *internal.Event, running *bool, result *ListResult, cancelled *bool) {
	if time.Since(c.lastInputTime) < c.settings.InputDelay {
		return
	}
	c.lastInputTime = time.Now()

	switch event.Button {
	case constants.VirtualButtonUp:
		c.directionalInput.SetHeld(event.Button, true)
		c.moveSelection(-1)
	case constants.VirtualButtonDown:
		c.directionalInput.SetHeld(event.Button, true)
		c.moveSelection(1)
	case constants.VirtualButtonA:
		if c.selectable(c.selected) {
			*result = ListResult{Action: ListActionSelected, Position: c.selected}
			*running = false
		}
	case constants.VirtualButtonX:
		*result = ListResult{Action: ListActionTriggered, Position: c.selected}
		*running = false
	case constants.VirtualButtonY:
		*result = ListResult{Action: ListActionSecondaryTriggered, Position: c.selected}
		*running = false
	case constants.VirtualButtonStart:
		*result = ListResult{Action: ListActionConfirmed, Position: c.selected}
		*running = false
	case constants.VirtualButtonSelect:
		if !c.options.EnableRefresh {
			break
		}
		if c.options.OnRefresh != nil {
			c.refresh.Trigger()
		} else {
			*result = ListResult{Action: ListActionRefreshed, Position: c.selected}
			*running = false
		}
	case constants.VirtualButtonB:
		if !c.options.DisableBackButton {
			*cancelled = true
			*running = false
		}
	}
}

func (c *listPageController) handleRelease(event *internal.Event) {
	c.directionalInput.SetHeld(event.Button, false)
	if event.Button == constants.VirtualButtonUp && c.options.EnableRefresh {
		c.refresh.Release()
	}
}

func (c *listPageController) handleDirectionalRepeats() {
	switch c.directionalInput.Update() {
	case internal.DirectionUp:
		c.moveSelection(-1)
	case internal.DirectionDown:
		c.moveSelection(1)
	}
}

// renderSelection outlines the selected row when it is on screen.
func (c *listPageController) renderSelection(renderer *sdl.Renderer) {
	if c.selected == NoPosition || c.states.State() != ViewStateContent {
		return
	}
	view := c.list.Layout().FindViewByPosition(c.selected)
	if view == nil {
		return
	}

	theme := internal.GetTheme()
	listRect := c.list.Rect()
	rect := view.DrawRect()
	rect.X += listRect.X
	rect.Y += listRect.Y

	renderer.SetDrawColor(theme.HighlightColor.R, theme.HighlightColor.G, theme.HighlightColor.B, theme.HighlightColor.A)
	for i := int32(0); i < 2; i++ {
		outline := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		renderer.DrawRect(&outline)
	}
}

func (c *listPageController) destroy() {
	c.refresh.Destroy()
	c.states.Destroy()
	c.toolbar.Destroy()
}

// ListPage presents a scrolling, section-headed list with a pinned header,
// selection handling, pull-to-refresh, and empty/loading placeholders.
// This blocks until a selection is made or the user cancels.
func ListPage(title string, settings ListPageSettings, adapter Adapter) (*ListResult, error) {
	if adapter == nil {
		return nil, ErrNoAdapter
	}

	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	c := newListPageController(title, settings, adapter)
	defer c.destroy()

	toolbarHeight := c.toolbar.Height()
	c.list.SetRect(sdl.Rect{
		X: 0,
		Y: toolbarHeight,
		W: window.GetWidth(),
		H: window.GetHeight() - toolbarHeight,
	})

	if adapter.Count() == 0 {
		c.states.ShowEmpty(settings.EmptyMessage)
	} else {
		start := c.nearestSelectable(settings.InitialPosition, 1)
		if start == NoPosition {
			start = c.nearestSelectable(settings.InitialPosition, -1)
		}
		c.setSelection(start)
		if start != NoPosition && start != settings.InitialPosition {
			internal.GetInternalLogger().Debug("Initial position adjusted to skip header",
				"requested", settings.InitialPosition, "selected", start)
		}
		if settings.InitialPosition > 0 {
			c.list.ScrollToPosition(settings.InitialPosition)
		}
	}

	running := true
	cancelled := false
	result := ListResult{Action: ListActionSelected, Position: NoPosition}

	var err error

	for running {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
				err = sdl.GetError()

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
				inputEvent := processor.ProcessSDLEvent(event.(sdl.Event))
				if inputEvent == nil {
					continue
				}
				if inputEvent.Pressed {
					c.handleInput(inputEvent, &running, &result, &cancelled)
				} else {
					c.handleRelease(inputEvent)
				}
			}
		}

		c.handleDirectionalRepeats()
		c.refresh.Update()

		if window.Background != nil {
			window.RenderBackground()
		} else {
			theme := internal.GetTheme()
			renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
			renderer.Clear()
		}

		c.toolbar.Render(renderer, window.GetWidth())
		c.states.Render(renderer)
		c.renderSelection(renderer)
		c.refresh.Render(renderer)

		window.Present()
	}

	if err != nil {
		return nil, err
	}
	if cancelled {
		return nil, ErrCancelled
	}
	return &result, nil
}
