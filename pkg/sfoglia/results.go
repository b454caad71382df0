package sfoglia

// ListAction represents user actions that can occur within a ListPage.
type ListAction int

const (
	ListActionSelected           ListAction = iota // User selected an item (A button)
	ListActionTriggered                            // User triggered action button (X button)
	ListActionSecondaryTriggered                   // User triggered secondary action (Y button)
	ListActionConfirmed                            // User confirmed selection (Start button)
	ListActionRefreshed                            // User requested a refresh (Select button)
)

// ListResult is what a ListPage returns when the user leaves it.
type ListResult struct {
	Action   ListAction // What the user did
	Position int        // Adapter position the action applied to, or NoPosition
}
