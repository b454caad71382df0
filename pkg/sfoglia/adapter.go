package sfoglia

// Adapter supplies list content to a ListView. It is the narrow contract the
// layout managers depend on: item count, per-position header flag and kind,
// and view creation/binding. Implementations embed AdapterBase to get the
// change-notification plumbing.
type Adapter interface {
	// Count returns the number of items in the list.
	Count() int

	// IsHeader reports whether the item at position is a section header,
	// eligible for pinning.
	IsHeader(position int) bool

	// Kind returns an opaque comparable kind id for the item at position.
	// Views are recycled within a kind; a kind change at the pinned header's
	// position forces a recreate instead of a rebind.
	Kind(position int) int

	// OnCreateView allocates a view for the given kind with its main-axis
	// size measured (H for vertical lists, W for horizontal).
	OnCreateView(kind int) *View

	// OnBindView binds the item at position into a view of the matching kind.
	OnBindView(view *View, position int)

	// RegisterObserver subscribes to data change notifications.
	RegisterObserver(observer DataObserver)

	// UnregisterObserver removes a previously registered observer.
	UnregisterObserver(observer DataObserver)
}

// DataObserver receives list mutation notifications. Notifications must be
// delivered synchronously, in the order the underlying list was mutated, and
// before the next layout or scroll pass.
type DataObserver interface {
	// Changed signals an unqualified change: anything may differ.
	Changed()

	// RangeInserted signals count new items at positions [start, start+count).
	RangeInserted(start, count int)

	// RangeRemoved signals count items removed from positions [start, start+count).
	RangeRemoved(start, count int)

	// RangeMoved signals count items moved from position from to position to.
	RangeMoved(from, to, count int)
}

// HoverAttachListener is optionally implemented by adapters that want
// setup/teardown hooks around the pinned header view's lifetime.
type HoverAttachListener interface {
	// OnAttachHover runs right after the pinned header view is created.
	OnAttachHover(view *View)

	// OnDetachHover runs right before the pinned header view is discarded.
	OnDetachHover(view *View)
}

// AdapterBase provides observer registration and notification fan-out.
// Embed it in adapter implementations and call the Notify methods after
// mutating the underlying list.
type AdapterBase struct {
	observers []DataObserver
}

func (b *AdapterBase) RegisterObserver(observer DataObserver) {
	b.observers = append(b.observers, observer)
}

func (b *AdapterBase) UnregisterObserver(observer DataObserver) {
	for i, o := range b.observers {
		if o == observer {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// NotifyChanged reports an unqualified change to all observers.
func (b *AdapterBase) NotifyChanged() {
	for _, o := range b.observers {
		o.Changed()
	}
}

// NotifyInserted reports an insertion of count items at start.
func (b *AdapterBase) NotifyInserted(start, count int) {
	for _, o := range b.observers {
		o.RangeInserted(start, count)
	}
}

// NotifyRemoved reports a removal of count items at start.
func (b *AdapterBase) NotifyRemoved(start, count int) {
	for _, o := range b.observers {
		o.RangeRemoved(start, count)
	}
}

// NotifyMoved reports a move of count items from from to to.
func (b *AdapterBase) NotifyMoved(from, to, count int) {
	for _, o := range b.observers {
		o.RangeMoved(from, to, count)
	}
}
