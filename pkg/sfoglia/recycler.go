package sfoglia

// Recycler hands out adapter views, reusing discarded ones of the same kind
// instead of allocating. It is owned by the layout manager's host and shared
// between the base layout and the hover layer.
type Recycler struct {
	adapter Adapter
	pool    map[int][]*View
}

// NewRecycler creates a recycler backed by the given adapter.
func NewRecycler(adapter Adapter) *Recycler {
	return &Recycler{
		adapter: adapter,
		pool:    make(map[int][]*View),
	}
}

// ViewFor returns a view bound to position, reusing a pooled view of the
// matching kind when one is available.
func (r *Recycler) ViewFor(position int) *View {
	kind := r.adapter.Kind(position)

	var view *View
	if pooled := r.pool[kind]; len(pooled) > 0 {
		view = pooled[len(pooled)-1]
		r.pool[kind] = pooled[:len(pooled)-1]
	} else {
		view = r.adapter.OnCreateView(kind)
		view.Kind = kind
	}

	r.Bind(view, position)
	return view
}

// Bind (re)binds an existing view to position.
func (r *Recycler) Bind(view *View, position int) {
	r.adapter.OnBindView(view, position)
	view.Position = position
	view.Removed = false
	view.Invalid = false
}

// Recycle returns a view to the pool for later reuse.
func (r *Recycler) Recycle(view *View) {
	view.Position = NoPosition
	view.resetTranslation()
	r.pool[view.Kind] = append(r.pool[view.Kind], view)
}

// Clear drops all pooled views, forcing fresh creation. Called when the
// adapter is swapped.
func (r *Recycler) Clear() {
	r.pool = make(map[int][]*View)
}
