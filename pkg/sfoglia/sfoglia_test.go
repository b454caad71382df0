package sfoglia

// Shared test fixtures: a sectioned adapter with headers interleaved among
// rows, and a host that records scheduling instead of rendering.

type testItem struct {
	header bool
	kind   int
}

type testAdapter struct {
	AdapterBase
	items   []testItem
	rowH    int32
	headerH int32

	created  int
	bound    int
	attached int
	detached int
}

// sections builds an adapter with the given section sizes: each section is
// one header followed by n rows. Rows are kind 0, headers kind 1.
func sections(rowsPerSection ...int) *testAdapter {
	a := &testAdapter{rowH: 40, headerH: 40}
	for _, rows := range rowsPerSection {
		a.items = append(a.items, testItem{header: true, kind: 1})
		for i := 0; i < rows; i++ {
			a.items = append(a.items, testItem{kind: 0})
		}
	}
	return a
}

// flat builds an adapter with n rows and no headers.
func flat(n int) *testAdapter {
	a := &testAdapter{rowH: 40, headerH: 40}
	for i := 0; i < n; i++ {
		a.items = append(a.items, testItem{kind: 0})
	}
	return a
}

func (a *testAdapter) Count() int { return len(a.items) }

func (a *testAdapter) IsHeader(position int) bool { return a.items[position].header }

func (a *testAdapter) Kind(position int) int { return a.items[position].kind }

func (a *testAdapter) OnCreateView(kind int) *View {
	a.created++
	h := a.rowH
	if kind != 0 {
		h = a.headerH
	}
	return &View{H: h, W: 100}
}

func (a *testAdapter) OnBindView(view *View, position int) {
	a.bound++
	if a.items[position].header {
		view.H = a.headerH
	} else {
		view.H = a.rowH
	}
}

func (a *testAdapter) OnAttachHover(view *View) { a.attached++ }

func (a *testAdapter) OnDetachHover(view *View) { a.detached++ }

// headerPositions reports the adapter positions flagged as headers.
func (a *testAdapter) headerPositions() []int {
	var out []int
	for i, item := range a.items {
		if item.header {
			out = append(out, i)
		}
	}
	return out
}

type fakeHost struct {
	layoutRequests int
	callbacks      []func()
}

func (h *fakeHost) RequestLayout() { h.layoutRequests++ }

func (h *fakeHost) OnNextRender(fn func()) { h.callbacks = append(h.callbacks, fn) }

// flush runs queued next-render callbacks, as a render pass would.
func (h *fakeHost) flush() {
	callbacks := h.callbacks
	h.callbacks = nil
	for _, fn := range callbacks {
		fn()
	}
}
