package sfoglia

import "sort"

// headerIndex is the ordered set of adapter positions that are section
// headers. It is owned by a HoverLayout and mutated only through the change
// notifications below, which patch it incrementally; only an unqualified
// change triggers a full rescan.
//
// Invariant: strictly increasing, no duplicates, every entry < item count.
type headerIndex struct {
	positions []int
}

func (h *headerIndex) len() int { return len(h.positions) }

func (h *headerIndex) at(i int) int { return h.positions[i] }

func (h *headerIndex) contains(position int) bool {
	return h.find(position) != -1
}

// find returns the index of position, or -1.
func (h *headerIndex) find(position int) int {
	low, high := 0, len(h.positions)-1
	for low <= high {
		middle := (low + high) / 2
		switch {
		case h.positions[middle] > position:
			high = middle - 1
		case h.positions[middle] < position:
			low = middle + 1
		default:
			return middle
		}
	}
	return -1
}

// findOrBefore returns the index of position or of the nearest entry before
// it, or -1 when every entry is past position.
func (h *headerIndex) findOrBefore(position int) int {
	low, high := 0, len(h.positions)-1
	for low <= high {
		middle := (low + high) / 2
		switch {
		case h.positions[middle] > position:
			high = middle - 1
		case middle < len(h.positions)-1 && h.positions[middle+1] <= position:
			low = middle + 1
		default:
			return middle
		}
	}
	return -1
}

// findOrNext returns the index of position or of the nearest entry after it,
// or -1 when every entry is before position.
func (h *headerIndex) findOrNext(position int) int {
	low, high := 0, len(h.positions)-1
	for low <= high {
		middle := (low + high) / 2
		switch {
		case middle > 0 && h.positions[middle-1] >= position:
			high = middle - 1
		case h.positions[middle] < position:
			low = middle + 1
		default:
			return middle
		}
	}
	return -1
}

// rebuild rescans the whole adapter. Used on unqualified change
// notifications, which carry no hint of what changed.
func (h *headerIndex) rebuild(adapter Adapter) {
	h.positions = h.positions[:0]
	if adapter == nil {
		return
	}
	count := adapter.Count()
	for i := 0; i < count; i++ {
		if adapter.IsHeader(i) {
			h.positions = append(h.positions, i)
		}
	}
}

// applyInserted shifts entries at or past start up by count, then indexes any
// headers among the inserted positions.
func (h *headerIndex) applyInserted(adapter Adapter, start, count int) {
	if i := h.findOrNext(start); i != -1 {
		for ; i < len(h.positions); i++ {
			h.positions[i] += count
		}
	}

	for pos := start; pos < start+count; pos++ {
		if !adapter.IsHeader(pos) {
			continue
		}
		if i := h.findOrNext(pos); i != -1 {
			h.positions = append(h.positions, 0)
			copy(h.positions[i+1:], h.positions[i:])
			h.positions[i] = pos
		} else {
			h.positions = append(h.positions, pos)
		}
	}
}

// applyRemoved deletes entries inside [start, start+count) and shifts later
// entries down by count. It reports whether the pinned position's entry was
// among the deleted ones; the check runs before the shift, since a surviving
// header may land exactly on the pinned position afterwards.
func (h *headerIndex) applyRemoved(start, count, pinned int) (pinnedDeleted bool) {
	if len(h.positions) == 0 {
		return false
	}

	for pos := start + count - 1; pos >= start; pos-- {
		if i := h.find(pos); i != -1 {
			h.positions = append(h.positions[:i], h.positions[i+1:]...)
		}
	}

	pinnedDeleted = pinned != NoPosition && !h.contains(pinned)

	if i := h.findOrNext(start + count); i != -1 {
		for ; i < len(h.positions); i++ {
			h.positions[i] -= count
		}
	}

	return pinnedDeleted
}

// applyMoved relocates entries inside the moved block by to-from and shifts
// entries between the old and new location by count in the opposite
// direction, then restores sorted order. Entries below min(from, to) are
// untouched, and iteration stops at the first entry past the affected range.
func (h *headerIndex) applyMoved(from, to, count int) {
	if len(h.positions) == 0 || from == to {
		return
	}

	i := h.findOrNext(min(from, to))
	if i == -1 {
		return
	}

	changed := false
	for ; i < len(h.positions); i++ {
		pos := h.positions[i]
		newPos := pos
		switch {
		case pos >= from && pos < from+count:
			newPos += to - from
		case from < to && pos >= from+count && pos <= to:
			newPos -= count
		case from > to && pos >= to && pos < from:
			newPos += count
		}
		if newPos == pos {
			// First entry past the affected range; the rest are sorted
			// and untouched.
			break
		}
		h.positions[i] = newPos
		changed = true
	}

	if changed {
		sort.Ints(h.positions)
	}
}
