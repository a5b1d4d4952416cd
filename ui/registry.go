package ui

import "github.com/lixenwraith/gridtui/rules"

// Handle is an opaque widget identifier: an arena index plus a
// generation counter so a forgotten slot cannot be addressed through a
// stale handle. The zero Handle never refers to a live widget
type Handle struct {
	index uint32
	gen   uint32
}

// NoHandle is the invalid zero handle
var NoHandle = Handle{}

// IsZero reports whether the handle is the invalid zero value
func (h Handle) IsZero() bool { return h.gen == 0 }

// entry is the per-widget record owned by the registry
type entry struct {
	widget    Widget
	placement Placement

	selectable bool
	visible    bool

	// firesImmediately marks fire-and-forget widgets (buttons): with
	// auto-focus enabled, Enter in Overview invokes them without a
	// mode change
	firesImmediately bool

	rules    []*rules.Rule
	commands map[KeyStroke]func()
}

// slot is one arena cell
type slot struct {
	gen  uint32
	live bool
	e    entry
}

// registry is an insertion-ordered widget arena
// Insertion order defines the Tab-cycle order and the deterministic
// tie-break for directional navigation
type registry struct {
	slots []slot
	free  []uint32
	order []Handle // Live handles in registration order
}

// insert stores an entry and returns its handle
func (r *registry) insert(e entry) Handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		idx = uint32(len(r.slots) - 1)
	}
	s := &r.slots[idx]
	s.gen++
	s.live = true
	s.e = e

	h := Handle{index: idx, gen: s.gen}
	r.order = append(r.order, h)
	return h
}

// get resolves a handle to its entry
func (r *registry) get(h Handle) (*entry, bool) {
	if h.IsZero() || int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return &s.e, true
}

// remove frees a handle's slot and drops it from the cycle order
func (r *registry) remove(h Handle) bool {
	if _, ok := r.get(h); !ok {
		return false
	}
	s := &r.slots[h.index]
	s.live = false
	s.e = entry{}
	r.free = append(r.free, h.index)

	for i, oh := range r.order {
		if oh == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// len returns the number of live widgets
func (r *registry) len() int { return len(r.order) }

// position returns the registration-order index of a handle, or -1
func (r *registry) position(h Handle) int {
	for i, oh := range r.order {
		if oh == h {
			return i
		}
	}
	return -1
}
