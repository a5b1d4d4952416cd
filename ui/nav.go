package ui

// Direction is a spatial navigation direction for Overview selection
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsVertical reports whether the direction moves between rows
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// overlap returns the length of the intersection of [a0, a1) and [b0, b1)
func overlap(a0, a1, b0, b1 int) int {
	lo := a0
	if b0 > lo {
		lo = b0
	}
	hi := a1
	if b1 < hi {
		hi = b1
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// neighbor finds the directional neighbor of cur, or false when none.
//
// The probe band is the single row (or column) immediately outside the
// widget's own span, limited to its perpendicular span. Among visible
// widgets intersecting the band, the one with the largest perpendicular
// overlap wins; ties fall to the earliest-registered candidate
func (r *registry) neighbor(cur Handle, d Direction) (Handle, bool) {
	ce, ok := r.get(cur)
	if !ok {
		return NoHandle, false
	}
	cp := ce.placement

	// Band coordinate along the movement axis
	var band int
	switch d {
	case DirUp:
		band = cp.Row - 1
	case DirDown:
		band = cp.Row + cp.RowSpan
	case DirLeft:
		band = cp.Col - 1
	case DirRight:
		band = cp.Col + cp.ColSpan
	}
	if band < 0 {
		return NoHandle, false
	}

	best := NoHandle
	bestOverlap := 0
	for _, h := range r.order {
		if h == cur {
			continue
		}
		e, ok := r.get(h)
		if !ok || !e.visible {
			continue
		}
		p := e.placement

		var inBand bool
		var ov int
		if d.IsVertical() {
			inBand = band >= p.Row && band < p.Row+p.RowSpan
			ov = overlap(cp.Col, cp.Col+cp.ColSpan, p.Col, p.Col+p.ColSpan)
		} else {
			inBand = band >= p.Col && band < p.Col+p.ColSpan
			ov = overlap(cp.Row, cp.Row+cp.RowSpan, p.Row, p.Row+p.RowSpan)
		}
		if !inBand || ov == 0 {
			continue
		}
		// Strict comparison keeps the earliest registration on ties
		if ov > bestOverlap {
			bestOverlap = ov
			best = h
		}
	}

	if best.IsZero() {
		return NoHandle, false
	}
	return best, true
}

// cycle walks the registration order from cur, skipping non-selectable
// or invisible widgets, wrapping around. Returns cur when no other
// widget can take selection
func (r *registry) cycle(cur Handle, forward bool) Handle {
	n := len(r.order)
	if n == 0 {
		return NoHandle
	}

	start := r.position(cur)
	if start < 0 {
		// No current selection: scan the whole order from the front
		for _, h := range r.order {
			if e, ok := r.get(h); ok && e.selectable && e.visible {
				return h
			}
		}
		return NoHandle
	}

	step := 1
	if !forward {
		step = -1
	}
	for i := 1; i < n; i++ {
		h := r.order[((start+i*step)%n+n)%n]
		if e, ok := r.get(h); ok && e.selectable && e.visible {
			return h
		}
	}
	return cur
}
