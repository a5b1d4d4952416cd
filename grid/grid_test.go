package grid

import (
	"errors"
	"testing"
)

func TestConfigDerivedGeometry(t *testing.T) {
	g, err := Config(4, 1, 20, 10)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	if g.RowHeight() != 5 {
		t.Errorf("rowHeight: got %d, want 5", g.RowHeight())
	}
	if g.offsetY != 0 {
		t.Errorf("offsetY: got %d, want 0", g.offsetY)
	}
	if g.ColWidth() != 10 {
		t.Errorf("colWidth: got %d, want 10", g.ColWidth())
	}
}

func TestConfigTooSmall(t *testing.T) {
	g, err := Config(5, 5, 4, 4)
	if !errors.Is(err, ErrTooSmall) {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
	if g != nil {
		t.Error("failed Config must not return a grid")
	}
}

func TestConfigRejectsNonPositiveCounts(t *testing.T) {
	if _, err := Config(0, 3, 10, 10); err == nil {
		t.Error("rows=0 accepted")
	}
	if _, err := Config(3, 0, 10, 10); err == nil {
		t.Error("cols=0 accepted")
	}
}

func TestResizeKeepsGeometryOnFailure(t *testing.T) {
	g, err := Config(3, 3, 30, 30)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	if err := g.Resize(2, 2); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
	h, w := g.Size()
	if h != 30 || w != 30 {
		t.Errorf("failed resize mutated geometry: %dx%d", h, w)
	}
	if g.RowHeight() != 10 || g.ColWidth() != 10 {
		t.Errorf("failed resize mutated cell size: %dx%d", g.RowHeight(), g.ColWidth())
	}
}

func TestResizeRecomputes(t *testing.T) {
	g, err := Config(2, 4, 10, 17)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	if err := g.Resize(11, 21); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if g.RowHeight() != 5 || g.ColWidth() != 5 {
		t.Errorf("cell size: got %dx%d, want 5x5", g.RowHeight(), g.ColWidth())
	}
	if g.offsetY != 1 || g.offsetX != 1 {
		t.Errorf("offsets: got y=%d x=%d, want 1/1", g.offsetY, g.offsetX)
	}
}

// Layout completeness: per-row heights including the absorbed offset
// must sum to the exact drawable height, likewise for columns
func TestLayoutCompleteness(t *testing.T) {
	cases := []struct {
		rows, cols, h, w int
	}{
		{1, 1, 1, 1},
		{3, 3, 24, 80},
		{4, 1, 20, 10},
		{5, 7, 23, 81},
		{7, 5, 100, 33},
		{2, 9, 11, 10},
	}
	for _, tc := range cases {
		g, err := Config(tc.rows, tc.cols, tc.h, tc.w)
		if err != nil {
			t.Fatalf("Config(%+v) failed: %v", tc, err)
		}

		sumH := 0
		for row := 0; row < tc.rows; row++ {
			r := g.CellRect(row, 0, 1, 1, 0, 0)
			sumH += r.Height()
		}
		if sumH != tc.h {
			t.Errorf("%+v: row heights sum to %d, want %d", tc, sumH, tc.h)
		}

		sumW := 0
		for col := 0; col < tc.cols; col++ {
			r := g.CellRect(0, col, 1, 1, 0, 0)
			sumW += r.Width()
		}
		if sumW != tc.w {
			t.Errorf("%+v: column widths sum to %d, want %d", tc, sumW, tc.w)
		}
	}
}

// Rectangle containment: every cell rect lies within [0,width) x [0,height)
func TestRectContainment(t *testing.T) {
	g, err := Config(5, 7, 23, 81)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 7; col++ {
			r := g.CellRect(row, col, 1, 1, 0, 0)
			if r.StartX < 0 || r.StartY < 0 || r.StopX > 81 || r.StopY > 23 {
				t.Errorf("cell (%d,%d) rect %+v escapes 23x81 area", row, col, r)
			}
		}
	}
}

func TestCellRectSpansAndPadding(t *testing.T) {
	g, err := Config(3, 3, 31, 32, // rowHeight=10 offsetY=1, colWidth=10 offsetX=2
	)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}

	// Middle cell, no padding
	r := g.CellRect(1, 1, 1, 1, 0, 0)
	want := Rect{StartX: 10, StartY: 10, StopX: 20, StopY: 20}
	if r != want {
		t.Errorf("middle cell: got %+v, want %+v", r, want)
	}

	// Last cell absorbs offsets
	r = g.CellRect(2, 2, 1, 1, 0, 0)
	want = Rect{StartX: 20, StartY: 20, StopX: 32, StopY: 31}
	if r != want {
		t.Errorf("last cell: got %+v, want %+v", r, want)
	}

	// Full-grid span equals the whole area
	r = g.CellRect(0, 0, 3, 3, 0, 0)
	want = Rect{StartX: 0, StartY: 0, StopX: 32, StopY: 31}
	if r != want {
		t.Errorf("full span: got %+v, want %+v", r, want)
	}

	// Padding shrinks symmetrically
	r = g.CellRect(0, 0, 1, 1, 2, 1)
	want = Rect{StartX: 2, StartY: 1, StopX: 8, StopY: 9}
	if r != want {
		t.Errorf("padded cell: got %+v, want %+v", r, want)
	}
}

func TestValidSpan(t *testing.T) {
	g, err := Config(3, 4, 30, 40)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	cases := []struct {
		row, col, rs, cs int
		want             bool
	}{
		{0, 0, 1, 1, true},
		{2, 3, 1, 1, true},
		{0, 0, 3, 4, true},
		{2, 3, 2, 1, false},
		{0, 3, 1, 2, false},
		{-1, 0, 1, 1, false},
		{0, 0, 0, 1, false},
	}
	for _, tc := range cases {
		if got := g.ValidSpan(tc.row, tc.col, tc.rs, tc.cs); got != tc.want {
			t.Errorf("ValidSpan(%d,%d,%d,%d): got %v, want %v", tc.row, tc.col, tc.rs, tc.cs, got, tc.want)
		}
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{StartX: 2, StartY: 3, StopX: 10, StopY: 7}
	if r.Width() != 8 || r.Height() != 4 {
		t.Errorf("size: got %dx%d, want 8x4", r.Width(), r.Height())
	}
	if !r.Contains(2, 3) || r.Contains(10, 3) || r.Contains(2, 7) {
		t.Error("Contains must be half-open")
	}
}
