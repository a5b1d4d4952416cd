// Package grid converts a row/column partition of the terminal into
// exact character rectangles. Division remainders are absorbed by the
// last row and column so cell spans always tile the drawable area with
// no lost or double-drawn characters.
package grid

import (
	"errors"
	"fmt"
)

// ErrTooSmall reports a configuration where some cell would have zero size
var ErrTooSmall = errors.New("grid: terminal too small for requested rows/columns")

// Grid holds the row/column partition of the drawable area
// Zero value is unusable; construct via Config
type Grid struct {
	rows int
	cols int

	height int
	width  int

	rowHeight int
	colWidth  int
	offsetY   int // Leftover rows absorbed by the last row
	offsetX   int // Leftover columns absorbed by the last column
}

// Config creates a grid partition of height x width cells
// Fails with ErrTooSmall when a cell would have zero height or width
func Config(rows, cols, height, width int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid: rows and columns must be >= 1, got %dx%d", rows, cols)
	}
	if height < rows || width < cols {
		return nil, fmt.Errorf("%w: %dx%d cells in %dx%d area", ErrTooSmall, rows, cols, height, width)
	}
	g := &Grid{rows: rows, cols: cols}
	g.apply(height, width)
	return g, nil
}

// apply recomputes derived geometry for a size known to be valid
func (g *Grid) apply(height, width int) {
	g.height = height
	g.width = width
	g.rowHeight = height / g.rows
	g.colWidth = width / g.cols
	g.offsetY = height % g.rows
	g.offsetX = width % g.cols
}

// Resize recomputes geometry in place for a new terminal size
// On ErrTooSmall the previous valid geometry is retained unchanged
func (g *Grid) Resize(height, width int) error {
	if height < g.rows || width < g.cols {
		return fmt.Errorf("%w: %dx%d cells in %dx%d area", ErrTooSmall, g.rows, g.cols, height, width)
	}
	g.apply(height, width)
	return nil
}

// Rows returns the number of grid rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns
func (g *Grid) Cols() int { return g.cols }

// Size returns the drawable area dimensions
func (g *Grid) Size() (height, width int) { return g.height, g.width }

// RowHeight returns the base height of one row before offset absorption
func (g *Grid) RowHeight() int { return g.rowHeight }

// ColWidth returns the base width of one column before offset absorption
func (g *Grid) ColWidth() int { return g.colWidth }

// Rect is a half-open character rectangle [StartX, StopX) x [StartY, StopY)
type Rect struct {
	StartX int
	StartY int
	StopX  int
	StopY  int
}

// Width returns the rectangle width in cells
func (r Rect) Width() int { return r.StopX - r.StartX }

// Height returns the rectangle height in cells
func (r Rect) Height() int { return r.StopY - r.StartY }

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.StartX && x < r.StopX && y >= r.StartY && y < r.StopY
}

// CellRect computes the character rectangle for a cell span
// The last row and column absorb the division remainder so that spans
// covering the full grid reach exactly height/width
func (g *Grid) CellRect(row, col, rowSpan, colSpan, padX, padY int) Rect {
	r := Rect{
		StartX: col*g.colWidth + padX,
		StartY: row*g.rowHeight + padY,
		StopX:  (col+colSpan)*g.colWidth - padX,
		StopY:  (row+rowSpan)*g.rowHeight - padY,
	}
	if col+colSpan == g.cols {
		r.StopX += g.offsetX
	}
	if row+rowSpan == g.rows {
		r.StopY += g.offsetY
	}
	return r
}

// ValidSpan reports whether a placement fits inside the grid bounds
func (g *Grid) ValidSpan(row, col, rowSpan, colSpan int) bool {
	if row < 0 || col < 0 || rowSpan < 1 || colSpan < 1 {
		return false
	}
	return row+rowSpan <= g.rows && col+colSpan <= g.cols
}
