package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridtui/grid"
	"github.com/lixenwraith/gridtui/rules"
	"github.com/lixenwraith/gridtui/terminal"
)

// BorderSet specifies the box drawing glyphs used for widget borders
type BorderSet struct {
	TL, TR, BL, BR rune
	H, V           rune
}

// Built-in border glyph sets
var (
	BorderSingle  = BorderSet{TL: '┌', TR: '┐', BL: '└', BR: '┘', H: '─', V: '│'}
	BorderDouble  = BorderSet{TL: '╔', TR: '╗', BL: '╚', BR: '╝', H: '═', V: '║'}
	BorderRounded = BorderSet{TL: '╭', TR: '╮', BL: '╰', BR: '╯', H: '─', V: '│'}
	BorderHeavy   = BorderSet{TL: '┏', TR: '┓', BL: '┗', BR: '┛', H: '━', V: '┃'}
	BorderNone    = BorderSet{TL: ' ', TR: ' ', BL: ' ', BR: ' ', H: ' ', V: ' '}
)

// Canvas is a clipped drawing surface over one screen rectangle
// All coordinates are relative to the rectangle's origin
type Canvas struct {
	scr  terminal.Screen
	rect grid.Rect
}

// NewCanvas wraps a screen rectangle
func NewCanvas(scr terminal.Screen, rect grid.Rect) Canvas {
	return Canvas{scr: scr, rect: rect}
}

// Width returns the canvas width in cells
func (c Canvas) Width() int { return c.rect.Width() }

// Height returns the canvas height in cells
func (c Canvas) Height() int { return c.rect.Height() }

// Sub returns a nested canvas clipped to this one
func (c Canvas) Sub(x, y, w, h int) Canvas {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > c.rect.Width() {
		w = c.rect.Width() - x
	}
	if y+h > c.rect.Height() {
		h = c.rect.Height() - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Canvas{
		scr: c.scr,
		rect: grid.Rect{
			StartX: c.rect.StartX + x,
			StartY: c.rect.StartY + y,
			StopX:  c.rect.StartX + x + w,
			StopY:  c.rect.StartY + y + h,
		},
	}
}

// Inner returns the canvas shrunk by one cell on all sides
func (c Canvas) Inner() Canvas {
	return c.Sub(1, 1, c.Width()-2, c.Height()-2)
}

// SetCell writes one grapheme with bounds checking
func (c Canvas) SetCell(x, y int, grapheme string, pair terminal.Pair, bold bool) {
	if x < 0 || x >= c.rect.Width() || y < 0 || y >= c.rect.Height() {
		return
	}
	c.scr.SetCell(c.rect.StartX+x, c.rect.StartY+y, grapheme, pair, bold)
}

// setRune is SetCell for a single rune
func (c Canvas) setRune(x, y int, r rune, pair terminal.Pair, bold bool) {
	c.SetCell(x, y, string(r), pair, bold)
}

// Text writes a string clipped to the canvas width, returns width consumed
func (c Canvas) Text(x, y int, s string, pair terminal.Pair, bold bool) int {
	if y < 0 || y >= c.rect.Height() || x >= c.rect.Width() {
		return 0
	}
	if x < 0 {
		// Clip from the left by display width
		s = runewidth.TruncateLeft(s, -x, "")
		x = 0
	}
	avail := c.rect.Width() - x
	if runewidth.StringWidth(s) > avail {
		s = runewidth.Truncate(s, avail, "")
	}
	return c.scr.Text(c.rect.StartX+x, c.rect.StartY+y, s, pair, bold)
}

// Fragments writes colored fragments left to right starting at x, y
func (c Canvas) Fragments(x, y int, frags []rules.Fragment, bold bool) {
	for _, f := range frags {
		x += c.Text(x, y, f.Text, f.Color, bold)
		if x >= c.rect.Width() {
			return
		}
	}
}

// Fill fills the canvas with spaces in the pair's background
func (c Canvas) Fill(pair terminal.Pair) {
	for y := 0; y < c.rect.Height(); y++ {
		for x := 0; x < c.rect.Width(); x++ {
			c.setRune(x, y, ' ', pair, false)
		}
	}
}

// FillRow fills a single row with spaces
func (c Canvas) FillRow(y int, pair terminal.Pair) {
	for x := 0; x < c.rect.Width(); x++ {
		c.setRune(x, y, ' ', pair, false)
	}
}

// Box draws a border around the canvas edge
func (c Canvas) Box(b BorderSet, pair terminal.Pair, bold bool) {
	w, h := c.rect.Width(), c.rect.Height()
	if w < 2 || h < 2 {
		return
	}

	c.setRune(0, 0, b.TL, pair, bold)
	c.setRune(w-1, 0, b.TR, pair, bold)
	c.setRune(0, h-1, b.BL, pair, bold)
	c.setRune(w-1, h-1, b.BR, pair, bold)

	for x := 1; x < w-1; x++ {
		c.setRune(x, 0, b.H, pair, bold)
		c.setRune(x, h-1, b.H, pair, bold)
	}
	for y := 1; y < h-1; y++ {
		c.setRune(0, y, b.V, pair, bold)
		c.setRune(w-1, y, b.V, pair, bold)
	}
}

// Title writes a centered title onto the top border row
func (c Canvas) Title(title string, pair terminal.Pair) {
	if title == "" || c.rect.Width() < 4 {
		return
	}
	text := " " + title + " "
	max := c.rect.Width() - 2
	if runewidth.StringWidth(text) > max {
		text = runewidth.Truncate(text, max, "…")
	}
	x := (c.rect.Width() - runewidth.StringWidth(text)) / 2
	c.Text(x, 0, text, pair, true)
}

// Center returns a canvas of size w x h centered on this one, clipped
func (c Canvas) Center(w, h int) Canvas {
	if w > c.rect.Width() {
		w = c.rect.Width()
	}
	if h > c.rect.Height() {
		h = c.rect.Height()
	}
	return c.Sub((c.rect.Width()-w)/2, (c.rect.Height()-h)/2, w, h)
}
