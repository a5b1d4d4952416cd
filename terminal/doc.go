// Package terminal is the rendering boundary of the toolkit.
//
// It wraps a tcell screen behind a small Screen interface: cell writes
// with an opaque color pair, cursor movement, and a blocking event read
// with an optional timeout. Everything above this package treats the
// terminal as a grid of character cells and colors as small integers
// into a fixed palette.
//
// Key constants and event types are toolkit-owned so that widget and
// dispatch code never imports tcell directly.
package terminal
