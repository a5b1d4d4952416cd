package ui

import (
	"github.com/lixenwraith/gridtui/rules"
	"github.com/lixenwraith/gridtui/terminal"
)

// Widget is the capability object behind a placed widget
// Concrete widgets compose behavior through this interface instead of
// inheriting from a shared base
type Widget interface {
	// Draw renders the widget into its frame
	Draw(f *Frame)

	// HandleKey processes one key event while the widget holds focus
	// Returns true when the event was consumed
	HandleKey(ev terminal.Event) bool

	// HelpText describes the widget's focus-mode keys for the help bar
	HelpText() string
}

// Placement fixes a widget's cell span at placement time
type Placement struct {
	Row     int
	Col     int
	RowSpan int // Defaults to 1 when 0
	ColSpan int // Defaults to 1 when 0
	PadX    int
	PadY    int
}

// normalize applies span defaults
func (p Placement) normalize() Placement {
	if p.RowSpan < 1 {
		p.RowSpan = 1
	}
	if p.ColSpan < 1 {
		p.ColSpan = 1
	}
	return p
}

// KeyStroke identifies one key binding: either a named key or a rune
type KeyStroke struct {
	Key  terminal.Key
	Rune rune
}

// Stroke builds a binding for a named key
func Stroke(k terminal.Key) KeyStroke {
	return KeyStroke{Key: k}
}

// RuneStroke builds a binding for a printable character
func RuneStroke(r rune) KeyStroke {
	return KeyStroke{Key: terminal.KeyRune, Rune: r}
}

// strokeOf extracts the binding lookup key from an event
func strokeOf(ev terminal.Event) KeyStroke {
	if ev.Key == terminal.KeyRune {
		return KeyStroke{Key: terminal.KeyRune, Rune: ev.Rune}
	}
	return KeyStroke{Key: ev.Key}
}

// Frame carries everything a widget needs for one draw pass: a canvas
// clipped to its rectangle, its color rules, and its current state
type Frame struct {
	Canvas

	Rules    []*rules.Rule
	Color    terminal.Pair // Default text color
	Selected bool          // Widget is the Overview selection
	Focused  bool          // Widget owns key input

	Border      BorderSet
	BorderColor terminal.Pair
	TitleColor  terminal.Pair
	CursorColor terminal.Pair
}

// Line renders one line of text through the widget's color rules
func (f *Frame) Line(x, y int, text string) {
	frags := rules.Apply(text, f.Rules, f.Color, f.Selected)
	f.Fragments(x, y, frags, false)
}

// DrawBorder draws the widget border, highlighted while selected or focused
func (f *Frame) DrawBorder(title string) {
	pair := f.BorderColor
	bold := false
	if f.Selected || f.Focused {
		bold = true
	}
	if f.Focused {
		pair = f.TitleColor
	}
	f.Box(f.Border, pair, bold)
	f.Title(title, f.TitleColor)
}
