package terminal

import "github.com/gdamore/tcell/v2"

// Pair is an index into the screen's color palette
// Widgets and rules treat pairs as opaque small integers
type Pair uint8

// PairDef declares the foreground/background colors behind one pair index
type PairDef struct {
	Fg tcell.Color
	Bg tcell.Color
}

// Standard pair indices of the default palette
const (
	PairDefault Pair = iota
	PairSelected
	PairBorder
	PairTitle
	PairError
	PairWarning
	PairHint
	PairPopup
	PairCursor
)

// DefaultPalette provides reasonable defaults
var DefaultPalette = []PairDef{
	PairDefault:  {Fg: tcell.ColorWhite, Bg: tcell.ColorBlack},
	PairSelected: {Fg: tcell.ColorBlack, Bg: tcell.ColorSilver},
	PairBorder:   {Fg: tcell.NewRGBColor(60, 80, 100), Bg: tcell.ColorBlack},
	PairTitle:    {Fg: tcell.NewRGBColor(100, 200, 220), Bg: tcell.ColorBlack},
	PairError:    {Fg: tcell.NewRGBColor(255, 80, 80), Bg: tcell.ColorBlack},
	PairWarning:  {Fg: tcell.NewRGBColor(255, 180, 100), Bg: tcell.ColorBlack},
	PairHint:     {Fg: tcell.NewRGBColor(100, 180, 200), Bg: tcell.ColorBlack},
	PairPopup:    {Fg: tcell.ColorWhite, Bg: tcell.NewRGBColor(30, 30, 50)},
	PairCursor:   {Fg: tcell.ColorBlack, Bg: tcell.NewRGBColor(200, 200, 200)},
}

// styleFor resolves a pair index against a palette
// Unknown pairs fall back to the first palette entry
func styleFor(palette []PairDef, p Pair, bold bool) tcell.Style {
	def := PairDef{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack}
	if int(p) < len(palette) {
		def = palette[p]
	} else if len(palette) > 0 {
		def = palette[0]
	}
	return tcell.StyleDefault.Foreground(def.Fg).Background(def.Bg).Bold(bold)
}
