package ui

import "github.com/lixenwraith/gridtui/terminal"

// Button is a fire-and-forget widget: Enter runs its action
// Place it with SetFiresImmediately to get the Overview auto-focus rule
type Button struct {
	label string

	// OnPress runs when the button fires. Optional
	OnPress func()
}

// NewButton creates a button
func NewButton(label string, onPress func()) *Button {
	return &Button{label: label, OnPress: onPress}
}

// Label returns the button text
func (b *Button) Label() string { return b.label }

func (b *Button) Draw(f *Frame) {
	f.DrawBorder("")
	inner := f.Inner()

	pair := f.Color
	bold := false
	if f.Selected || f.Focused {
		pair = f.TitleColor
		bold = true
	}
	y := inner.Height() / 2
	x := (inner.Width() - len([]rune(b.label))) / 2
	if x < 0 {
		x = 0
	}
	inner.Text(x, y, b.label, pair, bold)
}

func (b *Button) HandleKey(ev terminal.Event) bool {
	if ev.Key == terminal.KeyEnter || ev.Key == terminal.KeySpace {
		if b.OnPress != nil {
			b.OnPress()
		}
		return true
	}
	return false
}

func (b *Button) HelpText() string {
	return "Enter press | Esc return"
}
