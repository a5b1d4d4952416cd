package ui

import "github.com/lixenwraith/gridtui/terminal"

// TextBox displays scrollable lines of text, colored through the
// widget's rules. Focus keys scroll; the content itself is read-only
type TextBox struct {
	title  string
	lines  []string
	scroll int
	viewH  int // Last drawn viewport height, for paging
}

// NewTextBox creates a text box with initial content
func NewTextBox(title string, lines []string) *TextBox {
	return &TextBox{title: title, lines: lines}
}

// SetLines replaces the content, keeping scroll in range
func (t *TextBox) SetLines(lines []string) {
	t.lines = lines
	t.clampScroll()
}

// AppendLine adds one line at the end
func (t *TextBox) AppendLine(line string) {
	t.lines = append(t.lines, line)
}

// Lines returns the current content
func (t *TextBox) Lines() []string { return t.lines }

func (t *TextBox) clampScroll() {
	max := len(t.lines) - t.viewH
	if max < 0 {
		max = 0
	}
	if t.scroll > max {
		t.scroll = max
	}
	if t.scroll < 0 {
		t.scroll = 0
	}
}

func (t *TextBox) Draw(f *Frame) {
	f.DrawBorder(t.title)
	inner := f.Inner()
	t.viewH = inner.Height()
	t.clampScroll()

	for y := 0; y < inner.Height(); y++ {
		idx := t.scroll + y
		if idx >= len(t.lines) {
			break
		}
		sub := *f
		sub.Canvas = inner
		sub.Line(0, y, t.lines[idx])
	}
}

func (t *TextBox) HandleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyUp:
		t.scroll--
	case terminal.KeyDown:
		t.scroll++
	case terminal.KeyPageUp:
		t.scroll -= t.viewH
	case terminal.KeyPageDown:
		t.scroll += t.viewH
	case terminal.KeyHome:
		t.scroll = 0
	case terminal.KeyEnd:
		t.scroll = len(t.lines)
	default:
		return false
	}
	t.clampScroll()
	return true
}

func (t *TextBox) HelpText() string {
	return "Up/Down scroll | PgUp/PgDn page | Esc return"
}
