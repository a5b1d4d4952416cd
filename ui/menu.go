package ui

import "github.com/lixenwraith/gridtui/terminal"

// Menu is a scrollable item list with a cursor
// Enter in focus invokes OnSelect with the cursor item
type Menu struct {
	title  string
	items  []string
	cursor int
	scroll int
	viewH  int

	// OnSelect runs when an item is chosen. Optional
	OnSelect func(index int, item string)
}

// NewMenu creates a menu with initial items
func NewMenu(title string, items []string) *Menu {
	return &Menu{title: title, items: items}
}

// SetItems replaces the item list, keeping the cursor in range
func (m *Menu) SetItems(items []string) {
	m.items = items
	m.clamp()
}

// Cursor returns the cursor index
func (m *Menu) Cursor() int { return m.cursor }

// Item returns the item under the cursor
func (m *Menu) Item() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return "", false
	}
	return m.items[m.cursor], true
}

func (m *Menu) clamp() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	// Keep cursor inside the scroll window
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.viewH > 0 && m.cursor >= m.scroll+m.viewH {
		m.scroll = m.cursor - m.viewH + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Menu) Draw(f *Frame) {
	f.DrawBorder(m.title)
	inner := f.Inner()
	m.viewH = inner.Height()
	m.clamp()

	for y := 0; y < inner.Height(); y++ {
		idx := m.scroll + y
		if idx >= len(m.items) {
			break
		}
		if idx == m.cursor && f.Focused {
			inner.FillRow(y, f.CursorColor)
			inner.Text(0, y, m.items[idx], f.CursorColor, true)
			continue
		}
		sub := *f
		sub.Canvas = inner
		sub.Line(0, y, m.items[idx])
	}
}

func (m *Menu) HandleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyUp:
		m.cursor--
	case terminal.KeyDown:
		m.cursor++
	case terminal.KeyHome:
		m.cursor = 0
	case terminal.KeyEnd:
		m.cursor = len(m.items) - 1
	case terminal.KeyPageUp:
		m.cursor -= m.viewH
	case terminal.KeyPageDown:
		m.cursor += m.viewH
	case terminal.KeyEnter:
		if item, ok := m.Item(); ok && m.OnSelect != nil {
			m.OnSelect(m.cursor, item)
		}
		return true
	default:
		return false
	}
	m.clamp()
	return true
}

func (m *Menu) HelpText() string {
	return "Up/Down move | Enter choose | Esc return"
}
