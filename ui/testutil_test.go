package ui

import (
	"time"

	"github.com/lixenwraith/gridtui/terminal"
)

// stubScreen records cell writes for assertions, no real terminal
type stubScreen struct {
	w, h   int
	cells  map[[2]int]stubCell
	events []terminal.Event
	shows  int
}

type stubCell struct {
	text string
	pair terminal.Pair
	bold bool
}

func newStubScreen(w, h int) *stubScreen {
	return &stubScreen{w: w, h: h, cells: make(map[[2]int]stubCell)}
}

func (s *stubScreen) Init() error          { return nil }
func (s *stubScreen) Fini()                {}
func (s *stubScreen) Size() (int, int)     { return s.w, s.h }
func (s *stubScreen) MoveCursor(x, y int)  {}
func (s *stubScreen) HideCursor()          {}
func (s *stubScreen) Show()                { s.shows++ }
func (s *stubScreen) PostEvent(ev terminal.Event) {
	s.events = append(s.events, ev)
}

func (s *stubScreen) Clear() {
	s.cells = make(map[[2]int]stubCell)
}

func (s *stubScreen) PollEvent(timeout time.Duration) terminal.Event {
	if len(s.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *stubScreen) SetCell(x, y int, grapheme string, pair terminal.Pair, bold bool) {
	s.cells[[2]int{x, y}] = stubCell{text: grapheme, pair: pair, bold: bold}
}

func (s *stubScreen) Text(x, y int, str string, pair terminal.Pair, bold bool) int {
	start := x
	for _, r := range str {
		s.SetCell(x, y, string(r), pair, bold)
		x++
	}
	return x - start
}

// row reads back a rendered row as a string, spaces for empty cells
func (s *stubScreen) row(y, x0, x1 int) string {
	out := make([]rune, 0, x1-x0)
	for x := x0; x < x1; x++ {
		c, ok := s.cells[[2]int{x, y}]
		if !ok || c.text == "" {
			out = append(out, ' ')
			continue
		}
		out = append(out, []rune(c.text)[0])
	}
	return string(out)
}

// stubWidget records key events and consumes them on demand
type stubWidget struct {
	name    string
	keys    []terminal.Event
	consume bool
	drawn   int
}

func (w *stubWidget) Draw(f *Frame) { w.drawn++ }

func (w *stubWidget) HandleKey(ev terminal.Event) bool {
	w.keys = append(w.keys, ev)
	return w.consume
}

func (w *stubWidget) HelpText() string { return w.name }

// testManager builds a manager over a stub screen
func testManager(t interface{ Fatalf(string, ...any) }, rows, cols, w, h int) (*Manager, *stubScreen) {
	scr := newStubScreen(w, h)
	m, err := NewManager(scr, Options{Rows: rows, Cols: cols, AutoFocusButtons: true})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m, scr
}

// place adds a stub widget, failing the test on error
func place(t interface{ Fatalf(string, ...any) }, m *Manager, p Placement) (Handle, *stubWidget) {
	w := &stubWidget{}
	h, err := m.Place(w, p)
	if err != nil {
		t.Fatalf("Place(%+v) failed: %v", p, err)
	}
	return h, w
}

func keyEv(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}
