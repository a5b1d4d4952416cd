package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Screen provides cell-level terminal access
type Screen interface {
	// Init takes over the terminal. Must be called before any other method
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// PollEvent blocks until the next input event
	// A timeout > 0 yields an EventTimeout after that interval so the
	// caller can redraw on a timer without user input
	PollEvent(timeout time.Duration) Event

	// PostEvent injects a synthetic event into the poll stream
	PostEvent(ev Event)

	// SetCell writes one grapheme cluster at x, y
	// Anything past the first cluster of the string is ignored
	SetCell(x, y int, grapheme string, pair Pair, bold bool)

	// Text writes a string left to right starting at x, y and returns
	// the display width consumed. Wide clusters advance by their width
	Text(x, y int, s string, pair Pair, bold bool) int

	// MoveCursor positions the visible cursor (0-indexed)
	MoveCursor(x, y int)

	// HideCursor removes the visible cursor
	HideCursor()

	// Clear erases the whole screen to the default pair background
	Clear()

	// Show flushes pending writes to the terminal
	Show()
}

// tcellScreen implements Screen over a tcell screen
type tcellScreen struct {
	tc      tcell.Screen
	palette []PairDef

	events    chan Event
	synthetic chan Event
	quit      chan struct{}
}

// New creates a Screen backed by the process terminal
// An optional palette overrides DefaultPalette
func New(palette ...[]PairDef) (Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	p := DefaultPalette
	if len(palette) > 0 && len(palette[0]) > 0 {
		p = palette[0]
	}
	return &tcellScreen{
		tc:        tc,
		palette:   p,
		events:    make(chan Event, 16),
		synthetic: make(chan Event, 16),
		quit:      make(chan struct{}),
	}, nil
}

func (s *tcellScreen) Init() error {
	if err := s.tc.Init(); err != nil {
		return err
	}
	go s.readLoop()
	return nil
}

func (s *tcellScreen) Fini() {
	select {
	case <-s.quit:
		// Already finalized
	default:
		close(s.quit)
		s.tc.Fini()
	}
}

// readLoop translates tcell events and feeds the poll channel
// Runs until the backing screen is finalized
func (s *tcellScreen) readLoop() {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			select {
			case s.events <- Event{Type: EventClosed}:
			case <-s.quit:
			}
			return
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			k, r, mod := keyFromTcell(tev)
			if k == KeyNone {
				continue
			}
			select {
			case s.events <- Event{Type: EventKey, Key: k, Rune: r, Modifiers: mod}:
			case <-s.quit:
				return
			}
		case *tcell.EventResize:
			w, h := tev.Size()
			select {
			case s.events <- ResizeEvent(w, h):
			case <-s.quit:
				return
			}
		}
	}
}

func (s *tcellScreen) Size() (int, int) {
	return s.tc.Size()
}

func (s *tcellScreen) PollEvent(timeout time.Duration) Event {
	if timeout <= 0 {
		select {
		case ev := <-s.synthetic:
			return ev
		case ev := <-s.events:
			return ev
		case <-s.quit:
			return Event{Type: EventClosed}
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-s.synthetic:
		return ev
	case ev := <-s.events:
		return ev
	case <-timer.C:
		return Event{Type: EventTimeout}
	case <-s.quit:
		return Event{Type: EventClosed}
	}
}

func (s *tcellScreen) PostEvent(ev Event) {
	select {
	case s.synthetic <- ev:
	default:
		// Synthetic queue full, drop
	}
}

func (s *tcellScreen) SetCell(x, y int, grapheme string, pair Pair, bold bool) {
	if grapheme == "" {
		return
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(grapheme, -1)
	runes := []rune(cluster)
	if len(runes) == 0 {
		return
	}
	style := styleFor(s.palette, pair, bold)
	s.tc.SetContent(x, y, runes[0], runes[1:], style)
}

func (s *tcellScreen) Text(x, y int, str string, pair Pair, bold bool) int {
	style := styleFor(s.palette, pair, bold)
	start := x
	rest := str
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			break
		}
		s.tc.SetContent(x, y, runes[0], runes[1:], style)
		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		x += w
	}
	return x - start
}

func (s *tcellScreen) MoveCursor(x, y int) {
	s.tc.ShowCursor(x, y)
}

func (s *tcellScreen) HideCursor() {
	s.tc.HideCursor()
}

func (s *tcellScreen) Clear() {
	s.tc.SetStyle(styleFor(s.palette, PairDefault, false))
	s.tc.Clear()
}

func (s *tcellScreen) Show() {
	s.tc.Show()
}
