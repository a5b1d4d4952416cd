package ui

import (
	"fmt"
	"time"

	"github.com/lixenwraith/gridtui/grid"
	"github.com/lixenwraith/gridtui/rules"
	"github.com/lixenwraith/gridtui/terminal"
)

// Theme maps semantic toolkit colors to palette pairs
type Theme struct {
	Default  terminal.Pair
	Selected terminal.Pair
	Border   terminal.Pair
	Title    terminal.Pair
	Popup    terminal.Pair
	Hint     terminal.Pair
	Cursor   terminal.Pair
}

// DefaultTheme matches the default terminal palette
var DefaultTheme = Theme{
	Default:  terminal.PairDefault,
	Selected: terminal.PairSelected,
	Border:   terminal.PairBorder,
	Title:    terminal.PairTitle,
	Popup:    terminal.PairPopup,
	Hint:     terminal.PairHint,
	Cursor:   terminal.PairCursor,
}

// Options are the in-process construction parameters of a Manager
type Options struct {
	Rows int
	Cols int

	// ExitKey terminates the event loop, Overview mode only
	ExitKey terminal.Key
	// CycleKey advances selection in registration order; Backtab
	// always cycles backward
	CycleKey terminal.Key

	// AutoFocusButtons makes Enter invoke fire-and-forget widgets from
	// Overview instead of focusing them
	AutoFocusButtons bool

	// RefreshInterval > 0 makes the event loop emit timeout redraws so
	// state mutated by background goroutines becomes visible
	RefreshInterval time.Duration

	Border BorderSet
	Theme  Theme
}

// defaults fills zero-valued options
func (o Options) defaults() Options {
	if o.Rows < 1 {
		o.Rows = 1
	}
	if o.Cols < 1 {
		o.Cols = 1
	}
	if o.ExitKey == terminal.KeyNone {
		o.ExitKey = terminal.KeyCtrlQ
	}
	if o.CycleKey == terminal.KeyNone {
		o.CycleKey = terminal.KeyTab
	}
	if o.Border == (BorderSet{}) {
		o.Border = BorderSingle
	}
	if o.Theme == (Theme{}) {
		o.Theme = DefaultTheme
	}
	return o
}

// Manager owns the grid, the widget registry and the mode machine
// All methods must be called from the event-loop goroutine
type Manager struct {
	scr  terminal.Screen
	grid *grid.Grid
	reg  registry
	opts Options

	mode     ModeKind
	selected Handle // Overview selection, retained across Focus
	focus    Handle
	popups   []Popup

	globals map[KeyStroke]func()

	quit bool
}

// NewManager builds a manager over an initialized screen
// Fails with grid.ErrTooSmall when the terminal cannot hold the grid
func NewManager(scr terminal.Screen, opts Options) (*Manager, error) {
	opts = opts.defaults()
	w, h := scr.Size()
	g, err := grid.Config(opts.Rows, opts.Cols, h, w)
	if err != nil {
		return nil, err
	}
	return &Manager{
		scr:     scr,
		grid:    g,
		opts:    opts,
		mode:    ModeOverview,
		globals: make(map[KeyStroke]func()),
	}, nil
}

// Grid exposes the layout engine for rectangle queries
func (m *Manager) Grid() *grid.Grid { return m.grid }

// Mode returns a snapshot of the controller state
func (m *Manager) Mode() Mode {
	return Mode{Kind: m.mode, Focus: m.focus, PopupDepth: len(m.popups)}
}

// Selected returns the Overview selection
func (m *Manager) Selected() (Handle, bool) {
	if m.selected.IsZero() {
		return NoHandle, false
	}
	return m.selected, true
}

// Place registers a widget at a fixed placement
// The widget starts visible and selectable; the first selectable widget
// placed becomes the initial selection
func (m *Manager) Place(w Widget, p Placement) (Handle, error) {
	p = p.normalize()
	if !m.grid.ValidSpan(p.Row, p.Col, p.RowSpan, p.ColSpan) {
		return NoHandle, fmt.Errorf("%w: (%d,%d) span %dx%d in %dx%d grid",
			ErrInvalidPlacement, p.Row, p.Col, p.RowSpan, p.ColSpan, m.grid.Rows(), m.grid.Cols())
	}
	h := m.reg.insert(entry{
		widget:     w,
		placement:  p,
		selectable: true,
		visible:    true,
		commands:   make(map[KeyStroke]func()),
	})
	if m.selected.IsZero() {
		m.selected = h
	}
	return h, nil
}

// Forget removes a widget. If it held focus or selection, the mode
// falls back to Overview with no selection
func (m *Manager) Forget(h Handle) error {
	if !m.reg.remove(h) {
		return fmt.Errorf("%w: forget", ErrUnknownHandle)
	}
	if m.focus == h {
		m.focus = NoHandle
		if m.mode == ModeFocus {
			m.mode = ModeOverview
		}
	}
	if m.selected == h {
		m.selected = NoHandle
	}
	return nil
}

// entryOf resolves a handle or reports ErrUnknownHandle
func (m *Manager) entryOf(h Handle) (*entry, error) {
	e, ok := m.reg.get(h)
	if !ok {
		return nil, ErrUnknownHandle
	}
	return e, nil
}

// SetSelectable toggles whether a widget can take selection and focus
// Making the focused widget non-selectable drops focus to Overview, so
// Focus never references a non-selectable widget
func (m *Manager) SetSelectable(h Handle, v bool) error {
	e, err := m.entryOf(h)
	if err != nil {
		return err
	}
	e.selectable = v
	if !v && m.mode == ModeFocus && m.focus == h {
		m.LeaveFocus()
	}
	return nil
}

// SetVisible toggles widget drawing and navigation participation
func (m *Manager) SetVisible(h Handle, v bool) error {
	e, err := m.entryOf(h)
	if err != nil {
		return err
	}
	e.visible = v
	return nil
}

// SetFiresImmediately marks a fire-and-forget widget for the
// auto-focus Enter rule
func (m *Manager) SetFiresImmediately(h Handle, v bool) error {
	e, err := m.entryOf(h)
	if err != nil {
		return err
	}
	e.firesImmediately = v
	return nil
}

// AddColorRule validates and attaches a color rule to a widget
// Rules apply in registration order during the widget's draws
func (m *Manager) AddColorRule(h Handle, o rules.Opts) error {
	e, err := m.entryOf(h)
	if err != nil {
		return err
	}
	r, err := rules.New(o)
	if err != nil {
		return err
	}
	e.rules = append(e.rules, r)
	return nil
}

// BindKey attaches a focus-mode command to a widget
// Commands run before the widget's own key handling
func (m *Manager) BindKey(h Handle, ks KeyStroke, fn func()) error {
	e, err := m.entryOf(h)
	if err != nil {
		return err
	}
	e.commands[ks] = fn
	return nil
}

// BindGlobal attaches an Overview-mode command
func (m *Manager) BindGlobal(ks KeyStroke, fn func()) {
	m.globals[ks] = fn
}

// HelpText returns the focused or selected widget's help text
func (m *Manager) HelpText() string {
	h := m.focus
	if h.IsZero() {
		h = m.selected
	}
	if e, ok := m.reg.get(h); ok {
		return e.widget.HelpText()
	}
	return ""
}

// Navigate moves Overview selection to the nearest directional
// neighbor. Absence of a neighbor is a silent no-op
func (m *Manager) Navigate(d Direction) {
	if m.selected.IsZero() {
		m.Cycle(true)
		return
	}
	if h, ok := m.reg.neighbor(m.selected, d); ok {
		m.selected = h
	}
}

// Cycle advances selection in registration order, skipping widgets that
// are invisible or not selectable
func (m *Manager) Cycle(forward bool) {
	h := m.reg.cycle(m.selected, forward)
	if !h.IsZero() {
		m.selected = h
	}
}

// EnterFocus gives a selectable widget exclusive key input
func (m *Manager) EnterFocus(h Handle) error {
	e, err := m.entryOf(h)
	if err != nil {
		return err
	}
	if !e.selectable || !e.visible {
		return fmt.Errorf("%w: widget not selectable", ErrUnknownHandle)
	}
	if len(m.popups) > 0 {
		return nil
	}
	m.mode = ModeFocus
	m.focus = h
	m.selected = h
	return nil
}

// LeaveFocus reverts to Overview, keeping the selection for redraw
func (m *Manager) LeaveFocus() {
	if m.mode == ModeFocus {
		m.mode = ModeOverview
		m.focus = NoHandle
	}
}

// OpenPopup pushes a modal popup. Any active focus is dropped and is
// not restored when the popup closes. Pushes beyond the depth bound
// (one popup plus one nested confirmation) are ignored
func (m *Manager) OpenPopup(p Popup) {
	if len(m.popups) >= maxPopupDepth {
		return
	}
	if m.mode == ModeFocus {
		m.focus = NoHandle
	}
	m.mode = ModePopup
	m.popups = append(m.popups, p)
}

// ClosePopup pops the top popup; closing the outer popup returns to
// Overview regardless of the mode the popup was opened from
func (m *Manager) ClosePopup() {
	if len(m.popups) == 0 {
		return
	}
	m.popups = m.popups[:len(m.popups)-1]
	if len(m.popups) == 0 {
		m.mode = ModeOverview
	}
}

// OnResize re-partitions the grid for a new terminal size
// On grid.ErrTooSmall the previous valid geometry is retained and
// drawing continues with it; the mode never changes
func (m *Manager) OnResize(height, width int) error {
	return m.grid.Resize(height, width)
}

// HandleEvent dispatches one input event. Mode transitions never draw;
// the caller redraws once per processed event
func (m *Manager) HandleEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventResize:
		// Ignore the error: last valid geometry stays in effect
		_ = m.OnResize(ev.Height, ev.Width)
	case terminal.EventTimeout:
		m.tick()
	case terminal.EventKey:
		m.reapStoppedLoading()
		m.dispatchKey(ev)
	case terminal.EventClosed:
		m.quit = true
	}
}

// dispatchKey implements the mode-ordered key routing
func (m *Manager) dispatchKey(ev terminal.Event) {
	switch {
	case len(m.popups) > 0:
		// Popup mode: top of stack is the exclusive recipient
		top := m.popups[len(m.popups)-1]
		if top.HandleKey(ev) {
			m.ClosePopup()
		}

	case m.mode == ModeFocus:
		e, ok := m.reg.get(m.focus)
		if !ok {
			m.mode = ModeOverview
			m.focus = NoHandle
			return
		}
		if cmd, ok := e.commands[strokeOf(ev)]; ok {
			cmd()
			return
		}
		if e.widget.HandleKey(ev) {
			return
		}
		if ev.Key == terminal.KeyEscape {
			m.LeaveFocus()
		}

	default: // Overview
		switch {
		case ev.Key == m.opts.ExitKey:
			m.quit = true
		case ev.Key == terminal.KeyUp:
			m.Navigate(DirUp)
		case ev.Key == terminal.KeyDown:
			m.Navigate(DirDown)
		case ev.Key == terminal.KeyLeft:
			m.Navigate(DirLeft)
		case ev.Key == terminal.KeyRight:
			m.Navigate(DirRight)
		case ev.Key == m.opts.CycleKey:
			m.Cycle(true)
		case ev.Key == terminal.KeyBacktab:
			m.Cycle(false)
		case ev.Key == terminal.KeyEnter:
			m.activateSelected(ev)
		default:
			if fn, ok := m.globals[strokeOf(ev)]; ok {
				fn()
			}
		}
	}
}

// activateSelected enters focus on the selection, or fires it in place
// when it is a fire-and-forget widget and auto-focus is enabled
func (m *Manager) activateSelected(ev terminal.Event) {
	e, ok := m.reg.get(m.selected)
	if !ok || !e.selectable || !e.visible {
		return
	}
	if e.firesImmediately && m.opts.AutoFocusButtons {
		e.widget.HandleKey(ev)
		return
	}
	m.mode = ModeFocus
	m.focus = m.selected
}

// tick forwards a refresh timeout to the top popup for animation
func (m *Manager) tick() {
	m.reapStoppedLoading()
	if len(m.popups) == 0 {
		return
	}
	if t, ok := m.popups[len(m.popups)-1].(popupTicker); ok {
		t.Tick()
	}
}

// reapStoppedLoading closes a loading popup whose Stop was called from
// another goroutine. The pop itself happens here, on the loop thread
func (m *Manager) reapStoppedLoading() {
	for len(m.popups) > 0 {
		lp, ok := m.popups[len(m.popups)-1].(*LoadingPopup)
		if !ok || !lp.stopped() {
			return
		}
		m.ClosePopup()
		if lp.OnDone != nil {
			lp.OnDone()
		}
	}
}

// Draw renders every visible widget and the popup stack, then flushes
func (m *Manager) Draw() {
	m.scr.Clear()
	m.scr.HideCursor()

	for _, h := range m.reg.order {
		e, ok := m.reg.get(h)
		if !ok || !e.visible {
			continue
		}
		p := e.placement
		rect := m.grid.CellRect(p.Row, p.Col, p.RowSpan, p.ColSpan, p.PadX, p.PadY)
		if rect.Width() < 1 || rect.Height() < 1 {
			continue
		}
		f := &Frame{
			Canvas:      NewCanvas(m.scr, rect),
			Rules:       e.rules,
			Color:       m.opts.Theme.Default,
			Selected:    h == m.selected,
			Focused:     m.mode == ModeFocus && h == m.focus,
			Border:      m.opts.Border,
			BorderColor: m.opts.Theme.Border,
			TitleColor:  m.opts.Theme.Title,
			CursorColor: m.opts.Theme.Cursor,
		}
		e.widget.Draw(f)
	}

	if len(m.popups) > 0 {
		w, h := m.scr.Size()
		root := NewCanvas(m.scr, grid.Rect{StopX: w, StopY: h})
		for _, p := range m.popups {
			pw, ph := popupSize(p, w-2, h-2)
			p.Draw(root.Center(pw, ph), m.opts.Theme)
		}
	}

	m.scr.Show()
}

// Stop requests event-loop termination
func (m *Manager) Stop() {
	m.quit = true
}

// Run drives the event loop: draw, block on input (with the refresh
// timeout if configured), dispatch, repeat. Events are processed
// strictly in arrival order
func (m *Manager) Run() {
	for !m.quit {
		m.Draw()
		ev := m.scr.PollEvent(m.opts.RefreshInterval)
		m.HandleEvent(ev)
	}
}
