package ui

import (
	"sync/atomic"

	"github.com/lixenwraith/gridtui/terminal"
)

// popupFrame draws the shared popup chrome and returns the content canvas
func popupFrame(c Canvas, th Theme, title, hint string) Canvas {
	c.Fill(th.Popup)
	c.Box(BorderDouble, th.Border, false)
	c.Title(title, th.Title)
	if hint != "" && c.Height() >= 2 {
		c.Text(2, c.Height()-1, " "+hint+" ", th.Hint, false)
	}
	return c.Inner()
}

// MessagePopup shows a text message until any key is pressed
type MessagePopup struct {
	Title   string
	Message string
}

func (p *MessagePopup) Draw(c Canvas, th Theme) {
	inner := popupFrame(c, th, p.Title, "any key closes")
	for i, line := range wrapLines(p.Message, inner.Width()) {
		if i >= inner.Height() {
			break
		}
		inner.Text(0, i, line, th.Popup, false)
	}
}

func (p *MessagePopup) HandleKey(ev terminal.Event) bool {
	return true
}

// ConfirmPopup asks a yes/no question
// Used both standalone and as the nested confirmation of another popup
type ConfirmPopup struct {
	Title    string
	Message  string
	FocusYes bool

	// OnResult receives the outcome before the popup closes. Optional
	OnResult func(yes bool)
}

func (p *ConfirmPopup) Draw(c Canvas, th Theme) {
	inner := popupFrame(c, th, p.Title, "y/n")
	lines := wrapLines(p.Message, inner.Width())
	for i, line := range lines {
		if i >= inner.Height()-2 {
			break
		}
		inner.Text(0, i, line, th.Popup, false)
	}

	y := inner.Height() - 1
	yes, no := "  Yes  ", "  No  "
	x := (inner.Width() - len(yes) - len(no) - 2) / 2
	if x < 0 {
		x = 0
	}
	yesPair, noPair := th.Popup, th.Popup
	if p.FocusYes {
		yesPair = th.Cursor
	} else {
		noPair = th.Cursor
	}
	x += inner.Text(x, y, yes, yesPair, p.FocusYes)
	x += 2
	inner.Text(x, y, no, noPair, !p.FocusYes)
}

func (p *ConfirmPopup) HandleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyLeft, terminal.KeyRight, terminal.KeyTab:
		p.FocusYes = !p.FocusYes
		return false
	case terminal.KeyEnter:
		p.finish(p.FocusYes)
		return true
	case terminal.KeyEscape:
		p.finish(false)
		return true
	case terminal.KeyRune:
		switch ev.Rune {
		case 'y', 'Y':
			p.finish(true)
			return true
		case 'n', 'N':
			p.finish(false)
			return true
		}
	}
	return false
}

func (p *ConfirmPopup) finish(yes bool) {
	if p.OnResult != nil {
		p.OnResult(yes)
	}
}

// InputPopup edits a single line of text
type InputPopup struct {
	Title  string
	Prompt string

	buf    []rune
	cursor int

	// OnSubmit receives the entered text when Enter closes the popup.
	// Escape closes without calling it. Optional
	OnSubmit func(text string)
}

// NewInputPopup creates an input popup with initial text
func NewInputPopup(title, prompt, initial string, onSubmit func(string)) *InputPopup {
	buf := []rune(initial)
	return &InputPopup{Title: title, Prompt: prompt, buf: buf, cursor: len(buf), OnSubmit: onSubmit}
}

// Text returns the current edit buffer
func (p *InputPopup) Text() string { return string(p.buf) }

func (p *InputPopup) Draw(c Canvas, th Theme) {
	inner := popupFrame(c, th, p.Title, "enter accepts, esc cancels")
	inner.Text(0, 0, p.Prompt, th.Popup, false)

	y := 1
	if inner.Height() < 2 {
		y = 0
	}
	x := inner.Text(0, y, "> ", th.Hint, false)
	x += inner.Text(x, y, string(p.buf[:p.cursor]), th.Popup, false)
	cursorCh := " "
	if p.cursor < len(p.buf) {
		cursorCh = string(p.buf[p.cursor])
	}
	inner.SetCell(x, y, cursorCh, th.Cursor, false)
	if p.cursor < len(p.buf) {
		inner.Text(x+1, y, string(p.buf[p.cursor+1:]), th.Popup, false)
	}
}

func (p *InputPopup) HandleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyEnter:
		if p.OnSubmit != nil {
			p.OnSubmit(string(p.buf))
		}
		return true
	case terminal.KeyEscape:
		return true
	case terminal.KeyLeft:
		if p.cursor > 0 {
			p.cursor--
		}
	case terminal.KeyRight:
		if p.cursor < len(p.buf) {
			p.cursor++
		}
	case terminal.KeyHome:
		p.cursor = 0
	case terminal.KeyEnd:
		p.cursor = len(p.buf)
	case terminal.KeyBackspace:
		if p.cursor > 0 {
			p.buf = append(p.buf[:p.cursor-1], p.buf[p.cursor:]...)
			p.cursor--
		}
	case terminal.KeyDelete:
		if p.cursor < len(p.buf) {
			p.buf = append(p.buf[:p.cursor], p.buf[p.cursor+1:]...)
		}
	case terminal.KeyRune, terminal.KeySpace:
		p.buf = append(p.buf[:p.cursor], append([]rune{ev.Rune}, p.buf[p.cursor:]...)...)
		p.cursor++
	}
	return false
}

// loadingFrames is the spinner animation cycle
var loadingFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// LoadingPopup blocks all input until Stop is called
// Stop is safe to call from a background goroutine; the popup is
// reaped on the loop thread at the next event or refresh tick
type LoadingPopup struct {
	Message string

	// OnDone runs on the event-loop goroutine when the stopped popup is
	// reaped. Workers publish their results to loop-owned state here
	// instead of mutating it from their own goroutine. Optional
	OnDone func()

	frame int
	done  atomic.Bool
}

// NewLoadingPopup creates a loading popup
func NewLoadingPopup(message string) *LoadingPopup {
	return &LoadingPopup{Message: message}
}

// Stop requests the popup to close
func (p *LoadingPopup) Stop() {
	p.done.Store(true)
}

func (p *LoadingPopup) stopped() bool {
	return p.done.Load()
}

// Tick advances the spinner on refresh timeouts
func (p *LoadingPopup) Tick() {
	p.frame = (p.frame + 1) % len(loadingFrames)
}

func (p *LoadingPopup) Draw(c Canvas, th Theme) {
	inner := popupFrame(c, th, "", "")
	y := inner.Height() / 2
	text := string(loadingFrames[p.frame]) + " " + p.Message
	x := (inner.Width() - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	inner.Text(x, y, text, th.Popup, false)
}

// HandleKey swallows everything: only Stop closes a loading popup
func (p *LoadingPopup) HandleKey(ev terminal.Event) bool {
	return false
}

func (p *LoadingPopup) PopupSize(maxW, maxH int) (int, int) {
	w := maxW / 2
	if w < 20 {
		w = 20
	}
	return w, 5
}

// wrapLines word-wraps text to a width, one entry per output row
func wrapLines(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	var word []rune

	flushWord := func() {
		if len(word) == 0 {
			return
		}
		need := len(word)
		if len(line) > 0 {
			need++
		}
		if len(line)+need > width && len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, word...)
		word = word[:0]
	}

	for _, r := range s {
		switch r {
		case ' ':
			flushWord()
		case '\n':
			flushWord()
			lines = append(lines, string(line))
			line = line[:0]
		default:
			word = append(word, r)
		}
	}
	flushWord()
	lines = append(lines, string(line))
	return lines
}
