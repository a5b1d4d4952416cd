package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventTimeout // Refresh interval elapsed with no input
	EventClosed  // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int // For EventResize
	Height    int // For EventResize
}

// KeyEvent builds a key press event
func KeyEvent(k Key, r rune) Event {
	return Event{Type: EventKey, Key: k, Rune: r}
}

// RuneEvent builds a printable character event
func RuneEvent(r rune) Event {
	if r == ' ' {
		return Event{Type: EventKey, Key: KeySpace, Rune: r}
	}
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ResizeEvent builds a terminal resize event
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
