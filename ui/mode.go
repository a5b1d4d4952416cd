package ui

// ModeKind identifies the top-level input mode
type ModeKind uint8

const (
	// ModeOverview is the default mode: arrow keys move selection
	ModeOverview ModeKind = iota
	// ModeFocus routes all non-escape input to one widget
	ModeFocus
	// ModePopup routes all input to the top of the popup stack
	ModePopup
)

// String returns a human-readable mode name
func (k ModeKind) String() string {
	switch k {
	case ModeOverview:
		return "Overview"
	case ModeFocus:
		return "Focus"
	case ModePopup:
		return "Popup"
	default:
		return "Unknown"
	}
}

// Mode is a snapshot of the controller state
type Mode struct {
	Kind ModeKind

	// Focus is the focused widget while Kind == ModeFocus
	Focus Handle

	// PopupDepth is the popup stack depth while Kind == ModePopup
	PopupDepth int
}

// maxPopupDepth bounds the popup stack: one outer popup plus at most
// one nested confirmation
const maxPopupDepth = 2
