package ui

import "github.com/lixenwraith/gridtui/terminal"

// Popup is a modal overlay that exclusively owns key input until it
// reports itself closed
type Popup interface {
	// Draw renders the popup into a centered canvas using the
	// manager's theme
	Draw(c Canvas, th Theme)

	// HandleKey processes one key event
	// Returns true when the popup should close
	HandleKey(ev terminal.Event) bool
}

// popupSizer lets a popup choose its overlay size within the screen
type popupSizer interface {
	PopupSize(maxW, maxH int) (w, h int)
}

// popupTicker receives refresh-timeout ticks for animation
type popupTicker interface {
	Tick()
}

// OpenMessage shows a message popup closed by any key
func (m *Manager) OpenMessage(title, message string) {
	m.OpenPopup(&MessagePopup{Title: title, Message: message})
}

// OpenConfirm shows a yes/no popup; nests onto an existing popup
func (m *Manager) OpenConfirm(title, message string, onResult func(yes bool)) {
	m.OpenPopup(&ConfirmPopup{Title: title, Message: message, FocusYes: true, OnResult: onResult})
}

// OpenInput shows a single-line editor popup
func (m *Manager) OpenInput(title, prompt, initial string, onSubmit func(text string)) {
	m.OpenPopup(NewInputPopup(title, prompt, initial, onSubmit))
}

// OpenLoading shows a modal loading popup and returns it so a
// background worker can Stop it when done
func (m *Manager) OpenLoading(message string) *LoadingPopup {
	p := NewLoadingPopup(message)
	m.OpenPopup(p)
	return p
}

// popupSize resolves a popup's overlay dimensions
func popupSize(p Popup, maxW, maxH int) (int, int) {
	if s, ok := p.(popupSizer); ok {
		w, h := s.PopupSize(maxW, maxH)
		if w > maxW {
			w = maxW
		}
		if h > maxH {
			h = maxH
		}
		return w, h
	}
	w := maxW * 3 / 5
	if w < 20 {
		w = 20
	}
	h := maxH / 3
	if h < 5 {
		h = 5
	}
	if w > maxW {
		w = maxW
	}
	if h > maxH {
		h = maxH
	}
	return w, h
}
