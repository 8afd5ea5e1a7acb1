// Package ui tracks modal interface widgets and their claim on input.
//
// The widget toolkit's layout and rendering are outside this core;
// what matters here is the input contract: while any modal widget is
// up, the UI has first claim on the entire event batch, so a keypress
// aimed at a dialog can never also fire a script binding.
package ui

import "stardrift/internal/input"

// Widget is a modal interface element.
type Widget interface {
	Name() string
}

// UI is the modal widget stack and the first consumer in the chain.
type UI struct {
	widgets []Widget
}

// New creates an empty UI.
func New() *UI {
	return &UI{}
}

// Push makes w the topmost modal widget.
func (u *UI) Push(w Widget) {
	u.widgets = append(u.widgets, w)
}

// Pop removes the topmost widget. Returns false when the stack is
// empty.
func (u *UI) Pop() bool {
	if len(u.widgets) == 0 {
		return false
	}
	u.widgets = u.widgets[:len(u.widgets)-1]
	return true
}

// Active reports whether any widget is up. The dispatcher suppresses
// pointer fade while true.
func (u *UI) Active() bool {
	return len(u.widgets) > 0
}

// Top returns the topmost widget, or nil.
func (u *UI) Top() Widget {
	if len(u.widgets) == 0 {
		return nil
	}
	return u.widgets[len(u.widgets)-1]
}

// HandleInput claims the whole batch while a modal widget is up.
func (u *UI) HandleInput(events []input.Event) []input.Event {
	if u.Active() {
		return nil
	}
	return events
}
