package input

import "stardrift/internal/input/key"

// RawKind discriminates device-level occurrences before translation.
type RawKind int

const (
	// RawKeyDown is a device key press.
	RawKeyDown RawKind = iota
	// RawKeyUp is a device key release.
	RawKeyUp
	// RawMouseMove is device pointer motion.
	RawMouseMove
	// RawMouseButton is a device button transition.
	RawMouseButton
	// RawQuit is a platform quit request (window close, SIGTERM).
	RawQuit
)

// Button identifies a physical mouse button.
type Button int

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = iota
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonWheelUp is one wheel notch away from the user.
	ButtonWheelUp
	// ButtonWheelDown is one wheel notch toward the user.
	ButtonWheelDown
)

// RawEvent is a single device occurrence as reported by an
// EventSource, already translated into the engine key-code space but
// not yet normalized into an Event.
type RawEvent struct {
	Kind   RawKind
	Code   key.Code
	Button Button
	Up     bool
	X, Y   int
}

// EventSource is the platform event provider. Drain returns every
// event that arrived since the previous call without blocking; the
// dispatcher calls it exactly once per frame.
type EventSource interface {
	Drain() []RawEvent
}

// PointerController hides and shows the platform pointer. Sources that
// also control the pointer (the terminal source does) implement it;
// the dispatcher's fade logic is a no-op otherwise.
type PointerController interface {
	ShowPointer()
	HidePointer()
}

// mapButton converts a physical button transition to the event-model
// mouse state. A wheel press edge is deliberately unmapped so each
// scroll notch produces exactly one event, on the release edge.
func mapButton(b Button, up bool) (MouseState, bool) {
	switch b {
	case ButtonLeft:
		if up {
			return MouseLeftUp, true
		}
		return MouseLeftDown, true
	case ButtonMiddle:
		if up {
			return MouseMiddleUp, true
		}
		return MouseMiddleDown, true
	case ButtonRight:
		if up {
			return MouseRightUp, true
		}
		return MouseRightDown, true
	case ButtonWheelUp:
		if up {
			return MouseWheelUp, true
		}
	case ButtonWheelDown:
		if up {
			return MouseWheelDown, true
		}
	}
	return 0, false
}
