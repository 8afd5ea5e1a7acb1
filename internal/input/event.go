package input

import (
	"fmt"

	"stardrift/internal/input/key"
)

// Kind discriminates keyboard events from mouse events.
type Kind int

const (
	// KindKey is a keyboard event.
	KindKey Kind = iota
	// KindMouse is a mouse event.
	KindMouse
)

// MouseState is the discriminated state of a mouse event.
type MouseState int

const (
	// MouseMove is pointer motion.
	MouseMove MouseState = iota
	// MouseLeftUp is a left button release.
	MouseLeftUp
	// MouseLeftDown is a left button press.
	MouseLeftDown
	// MouseMiddleUp is a middle button release.
	MouseMiddleUp
	// MouseMiddleDown is a middle button press.
	MouseMiddleDown
	// MouseRightUp is a right button release.
	MouseRightUp
	// MouseRightDown is a right button press.
	MouseRightDown
	// MouseWheelUp is one wheel notch away from the user.
	MouseWheelUp
	// MouseWheelDown is one wheel notch toward the user.
	MouseWheelDown
)

// String returns the string representation of the mouse state.
func (s MouseState) String() string {
	switch s {
	case MouseMove:
		return "move"
	case MouseLeftUp:
		return "left-up"
	case MouseLeftDown:
		return "left-down"
	case MouseMiddleUp:
		return "middle-up"
	case MouseMiddleDown:
		return "middle-down"
	case MouseRightUp:
		return "right-up"
	case MouseRightDown:
		return "right-down"
	case MouseWheelUp:
		return "wheel-up"
	case MouseWheelDown:
		return "wheel-down"
	default:
		return "unknown"
	}
}

// Event is a normalized keyboard or mouse occurrence. Events are
// immutable values with full equality, usable directly as map keys.
// Fields of the inactive variant are zero.
type Event struct {
	Kind Kind

	// Key variant.
	Code     key.Code
	KeyState key.State

	// Mouse variant.
	Mouse MouseState
	X, Y  int
}

// NewKeyEvent constructs a keyboard event.
func NewKeyEvent(state key.State, code key.Code) Event {
	return Event{Kind: KindKey, Code: code, KeyState: state}
}

// NewMouseEvent constructs a mouse event.
func NewMouseEvent(state MouseState, x, y int) Event {
	return Event{Kind: KindMouse, Mouse: state, X: x, Y: y}
}

// Compare defines a total order over events: discriminant first, then
// the variant fields. It exists so event sets can be stored
// deterministically; equality via == agrees with Compare == 0.
func (e Event) Compare(o Event) int {
	if e.Kind != o.Kind {
		return int(e.Kind) - int(o.Kind)
	}
	if e.Kind == KindKey {
		if e.KeyState != o.KeyState {
			return int(e.KeyState) - int(o.KeyState)
		}
		return int(e.Code) - int(o.Code)
	}
	if e.Mouse != o.Mouse {
		return int(e.Mouse) - int(o.Mouse)
	}
	if e.X != o.X {
		return e.X - o.X
	}
	return e.Y - o.Y
}

// String returns a compact readable form, e.g. "KEY(a down)" or
// "MOUSE(10,20 left-up)".
func (e Event) String() string {
	if e.Kind == KindKey {
		return fmt.Sprintf("KEY(%s %s)", e.Code.String(), e.KeyState.String())
	}
	return fmt.Sprintf("MOUSE(%d,%d %s)", e.X, e.Y, e.Mouse.String())
}
