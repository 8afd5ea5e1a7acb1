package key

// State is the discriminated state of a key event. A held key and a
// down edge for the same code are different events and may carry
// different script bindings.
type State int

const (
	// StateUp is a key-release edge.
	StateUp State = iota
	// StateDown is a key-press edge.
	StateDown
	// StatePressed is re-emitted every frame while the key is held.
	StatePressed
	// StateTyped carries the character synthesized from a down edge.
	StateTyped
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUp:
		return "up"
	case StateDown:
		return "down"
	case StatePressed:
		return "pressed"
	case StateTyped:
		return "typed"
	default:
		return "unknown"
	}
}
