package key

import "fmt"

// Code identifies a key in the engine's code space. Printable keys use
// their ASCII rune values; special keys start at specialBase.
type Code int

// Printable key aliases used throughout the engine.
const (
	Backquote Code = '`'
	Space     Code = ' '
)

const specialBase = 0x100

// Special keys.
const (
	Escape Code = specialBase + iota
	Enter
	KeypadEnter
	Backspace
	Tab
	LeftShift
	RightShift
	LeftCtrl
	RightCtrl
	LeftAlt
	RightAlt
	Up
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	Insert
	Delete
	None Code = 0
)

// MaxCode bounds the code space. Held-key tables are arrays of this
// size indexed by Code.
const MaxCode = 0x140

// Valid reports whether the code falls inside the engine code space.
func (c Code) Valid() bool {
	return c > 0 && c < MaxCode
}

// Printable reports whether the code is a printable ASCII key.
func (c Code) Printable() bool {
	return c >= ' ' && c <= '~'
}

// String returns a readable name for the code.
func (c Code) String() string {
	if c.Printable() {
		return string(rune(c))
	}
	if name, ok := specialNames[c]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(c))
}

var specialNames = map[Code]string{
	Escape:      "escape",
	Enter:       "enter",
	KeypadEnter: "kp-enter",
	Backspace:   "backspace",
	Tab:         "tab",
	LeftShift:   "lshift",
	RightShift:  "rshift",
	LeftCtrl:    "lctrl",
	RightCtrl:   "rctrl",
	LeftAlt:     "lalt",
	RightAlt:    "ralt",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	Home:        "home",
	End:         "end",
	PageUp:      "pgup",
	PageDown:    "pgdn",
	Insert:      "insert",
	Delete:      "delete",
}

// Lookup resolves a key name to its Code. Single printable characters
// resolve to themselves; special keys resolve by the names returned
// from Code.String. The zero Code is returned for unknown names.
func Lookup(name string) Code {
	if len(name) == 1 {
		c := Code(name[0])
		if c.Printable() {
			return c
		}
	}
	for code, n := range specialNames {
		if n == name {
			return code
		}
	}
	return None
}
