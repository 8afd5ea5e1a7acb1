package key

// shiftedDigits maps '0'..'9' to their shifted symbols on a US layout.
const shiftedDigits = ")!@#$%^&*("

// shiftedPunct maps punctuation codes to their shifted characters.
var shiftedPunct = map[Code]Code{
	'\'': '"',
	';':  ':',
	'`':  '~',
	'-':  '_',
	'/':  '?',
	',':  '<',
	'.':  '>',
	'\\': '|',
	'[':  '{',
	']':  '}',
	'=':  '+',
}

// Typed returns the character code synthesized for a down edge of c
// with the given shift state. Enter and keypad Enter always produce a
// newline regardless of shift. Codes with no shifted form pass through
// unchanged.
//
// TODO: the shifted tables assume a US layout; keyboard-independent
// translation needs layout data from the platform.
func Typed(c Code, shift bool) Code {
	if c == Enter || c == KeypadEnter {
		return '\n'
	}
	if !shift {
		return c
	}
	switch {
	case c >= 'a' && c <= 'z':
		return c - 32
	case c >= '0' && c <= '9':
		return Code(shiftedDigits[c-'0'])
	}
	if s, ok := shiftedPunct[c]; ok {
		return s
	}
	return c
}
