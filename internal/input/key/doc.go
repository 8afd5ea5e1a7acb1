// Package key defines the engine's key-code space and key states.
//
// Codes for printable keys are their ASCII rune values, so 'a' and '1'
// are valid Codes directly. Special keys (Escape, Enter, arrows, the
// shift modifiers) occupy codes above the printable range. The whole
// space is bounded by MaxCode so a held-key table can be a fixed-size
// array.
//
// The package also owns the shift-aware typed-character mapping used by
// the input dispatcher to synthesize "typed" events from key-down edges.
package key
