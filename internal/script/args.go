package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Arg is a tagged argument value for Call. The three variants cover
// everything the engine passes into scripts by name: integers,
// doubles, and strings.
type Arg struct {
	kind argKind
	n    int
	f    float64
	s    string
}

type argKind int

const (
	argInt argKind = iota
	argNumber
	argString
)

// Int wraps an integer argument.
func Int(n int) Arg {
	return Arg{kind: argInt, n: n}
}

// Number wraps a floating-point argument.
func Number(f float64) Arg {
	return Arg{kind: argNumber, f: f}
}

// Str wraps a string argument.
func Str(s string) Arg {
	return Arg{kind: argString, s: s}
}

func (a Arg) lvalue() lua.LValue {
	switch a.kind {
	case argInt:
		return lua.LNumber(a.n)
	case argNumber:
		return lua.LNumber(a.f)
	default:
		return lua.LString(a.s)
	}
}

// Results holds the values a Call returned. The typed getters fail
// hard on a type mismatch: this path carries engine-internal calls,
// where a wrong result type is a programming error, not user input.
type Results struct {
	vals []lua.LValue
}

// Len returns the number of returned values.
func (r Results) Len() int {
	return len(r.vals)
}

// Int returns result i as an integer.
func (r Results) Int(i int) (int, error) {
	v, err := r.number(i)
	return int(v), err
}

// Number returns result i as a float.
func (r Results) Number(i int) (float64, error) {
	return r.number(i)
}

func (r Results) number(i int) (float64, error) {
	if i < 0 || i >= len(r.vals) {
		return 0, fmt.Errorf("result %d: only %d results", i, len(r.vals))
	}
	n, ok := r.vals[i].(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("result %d: expected number, got %s", i, r.vals[i].Type())
	}
	return float64(n), nil
}

// String returns result i as a string.
func (r Results) String(i int) (string, error) {
	if i < 0 || i >= len(r.vals) {
		return "", fmt.Errorf("result %d: only %d results", i, len(r.vals))
	}
	s, ok := r.vals[i].(lua.LString)
	if !ok {
		return "", fmt.Errorf("result %d: expected string, got %s", i, r.vals[i].Type())
	}
	return string(s), nil
}

// Bool returns result i as a boolean, accepting Lua's number-as-bool
// convention (0 is false).
func (r Results) Bool(i int) (bool, error) {
	if i < 0 || i >= len(r.vals) {
		return false, fmt.Errorf("result %d: only %d results", i, len(r.vals))
	}
	switch v := r.vals[i].(type) {
	case lua.LBool:
		return bool(v), nil
	case lua.LNumber:
		return v != 0, nil
	default:
		return false, fmt.Errorf("result %d: expected boolean, got %s", i, r.vals[i].Type())
	}
}
