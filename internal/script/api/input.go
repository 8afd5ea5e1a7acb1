package api

import (
	lua "github.com/yuin/gopher-lua"

	"stardrift/internal/input"
	"stardrift/internal/input/key"
)

// InputModule implements the key binding host functions. Scripts bind
// a key-and-state pair to a command string; the dispatcher runs the
// command when the matching event survives the consumer chain.
type InputModule struct {
	ctx *Context
}

// NewInputModule creates a new input module.
func NewInputModule(ctx *Context) *InputModule {
	return &InputModule{ctx: ctx}
}

// Name returns the module name.
func (m *InputModule) Name() string {
	return "input"
}

// Register registers the module and the key state constants into the
// Lua state.
func (m *InputModule) Register(L *lua.LState) error {
	t := hostTable(L)

	L.SetField(t, "RegisterKey", L.NewFunction(m.registerKey))
	L.SetField(t, "UnRegisterKey", L.NewFunction(m.unregisterKey))

	L.SetField(t, "KEYUP", lua.LNumber(key.StateUp))
	L.SetField(t, "KEYDOWN", lua.LNumber(key.StateDown))
	L.SetField(t, "KEYPRESSED", lua.LNumber(key.StatePressed))
	L.SetField(t, "KEYTYPED", lua.LNumber(key.StateTyped))

	return nil
}

// RegisterKey(key, state, command)
// Binds a key event to a command string. The key is a numeric code or
// a key name; the state is one of the KEY* constants or a state name.
// Rebinding a pair replaces the previous command.
func (m *InputModule) registerKey(L *lua.LState) int {
	if n := L.GetTop(); n != 3 {
		L.RaiseError("Got %d arguments expected 3 (Key, State, Command)", n)
		return 0
	}
	code := m.checkKey(L, 1)
	state := m.checkState(L, 2)
	command := L.CheckString(3)
	m.ctx.Bindings.Register(input.NewKeyEvent(state, code), command)
	return 0
}

// UnRegisterKey(key, state)
// Removes the binding for a key event. Unbinding an unbound pair is a
// no-op.
func (m *InputModule) unregisterKey(L *lua.LState) int {
	if n := L.GetTop(); n != 2 {
		L.RaiseError("Got %d arguments expected 2 (Key, State)", n)
		return 0
	}
	code := m.checkKey(L, 1)
	state := m.checkState(L, 2)
	m.ctx.Bindings.Unregister(input.NewKeyEvent(state, code))
	return 0
}

func (m *InputModule) checkKey(L *lua.LState, idx int) key.Code {
	switch v := L.Get(idx).(type) {
	case lua.LNumber:
		code := key.Code(v)
		if !code.Valid() {
			L.ArgError(idx, "key code out of range")
			return key.None
		}
		return code
	case lua.LString:
		code := key.Lookup(string(v))
		if code == key.None {
			L.ArgError(idx, "unknown key name "+string(v))
			return key.None
		}
		return code
	default:
		L.ArgError(idx, "key code or key name expected")
		return key.None
	}
}

func (m *InputModule) checkState(L *lua.LState, idx int) key.State {
	switch v := L.Get(idx).(type) {
	case lua.LNumber:
		s := key.State(v)
		switch s {
		case key.StateUp, key.StateDown, key.StatePressed, key.StateTyped:
			return s
		}
		L.ArgError(idx, "unknown key state")
		return key.StateUp
	case lua.LString:
		for _, s := range []key.State{key.StateUp, key.StateDown, key.StatePressed, key.StateTyped} {
			if s.String() == string(v) {
				return s
			}
		}
		L.ArgError(idx, "unknown key state "+string(v))
		return key.StateUp
	default:
		L.ArgError(idx, "key state expected")
		return key.StateUp
	}
}
