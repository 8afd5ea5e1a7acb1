package api

import (
	lua "github.com/yuin/gopher-lua"
)

// EngineModule implements the core engine host functions: console
// echo, pause control, and the options store.
type EngineModule struct {
	ctx *Context
}

// NewEngineModule creates a new engine module.
func NewEngineModule(ctx *Context) *EngineModule {
	return &EngineModule{ctx: ctx}
}

// Name returns the module name.
func (m *EngineModule) Name() string {
	return "engine"
}

// Register registers the module into the Lua state.
func (m *EngineModule) Register(L *lua.LState) error {
	t := hostTable(L)

	L.SetField(t, "echo", L.NewFunction(m.echo))
	L.SetField(t, "addAlert", L.NewFunction(m.addAlert))
	L.SetField(t, "pause", L.NewFunction(m.pause))
	L.SetField(t, "unpause", L.NewFunction(m.unpause))
	L.SetField(t, "ispaused", L.NewFunction(m.ispaused))
	L.SetField(t, "getoption", L.NewFunction(m.getoption))
	L.SetField(t, "setoption", L.NewFunction(m.setoption))

	return nil
}

// echo(message)
// Appends a line to the console output buffer.
func (m *EngineModule) echo(L *lua.LState) int {
	msg := L.CheckString(1)
	m.ctx.Console.InsertResult(msg)
	return 0
}

// addAlert(message)
// Posts a timed HUD alert.
func (m *EngineModule) addAlert(L *lua.LState) int {
	msg := L.CheckString(1)
	m.ctx.HUD.AddAlert("%s", msg)
	return 0
}

// pause()
// Stops simulation updates.
func (m *EngineModule) pause(L *lua.LState) int {
	m.ctx.Sim.Pause()
	return 0
}

// unpause()
// Resumes simulation updates.
func (m *EngineModule) unpause(L *lua.LState) int {
	m.ctx.Sim.Unpause()
	return 0
}

// ispaused() -> number
// Returns 1 when the simulation is paused, 0 otherwise.
func (m *EngineModule) ispaused(L *lua.LState) int {
	if m.ctx.Sim.IsPaused() {
		L.Push(lua.LNumber(1))
	} else {
		L.Push(lua.LNumber(0))
	}
	return 1
}

// getoption(path) -> string
// Returns the option value at a slash path, or "" when unset.
func (m *EngineModule) getoption(L *lua.LState) int {
	path := L.CheckString(1)
	L.Push(lua.LString(m.ctx.Options.Get(path)))
	return 1
}

// setoption(path, value)
// Sets the option at a slash path. Numbers are accepted and stored in
// their string form.
func (m *EngineModule) setoption(L *lua.LState) int {
	path := L.CheckString(1)
	value := L.ToStringMeta(L.CheckAny(2)).String()
	if err := m.ctx.Options.Set(path, value); err != nil {
		L.RaiseError("setoption: %v", err)
		return 0
	}
	return 0
}
