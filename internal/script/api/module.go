// Package api implements the Stardrift host-function surface scripts
// see. Each module installs its functions into the shared Stardrift
// global table; the Context carries the engine collaborators the
// functions reach.
package api

import (
	lua "github.com/yuin/gopher-lua"

	"stardrift/internal/camera"
	"stardrift/internal/input"
	"stardrift/internal/logging"
	"stardrift/internal/options"
	"stardrift/internal/script"
	"stardrift/internal/sim"
	"stardrift/internal/sprite"
	"stardrift/internal/world"
)

// TableName is the global table holding every host function.
const TableName = "Stardrift"

// ConsoleSink receives script output lines. Satisfied by the console.
type ConsoleSink interface {
	InsertResult(s string)
}

// AlertSink posts HUD alerts. Satisfied by the HUD.
type AlertSink interface {
	AddAlert(format string, args ...any)
}

// Context provides access to engine state for API modules. Everything
// here is frame-thread owned; host functions run on the frame thread.
type Context struct {
	Log      *logging.Logger
	Sprites  *sprite.Manager
	World    *world.World
	Camera   *camera.Camera
	Sim      *sim.Simulation
	Options  *options.Store
	Console  ConsoleSink
	HUD      AlertSink
	Bindings *input.Bindings
}

// Default returns the standard module set wired to ctx, in
// registration order.
func Default(ctx *Context) []script.Module {
	return []script.Module{
		NewEngineModule(ctx),
		NewInputModule(ctx),
		NewCameraModule(ctx),
		NewSpriteModule(ctx),
		NewInfoModule(ctx),
	}
}

// hostTable returns the Stardrift global table, creating it on first
// use so modules can register in any order.
func hostTable(L *lua.LState) *lua.LTable {
	if t, ok := L.GetGlobal(TableName).(*lua.LTable); ok {
		return t
	}
	t := L.NewTable()
	L.SetGlobal(TableName, t)
	return t
}

// Table field readers for the set-info calls, which take a table of
// named fields. A missing or mistyped field raises a script error.

func getStringField(L *lua.LState, t *lua.LTable, name string) string {
	v := L.GetField(t, name)
	s, ok := v.(lua.LString)
	if !ok {
		L.RaiseError("field %q: string expected, got %s", name, v.Type())
		return ""
	}
	return string(s)
}

func getIntField(L *lua.LState, t *lua.LTable, name string) int {
	return int(getNumField(L, t, name))
}

func getNumField(L *lua.LState, t *lua.LTable, name string) float64 {
	v := L.GetField(t, name)
	n, ok := v.(lua.LNumber)
	if !ok {
		L.RaiseError("field %q: number expected, got %s", name, v.Type())
		return 0
	}
	return float64(n)
}

func getBoolField(L *lua.LState, t *lua.LTable, name string) bool {
	switch v := L.GetField(t, name).(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return v != 0
	default:
		L.RaiseError("field %q: boolean expected, got %s", name, L.GetField(t, name).Type())
		return false
	}
}

// pushNames converts a name list to a Lua array table.
func pushNames(L *lua.LState, names []string) *lua.LTable {
	t := L.NewTable()
	for _, name := range names {
		t.Append(lua.LString(name))
	}
	return t
}
