package api

import (
	lua "github.com/yuin/gopher-lua"

	"stardrift/internal/sprite"
)

// CameraModule implements the camera host functions.
type CameraModule struct {
	ctx *Context
}

// NewCameraModule creates a new camera module.
func NewCameraModule(ctx *Context) *CameraModule {
	return &CameraModule{ctx: ctx}
}

// Name returns the module name.
func (m *CameraModule) Name() string {
	return "camera"
}

// Register registers the module into the Lua state.
func (m *CameraModule) Register(L *lua.LState) error {
	t := hostTable(L)

	L.SetField(t, "getCamera", L.NewFunction(m.getCamera))
	L.SetField(t, "moveCamera", L.NewFunction(m.moveCamera))
	L.SetField(t, "focusCamera", L.NewFunction(m.focusCamera))
	L.SetField(t, "shakeCamera", L.NewFunction(m.shakeCamera))

	return nil
}

// getCamera() -> x, y
// Returns the camera focus coordinate.
func (m *CameraModule) getCamera(L *lua.LState) int {
	p := m.ctx.Camera.FocusCoordinate()
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	return 2
}

// moveCamera(dx, dy)
// Shifts the camera focus, detaching any sprite focus.
func (m *CameraModule) moveCamera(L *lua.LState) int {
	dx := float64(L.CheckNumber(1))
	dy := float64(L.CheckNumber(2))
	m.ctx.Camera.Move(dx, dy)
	return 0
}

// focusCamera(spriteID) or focusCamera(x, y)
// Attaches the camera to a sprite, or points it at a fixed coordinate.
// Attaching to an unknown sprite ID is an error.
func (m *CameraModule) focusCamera(L *lua.LState) int {
	if L.GetTop() >= 2 {
		x := float64(L.CheckNumber(1))
		y := float64(L.CheckNumber(2))
		m.ctx.Camera.Focus(x, y)
		return 0
	}
	id := L.CheckInt(1)
	if !m.ctx.Camera.FocusSprite(id) {
		L.RaiseError("focusCamera: no such sprite ID %d", id)
		return 0
	}
	return 0
}

// shakeCamera(magnitude, duration, x, y)
// Starts a camera shake centered on an epicenter.
func (m *CameraModule) shakeCamera(L *lua.LState) int {
	magnitude := L.CheckInt(1)
	duration := L.CheckInt(2)
	x := float64(L.CheckNumber(3))
	y := float64(L.CheckNumber(4))
	m.ctx.Camera.Shake(magnitude, duration, sprite.Point{X: x, Y: y})
	return 0
}
