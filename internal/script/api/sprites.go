package api

import (
	lua "github.com/yuin/gopher-lua"

	"stardrift/internal/sprite"
)

// Metatable names for the sprite handle kinds.
const (
	shipType   = "Stardrift.Ship"
	planetType = "Stardrift.Planet"
)

// SpriteModule implements the sprite query host functions. Sprites
// cross the boundary as weak handles: userdata carrying only the
// sprite ID, resolved through the manager on every use so a stale
// handle fails loudly instead of touching freed state.
type SpriteModule struct {
	ctx *Context
}

// NewSpriteModule creates a new sprite module.
func NewSpriteModule(ctx *Context) *SpriteModule {
	return &SpriteModule{ctx: ctx}
}

// Name returns the module name.
func (m *SpriteModule) Name() string {
	return "sprites"
}

// Register registers the module and the sprite handle metatables into
// the Lua state.
func (m *SpriteModule) Register(L *lua.LState) error {
	for _, tname := range []string{shipType, planetType} {
		mt := L.NewTypeMetatable(tname)
		idx := L.NewTable()
		L.SetField(idx, "GetID", L.NewFunction(m.handleID))
		L.SetField(idx, "GetName", L.NewFunction(m.handleName))
		L.SetField(idx, "GetPosition", L.NewFunction(m.handlePosition))
		L.SetField(idx, "GetType", L.NewFunction(m.handleType))
		if tname == shipType {
			L.SetField(idx, "GetModelName", L.NewFunction(m.shipModelName))
			L.SetField(idx, "GetHull", L.NewFunction(m.shipHull))
			L.SetField(idx, "SetHull", L.NewFunction(m.shipSetHull))
		}
		L.SetField(mt, "__index", idx)
	}

	t := hostTable(L)
	L.SetField(t, "getSprite", L.NewFunction(m.getSprite))
	L.SetField(t, "ships", L.NewFunction(m.ships))
	L.SetField(t, "planets", L.NewFunction(m.planets))
	L.SetField(t, "player", L.NewFunction(m.player))
	L.SetField(t, "nearestShip", L.NewFunction(m.nearestShip))
	L.SetField(t, "nearestPlanet", L.NewFunction(m.nearestPlanet))

	return nil
}

// pushSprite pushes a handle for s, typed by its draw order. Sprites
// of a layer scripts have no business holding are reported and pushed
// as nothing.
func (m *SpriteModule) pushSprite(L *lua.LState, s sprite.Sprite) int {
	var tname string
	switch s.DrawOrder() {
	case sprite.OrderShip, sprite.OrderPlayer:
		tname = shipType
	case sprite.OrderPlanet:
		tname = planetType
	default:
		m.ctx.Log.Error("no script handle for %s sprite %d", s.DrawOrder(), s.ID())
		return 0
	}
	ud := L.NewUserData()
	ud.Value = s.ID()
	L.SetMetatable(ud, L.GetTypeMetatable(tname))
	L.Push(ud)
	return 1
}

// checkSprite resolves the handle at idx through the manager. A stale
// handle raises an error.
func (m *SpriteModule) checkSprite(L *lua.LState, idx int) sprite.Sprite {
	ud := L.CheckUserData(idx)
	id, ok := ud.Value.(int)
	if !ok {
		L.ArgError(idx, "sprite handle expected")
		return nil
	}
	s, ok := m.ctx.Sprites.Get(id)
	if !ok {
		L.RaiseError("no such sprite ID %d", id)
		return nil
	}
	return s
}

// getSprite(id) -> handle
// Resolves a sprite ID. An unknown ID is an error.
func (m *SpriteModule) getSprite(L *lua.LState) int {
	id := L.CheckInt(1)
	s, ok := m.ctx.Sprites.Get(id)
	if !ok {
		L.RaiseError("no such sprite ID %d", id)
		return 0
	}
	return m.pushSprite(L, s)
}

// ships() -> table
// Returns handles for every ship, the player's included.
func (m *SpriteModule) ships(L *lua.LState) int {
	return m.pushAll(L, sprite.OrderShip|sprite.OrderPlayer)
}

// planets() -> table
// Returns handles for every planet sprite.
func (m *SpriteModule) planets(L *lua.LState) int {
	return m.pushAll(L, sprite.OrderPlanet)
}

func (m *SpriteModule) pushAll(L *lua.LState, mask sprite.DrawOrder) int {
	t := L.NewTable()
	for _, s := range m.ctx.Sprites.All(mask) {
		if m.pushSprite(L, s) == 1 {
			t.Append(L.Get(-1))
			L.Pop(1)
		}
	}
	L.Push(t)
	return 1
}

// player() -> handle or nil
// Returns the player's ship handle.
func (m *SpriteModule) player(L *lua.LState) int {
	p := m.ctx.Sprites.Player()
	if p == nil {
		L.Push(lua.LNil)
		return 1
	}
	return m.pushSprite(L, p)
}

// nearestShip(handle, radius) -> handle or nil
// Returns the ship closest to the given sprite within radius.
func (m *SpriteModule) nearestShip(L *lua.LState) int {
	return m.nearest(L, sprite.OrderShip|sprite.OrderPlayer)
}

// nearestPlanet(handle, radius) -> handle or nil
// Returns the planet closest to the given sprite within radius.
func (m *SpriteModule) nearestPlanet(L *lua.LState) int {
	return m.nearest(L, sprite.OrderPlanet)
}

func (m *SpriteModule) nearest(L *lua.LState, mask sprite.DrawOrder) int {
	from := m.checkSprite(L, 1)
	radius := float64(L.CheckNumber(2))
	s, ok := m.ctx.Sprites.Nearest(from, radius, mask)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	return m.pushSprite(L, s)
}

// Handle methods. Every call resolves the ID afresh.

func (m *SpriteModule) handleID(L *lua.LState) int {
	s := m.checkSprite(L, 1)
	L.Push(lua.LNumber(s.ID()))
	return 1
}

func (m *SpriteModule) handleName(L *lua.LState) int {
	s := m.checkSprite(L, 1)
	if named, ok := s.(interface{ Name() string }); ok {
		L.Push(lua.LString(named.Name()))
		return 1
	}
	L.Push(lua.LString(""))
	return 1
}

func (m *SpriteModule) handlePosition(L *lua.LState) int {
	s := m.checkSprite(L, 1)
	p := s.Position()
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	return 2
}

func (m *SpriteModule) handleType(L *lua.LState) int {
	s := m.checkSprite(L, 1)
	L.Push(lua.LString(s.DrawOrder().String()))
	return 1
}

func (m *SpriteModule) checkShip(L *lua.LState, idx int) *sprite.Ship {
	s := m.checkSprite(L, idx)
	ship, ok := s.(*sprite.Ship)
	if !ok {
		L.ArgError(idx, "ship handle expected")
		return nil
	}
	return ship
}

func (m *SpriteModule) shipModelName(L *lua.LState) int {
	ship := m.checkShip(L, 1)
	L.Push(lua.LString(ship.Model()))
	return 1
}

func (m *SpriteModule) shipHull(L *lua.LState) int {
	ship := m.checkShip(L, 1)
	L.Push(lua.LNumber(ship.Hull()))
	return 1
}

func (m *SpriteModule) shipSetHull(L *lua.LState) int {
	ship := m.checkShip(L, 1)
	ship.SetHull(L.CheckInt(2))
	return 0
}
