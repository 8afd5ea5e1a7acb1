package api

import (
	lua "github.com/yuin/gopher-lua"

	"stardrift/internal/sprite"
)

// InfoModule implements the bulk entity accessors. The get calls
// return a table of named fields; the set calls take one back, look
// the entity up by its Name field, and swap in a copy with the tunable
// fields replaced. A set against an unknown name changes nothing:
// scripts cannot create entities this way.
type InfoModule struct {
	ctx *Context
}

// NewInfoModule creates a new info module.
func NewInfoModule(ctx *Context) *InfoModule {
	return &InfoModule{ctx: ctx}
}

// Name returns the module name.
func (m *InfoModule) Name() string {
	return "info"
}

// Register registers the module into the Lua state.
func (m *InfoModule) Register(L *lua.LState) error {
	t := hostTable(L)

	L.SetField(t, "models", L.NewFunction(m.models))
	L.SetField(t, "weapons", L.NewFunction(m.weapons))
	L.SetField(t, "engines", L.NewFunction(m.engines))
	L.SetField(t, "technologies", L.NewFunction(m.technologies))
	L.SetField(t, "alliances", L.NewFunction(m.alliances))

	L.SetField(t, "getModelInfo", L.NewFunction(m.getModelInfo))
	L.SetField(t, "setModelInfo", L.NewFunction(m.setModelInfo))
	L.SetField(t, "getPlanetInfo", L.NewFunction(m.getPlanetInfo))
	L.SetField(t, "setPlanetInfo", L.NewFunction(m.setPlanetInfo))
	L.SetField(t, "getWeaponInfo", L.NewFunction(m.getWeaponInfo))
	L.SetField(t, "setWeaponInfo", L.NewFunction(m.setWeaponInfo))
	L.SetField(t, "getEngineInfo", L.NewFunction(m.getEngineInfo))
	L.SetField(t, "setEngineInfo", L.NewFunction(m.setEngineInfo))
	L.SetField(t, "getAllianceInfo", L.NewFunction(m.getAllianceInfo))
	L.SetField(t, "setAllianceInfo", L.NewFunction(m.setAllianceInfo))
	L.SetField(t, "getTechnologyInfo", L.NewFunction(m.getTechnologyInfo))
	L.SetField(t, "setTechnologyInfo", L.NewFunction(m.setTechnologyInfo))

	return nil
}

// models() -> table
// Returns every model name, in load order.
func (m *InfoModule) models(L *lua.LState) int {
	L.Push(pushNames(L, m.ctx.World.Models.Names()))
	return 1
}

// weapons() -> table
func (m *InfoModule) weapons(L *lua.LState) int {
	L.Push(pushNames(L, m.ctx.World.Weapons.Names()))
	return 1
}

// engines() -> table
func (m *InfoModule) engines(L *lua.LState) int {
	L.Push(pushNames(L, m.ctx.World.Engines.Names()))
	return 1
}

// technologies() -> table
func (m *InfoModule) technologies(L *lua.LState) int {
	L.Push(pushNames(L, m.ctx.World.Technologies.Names()))
	return 1
}

// alliances() -> table
func (m *InfoModule) alliances(L *lua.LState) int {
	L.Push(pushNames(L, m.ctx.World.Alliances.Names()))
	return 1
}

// getModelInfo(name) -> table
// Returns the model's fields. An unknown name is an error.
func (m *InfoModule) getModelInfo(L *lua.LState) int {
	name := L.CheckString(1)
	model, ok := m.ctx.World.Models.Get(name)
	if !ok {
		L.RaiseError("getModelInfo: no model named %q", name)
		return 0
	}
	t := L.NewTable()
	L.SetField(t, "Name", lua.LString(model.Name))
	L.SetField(t, "Image", lua.LString(model.Image))
	L.SetField(t, "Engine", lua.LString(model.Engine))
	L.SetField(t, "Mass", lua.LNumber(model.Mass))
	L.SetField(t, "Thrust", lua.LNumber(model.Thrust))
	L.SetField(t, "Rotation", lua.LNumber(model.Rotation))
	L.SetField(t, "MaxSpeed", lua.LNumber(model.MaxSpeed))
	L.SetField(t, "MaxHull", lua.LNumber(model.MaxHull))
	L.Push(t)
	return 1
}

// setModelInfo(table)
// Replaces the named model's tunable stats. Image and engine stay as
// loaded.
func (m *InfoModule) setModelInfo(L *lua.LState) int {
	t := L.CheckTable(1)
	name := getStringField(L, t, "Name")
	model, ok := m.ctx.World.Models.Get(name)
	if !ok {
		return 0
	}
	m.ctx.World.Models.Replace(name, model.WithStats(
		getNumField(L, t, "Mass"),
		getIntField(L, t, "Thrust"),
		getNumField(L, t, "Rotation"),
		getNumField(L, t, "MaxSpeed"),
		getIntField(L, t, "MaxHull"),
	))
	return 0
}

// getPlanetInfo(spriteID) -> table
// Returns the planet record behind a planet sprite. The ID must
// resolve to a planet-layer sprite.
func (m *InfoModule) getPlanetInfo(L *lua.LState) int {
	id := L.CheckInt(1)
	s, ok := m.ctx.Sprites.Get(id)
	if !ok {
		L.RaiseError("no such sprite ID %d", id)
		return 0
	}
	ps, ok := s.(*sprite.Planet)
	if !ok {
		L.RaiseError("getPlanetInfo: sprite %d is a %s, not a planet", id, s.DrawOrder())
		return 0
	}
	planet, ok := m.ctx.World.Planets.Get(ps.Name())
	if !ok {
		L.RaiseError("getPlanetInfo: no planet named %q", ps.Name())
		return 0
	}
	t := L.NewTable()
	L.SetField(t, "Name", lua.LString(planet.Name))
	L.SetField(t, "Alliance", lua.LString(planet.Alliance))
	L.SetField(t, "Traffic", lua.LNumber(planet.Traffic))
	L.SetField(t, "Militia", lua.LNumber(planet.Militia))
	L.SetField(t, "Landable", lua.LBool(planet.Landable))
	L.SetField(t, "Influence", lua.LNumber(planet.Influence))
	L.SetField(t, "Technologies", pushNames(L, planet.Technologies))
	L.Push(t)
	return 1
}

// setPlanetInfo(table)
// Replaces the named planet's profile. Influence and the technology
// list stay as loaded.
func (m *InfoModule) setPlanetInfo(L *lua.LState) int {
	t := L.CheckTable(1)
	name := getStringField(L, t, "Name")
	planet, ok := m.ctx.World.Planets.Get(name)
	if !ok {
		return 0
	}
	m.ctx.World.Planets.Replace(name, planet.WithProfile(
		getStringField(L, t, "Alliance"),
		getIntField(L, t, "Traffic"),
		getIntField(L, t, "Militia"),
		getBoolField(L, t, "Landable"),
	))
	return 0
}

// getWeaponInfo(name) -> table
func (m *InfoModule) getWeaponInfo(L *lua.LState) int {
	name := L.CheckString(1)
	w, ok := m.ctx.World.Weapons.Get(name)
	if !ok {
		L.RaiseError("getWeaponInfo: no weapon named %q", name)
		return 0
	}
	t := L.NewTable()
	L.SetField(t, "Name", lua.LString(w.Name))
	L.SetField(t, "Image", lua.LString(w.Image))
	L.SetField(t, "Picture", lua.LString(w.Picture))
	L.SetField(t, "Type", lua.LNumber(w.Type))
	L.SetField(t, "Ammo Type", lua.LNumber(w.AmmoType))
	L.SetField(t, "Ammo Consumption", lua.LNumber(w.AmmoConsumption))
	L.SetField(t, "Sound", lua.LString(w.Sound))
	L.SetField(t, "Payload", lua.LNumber(w.Payload))
	L.SetField(t, "Velocity", lua.LNumber(w.Velocity))
	L.SetField(t, "Acceleration", lua.LNumber(w.Acceleration))
	L.SetField(t, "FireDelay", lua.LNumber(w.FireDelay))
	L.SetField(t, "Lifetime", lua.LNumber(w.Lifetime))
	L.Push(t)
	return 1
}

// setWeaponInfo(table)
// Replaces the named weapon's tunable stats. Art, ammo wiring, and
// sound stay as loaded.
func (m *InfoModule) setWeaponInfo(L *lua.LState) int {
	t := L.CheckTable(1)
	name := getStringField(L, t, "Name")
	w, ok := m.ctx.World.Weapons.Get(name)
	if !ok {
		return 0
	}
	m.ctx.World.Weapons.Replace(name, w.WithStats(
		getIntField(L, t, "Payload"),
		getIntField(L, t, "Velocity"),
		getIntField(L, t, "Acceleration"),
		getIntField(L, t, "FireDelay"),
		getIntField(L, t, "Lifetime"),
	))
	return 0
}

// getEngineInfo(name) -> table
func (m *InfoModule) getEngineInfo(L *lua.LState) int {
	name := L.CheckString(1)
	e, ok := m.ctx.World.Engines.Get(name)
	if !ok {
		L.RaiseError("getEngineInfo: no engine named %q", name)
		return 0
	}
	t := L.NewTable()
	L.SetField(t, "Name", lua.LString(e.Name))
	L.SetField(t, "ThrustSound", lua.LString(e.ThrustSound))
	L.SetField(t, "Force", lua.LNumber(e.Force))
	L.SetField(t, "Animation", lua.LString(e.Animation))
	L.SetField(t, "MSRP", lua.LNumber(e.MSRP))
	L.SetField(t, "Fold Drive", lua.LBool(e.FoldDrive))
	L.Push(t)
	return 1
}

// setEngineInfo(table)
// Replaces the named engine's tunable stats. The thrust sound stays as
// loaded.
func (m *InfoModule) setEngineInfo(L *lua.LState) int {
	t := L.CheckTable(1)
	name := getStringField(L, t, "Name")
	e, ok := m.ctx.World.Engines.Get(name)
	if !ok {
		return 0
	}
	m.ctx.World.Engines.Replace(name, e.WithStats(
		getIntField(L, t, "Force"),
		getStringField(L, t, "Animation"),
		getIntField(L, t, "MSRP"),
		getBoolField(L, t, "Fold Drive"),
	))
	return 0
}

// getAllianceInfo(name) -> table
func (m *InfoModule) getAllianceInfo(L *lua.LState) int {
	name := L.CheckString(1)
	a, ok := m.ctx.World.Alliances.Get(name)
	if !ok {
		L.RaiseError("getAllianceInfo: no alliance named %q", name)
		return 0
	}
	t := L.NewTable()
	L.SetField(t, "Name", lua.LString(a.Name))
	L.SetField(t, "Aggression", lua.LNumber(a.Aggression))
	L.SetField(t, "Currency", lua.LString(a.Currency))
	L.Push(t)
	return 1
}

// setAllianceInfo(table)
func (m *InfoModule) setAllianceInfo(L *lua.LState) int {
	t := L.CheckTable(1)
	name := getStringField(L, t, "Name")
	a, ok := m.ctx.World.Alliances.Get(name)
	if !ok {
		return 0
	}
	a.Aggression = getNumField(L, t, "Aggression")
	a.Currency = getStringField(L, t, "Currency")
	m.ctx.World.Alliances.Replace(name, a)
	return 0
}

// getTechnologyInfo(name) -> models, weapons, engines
// Returns the technology group's three member lists.
func (m *InfoModule) getTechnologyInfo(L *lua.LState) int {
	name := L.CheckString(1)
	tech, ok := m.ctx.World.Technologies.Get(name)
	if !ok {
		L.RaiseError("getTechnologyInfo: no technology named %q", name)
		return 0
	}
	L.Push(pushNames(L, tech.Models))
	L.Push(pushNames(L, tech.Weapons))
	L.Push(pushNames(L, tech.Engines))
	return 3
}

// setTechnologyInfo(table)
// Technology groups are load-time data for now.
func (m *InfoModule) setTechnologyInfo(L *lua.LState) int {
	L.RaiseError("setTechnologyInfo is not implemented")
	return 0
}
