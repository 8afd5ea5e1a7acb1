package world

// World aggregates the entity registries. One World exists per app,
// owned by the frame thread.
type World struct {
	Models       *Registry[Model]
	Weapons      *Registry[Weapon]
	Engines      *Registry[Engine]
	Technologies *Registry[Technology]
	Alliances    *Registry[Alliance]
	Planets      *Registry[Planet]
}

// New creates an empty world.
func New() *World {
	return &World{
		Models:       NewRegistry[Model](),
		Weapons:      NewRegistry[Weapon](),
		Engines:      NewRegistry[Engine](),
		Technologies: NewRegistry[Technology](),
		Alliances:    NewRegistry[Alliance](),
		Planets:      NewRegistry[Planet](),
	}
}
