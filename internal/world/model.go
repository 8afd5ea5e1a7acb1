package world

// Model describes a ship hull type. Image and Engine are fixed at load
// time; the scalar stats are script-tunable through WithStats.
type Model struct {
	Name     string
	Image    string
	Engine   string
	Mass     float64
	Thrust   int
	Rotation float64
	MaxSpeed float64
	MaxHull  int
}

// WithStats returns a copy of the model with the tunable scalars
// replaced and the immutable fields carried over.
func (m Model) WithStats(mass float64, thrust int, rotation, maxSpeed float64, maxHull int) Model {
	return Model{
		Name:     m.Name,
		Image:    m.Image,
		Engine:   m.Engine,
		Mass:     mass,
		Thrust:   thrust,
		Rotation: rotation,
		MaxSpeed: maxSpeed,
		MaxHull:  maxHull,
	}
}
