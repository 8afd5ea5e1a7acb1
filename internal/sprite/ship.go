package sprite

// Ship is a piloted vessel. The player's ship is a Ship with the
// player draw order; everything else about it is identical.
type Ship struct {
	base
	name   string
	model  string
	hull   int
	player bool
}

// NewShip creates an AI-piloted ship of the given model.
func NewShip(name, model string) *Ship {
	return &Ship{name: name, model: model}
}

// NewPlayer creates the player's ship.
func NewPlayer(name, model string) *Ship {
	return &Ship{name: name, model: model, player: true}
}

// Name returns the ship's name.
func (s *Ship) Name() string { return s.name }

// Model returns the name of the ship's hull model.
func (s *Ship) Model() string { return s.model }

// Hull returns the current hull integrity.
func (s *Ship) Hull() int { return s.hull }

// SetHull sets the current hull integrity.
func (s *Ship) SetHull(h int) { s.hull = h }

// DrawOrder classifies the ship by who pilots it.
func (s *Ship) DrawOrder() DrawOrder {
	if s.player {
		return OrderPlayer
	}
	return OrderShip
}
