package sprite

// Planet is the sprite for a landable body. The body's description
// lives in the world registry under the same name; the sprite carries
// only position and identity.
type Planet struct {
	base
	name string
}

// NewPlanet creates a planet sprite at a fixed position.
func NewPlanet(name string, pos Point) *Planet {
	p := &Planet{name: name}
	p.pos = pos
	return p
}

// Name returns the planet's name, the key into the world registry.
func (p *Planet) Name() string { return p.name }

// DrawOrder places planets under everything else.
func (p *Planet) DrawOrder() DrawOrder { return OrderPlanet }
