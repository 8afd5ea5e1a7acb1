package sprite

// DrawOrder classifies a sprite by its render layer. Higher orders
// draw later (on top). The values are bits so query masks can select
// several layers at once.
type DrawOrder int

const (
	// OrderPlanet draws first, under everything.
	OrderPlanet DrawOrder = 1 << iota
	// OrderWeapon is projectiles in flight.
	OrderWeapon
	// OrderShip is non-player ships.
	OrderShip
	// OrderPlayer is the player's ship.
	OrderPlayer
	// OrderEffect draws last, on top.
	OrderEffect
)

// OrderAny matches every layer.
const OrderAny = OrderPlanet | OrderWeapon | OrderShip | OrderPlayer | OrderEffect

// String returns the layer name.
func (o DrawOrder) String() string {
	switch o {
	case OrderPlanet:
		return "planet"
	case OrderWeapon:
		return "weapon"
	case OrderShip:
		return "ship"
	case OrderPlayer:
		return "player"
	case OrderEffect:
		return "effect"
	default:
		return "mixed"
	}
}

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// DistSq returns the squared distance to o. Spatial queries compare
// squared distances to avoid the square root.
func (p Point) DistSq(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Sprite is a live simulation entity.
type Sprite interface {
	ID() int
	Position() Point
	DrawOrder() DrawOrder
}

// base carries the identity and position shared by every sprite kind.
// The manager assigns the ID at registration.
type base struct {
	id  int
	pos Point
}

func (b *base) ID() int { return b.id }

func (b *base) Position() Point { return b.pos }

// SetPosition moves the sprite.
func (b *base) SetPosition(p Point) { b.pos = p }

func (b *base) setID(id int) { b.id = id }
