package sprite

// Manager is the sprite registry: stable IDs, checked lookup, and the
// spatial queries the scripting layer exposes. Frame-thread only.
type Manager struct {
	nextID  int
	sprites map[int]Sprite
	order   []int
	player  *Ship
}

// NewManager creates an empty manager. IDs start at 1 so the zero ID
// never resolves.
func NewManager() *Manager {
	return &Manager{nextID: 1, sprites: make(map[int]Sprite)}
}

// Add registers the sprite and returns its assigned ID.
func (m *Manager) Add(s Sprite) int {
	id := m.nextID
	m.nextID++
	if setter, ok := s.(interface{ setID(int) }); ok {
		setter.setID(id)
	}
	m.sprites[id] = s
	m.order = append(m.order, id)
	if ship, ok := s.(*Ship); ok && ship.player {
		m.player = ship
	}
	return id
}

// Get resolves an ID. A removed or never-assigned ID reports false.
func (m *Manager) Get(id int) (Sprite, bool) {
	s, ok := m.sprites[id]
	return s, ok
}

// Remove unregisters the sprite with the given ID.
func (m *Manager) Remove(id int) {
	s, ok := m.sprites[id]
	if !ok {
		return
	}
	delete(m.sprites, id)
	for i, sid := range m.order {
		if sid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if ship, ok := s.(*Ship); ok && ship == m.player {
		m.player = nil
	}
}

// Player returns the player's ship, if one is registered.
func (m *Manager) Player() *Ship {
	return m.player
}

// All returns the sprites whose draw order matches mask, in
// registration order.
func (m *Manager) All(mask DrawOrder) []Sprite {
	var out []Sprite
	for _, id := range m.order {
		s := m.sprites[id]
		if s.DrawOrder()&mask != 0 {
			out = append(out, s)
		}
	}
	return out
}

// Near returns the sprites matching mask within radius of p, in
// registration order.
func (m *Manager) Near(p Point, radius float64, mask DrawOrder) []Sprite {
	rsq := radius * radius
	var out []Sprite
	for _, id := range m.order {
		s := m.sprites[id]
		if s.DrawOrder()&mask == 0 {
			continue
		}
		if s.Position().DistSq(p) <= rsq {
			out = append(out, s)
		}
	}
	return out
}

// Nearest returns the closest sprite matching mask within radius of
// from, excluding from itself. Reports false when nothing qualifies.
func (m *Manager) Nearest(from Sprite, radius float64, mask DrawOrder) (Sprite, bool) {
	rsq := radius * radius
	origin := from.Position()
	var best Sprite
	var bestSq float64
	for _, id := range m.order {
		s := m.sprites[id]
		if s.ID() == from.ID() || s.DrawOrder()&mask == 0 {
			continue
		}
		dsq := s.Position().DistSq(origin)
		if dsq > rsq {
			continue
		}
		if best == nil || dsq < bestSq {
			best = s
			bestSq = dsq
		}
	}
	return best, best != nil
}

// Len returns the number of registered sprites.
func (m *Manager) Len() int {
	return len(m.sprites)
}
