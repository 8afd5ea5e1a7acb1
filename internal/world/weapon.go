package world

// Weapon describes a mountable weapon. Art, ammo wiring, and the sound
// handle are fixed at load time.
type Weapon struct {
	Name            string
	Image           string
	Picture         string
	Type            int
	AmmoType        int
	AmmoConsumption int
	Sound           string
	Payload         int
	Velocity        int
	Acceleration    int
	FireDelay       int
	Lifetime        int
}

// WithStats returns a copy of the weapon with the tunable scalars
// replaced and the immutable fields carried over.
func (w Weapon) WithStats(payload, velocity, acceleration, fireDelay, lifetime int) Weapon {
	out := w
	out.Payload = payload
	out.Velocity = velocity
	out.Acceleration = acceleration
	out.FireDelay = fireDelay
	out.Lifetime = lifetime
	return out
}
