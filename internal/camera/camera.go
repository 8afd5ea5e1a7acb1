// Package camera controls the view focus for the render layer.
package camera

import "stardrift/internal/sprite"

// Lookup resolves a sprite ID. Satisfied by the sprite manager.
type Lookup interface {
	Get(id int) (sprite.Sprite, bool)
}

// Camera tracks either a fixed focus point or a focused sprite. A
// sprite focus is re-resolved every update through the checked lookup;
// if the sprite has been removed the camera keeps its last coordinate
// instead of following stale data.
type Camera struct {
	sprites Lookup

	focus       sprite.Point
	focusID     int
	hasFocusTag bool

	shakeMagnitude int
	shakeRemaining int
	shakeEpicenter sprite.Point
	offset         sprite.Point
}

// New creates a camera resolving sprite focus through sprites.
func New(sprites Lookup) *Camera {
	return &Camera{sprites: sprites}
}

// Focus points the camera at a fixed coordinate, detaching any sprite
// focus.
func (c *Camera) Focus(x, y float64) {
	c.hasFocusTag = false
	c.focus = sprite.Point{X: x, Y: y}
}

// FocusSprite attaches the camera to a sprite by ID. Returns false
// when the ID does not resolve; the focus is unchanged in that case.
func (c *Camera) FocusSprite(id int) bool {
	s, ok := c.sprites.Get(id)
	if !ok {
		return false
	}
	c.hasFocusTag = true
	c.focusID = id
	c.focus = s.Position()
	return true
}

// Move shifts the focus by a delta, detaching any sprite focus.
func (c *Camera) Move(dx, dy float64) {
	c.hasFocusTag = false
	c.focus.X += dx
	c.focus.Y += dy
}

// Shake starts a camera shake of the given magnitude lasting duration
// updates, centered on epicenter.
func (c *Camera) Shake(magnitude, duration int, epicenter sprite.Point) {
	c.shakeMagnitude = magnitude
	c.shakeRemaining = duration
	c.shakeEpicenter = epicenter
}

// Shaking reports whether a shake is in progress.
func (c *Camera) Shaking() bool {
	return c.shakeRemaining > 0
}

// FocusCoordinate returns the current focus point, without shake.
func (c *Camera) FocusCoordinate() sprite.Point {
	return c.focus
}

// Offset returns the shake displacement applied on top of the focus.
func (c *Camera) Offset() sprite.Point {
	return c.offset
}

// Update advances one frame: re-resolves sprite focus and decays any
// active shake.
func (c *Camera) Update() {
	if c.hasFocusTag {
		if s, ok := c.sprites.Get(c.focusID); ok {
			c.focus = s.Position()
		} else {
			// Focused sprite is gone; hold the last coordinate.
			c.hasFocusTag = false
		}
	}

	if c.shakeRemaining > 0 {
		c.shakeRemaining--
		// Alternate the displacement around the epicenter, shrinking
		// with the remaining duration.
		mag := float64(c.shakeMagnitude) * float64(c.shakeRemaining)
		if c.shakeRemaining%2 == 0 {
			mag = -mag
		}
		c.offset = sprite.Point{X: mag, Y: mag}
		if c.shakeRemaining == 0 {
			c.shakeMagnitude = 0
			c.offset = sprite.Point{}
		}
	}
}
