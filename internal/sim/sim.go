// Package sim owns the simulation pause state.
package sim

// Simulation is the pause controller. Scripts reach it through the
// pause/unpause/ispaused host functions.
type Simulation struct {
	paused bool
}

// New creates an unpaused simulation.
func New() *Simulation {
	return &Simulation{}
}

// Pause stops simulation updates.
func (s *Simulation) Pause() { s.paused = true }

// Unpause resumes simulation updates.
func (s *Simulation) Unpause() { s.paused = false }

// IsPaused reports the pause state.
func (s *Simulation) IsPaused() bool { return s.paused }
