package world

// Engine describes a ship drive. The thrust sound handle is fixed at
// load time.
type Engine struct {
	Name        string
	ThrustSound string
	Force       int
	Animation   string
	MSRP        int
	FoldDrive   bool
}

// WithStats returns a copy of the engine with the tunable fields
// replaced and the sound handle carried over.
func (e Engine) WithStats(force int, animation string, msrp int, foldDrive bool) Engine {
	return Engine{
		Name:        e.Name,
		ThrustSound: e.ThrustSound,
		Force:       force,
		Animation:   animation,
		MSRP:        msrp,
		FoldDrive:   foldDrive,
	}
}
