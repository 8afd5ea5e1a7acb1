package world

// Planet describes a landable body. Influence and the technology list
// are fixed at load time; the profile fields are script-tunable.
type Planet struct {
	Name         string
	Alliance     string
	Traffic      int
	Militia      int
	Landable     bool
	Influence    int
	Technologies []string
}

// WithProfile returns a copy of the planet with the tunable fields
// replaced and influence/technologies carried over.
func (p Planet) WithProfile(alliance string, traffic, militia int, landable bool) Planet {
	out := p
	out.Alliance = alliance
	out.Traffic = traffic
	out.Militia = militia
	out.Landable = landable
	return out
}
