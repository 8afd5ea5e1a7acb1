package world

// Technology groups the models, weapons, and engines a planet's
// markets can offer. Members are referenced by name; missing names are
// resolved (and reported) at the point of use.
type Technology struct {
	Name    string
	Models  []string
	Weapons []string
	Engines []string
}
