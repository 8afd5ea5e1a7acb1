package world

// Alliance is a faction planets and ships can belong to.
type Alliance struct {
	Name       string
	Aggression float64
	Currency   string
}
