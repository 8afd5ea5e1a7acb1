package input

// Consumer is a subsystem with first claim on the frame's event batch.
// HandleInput returns the events it did not claim, preserving their
// order; later consumers only see what earlier consumers left behind.
type Consumer interface {
	HandleInput(events []Event) []Event
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(events []Event) []Event

// HandleInput calls f.
func (f ConsumerFunc) HandleInput(events []Event) []Event {
	return f(events)
}
