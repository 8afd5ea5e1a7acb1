package input

// Runner executes a script command string. Satisfied by the script
// runtime.
type Runner interface {
	Run(command string) error
}

// Bindings maps events to script command strings. Scripts populate it
// through the RegisterKey host function at load time; the dispatcher
// consults it once per frame for every event the consumer chain left
// unclaimed.
//
// Duplicate registration for the same event replaces the previous
// command (last wins). An event maps to at most one command.
type Bindings struct {
	commands map[Event]string
}

// NewBindings creates an empty bindings registry.
func NewBindings() *Bindings {
	return &Bindings{commands: make(map[Event]string)}
}

// Register binds event to command, replacing any existing binding.
func (b *Bindings) Register(event Event, command string) {
	b.commands[event] = command
}

// Unregister removes the binding for event. Removing an unbound event
// is a no-op.
func (b *Bindings) Unregister(event Event) {
	delete(b.commands, event)
}

// Lookup returns the command bound to event, if any.
func (b *Bindings) Lookup(event Event) (string, bool) {
	cmd, ok := b.commands[event]
	return cmd, ok
}

// Len returns the number of registered bindings.
func (b *Bindings) Len() int {
	return len(b.commands)
}

// Dispatch submits the bound command for every event in batch order.
// Runner errors are returned to the caller one at a time through the
// report callback so a failing binding never stops the batch.
func (b *Bindings) Dispatch(events []Event, runner Runner, report func(Event, error)) {
	for _, e := range events {
		cmd, ok := b.commands[e]
		if !ok {
			continue
		}
		if err := runner.Run(cmd); err != nil && report != nil {
			report(e, err)
		}
	}
}
