// Package console implements the in-game command console.
//
// The console sits early in the input consumer chain. While open it
// claims every key event, assembling typed characters into a command
// line that is submitted to the script runtime on Enter. Script output
// arrives through InsertResult (the echo host function) and is drained
// by the render layer.
package console

import (
	"stardrift/internal/input"
	"stardrift/internal/input/key"
	"stardrift/internal/logging"
)

// ToggleKey opens and closes the console.
const ToggleKey = key.Backquote

// Console is the command console input consumer.
type Console struct {
	runner  input.Runner
	log     *logging.Logger
	open    bool
	line    []rune
	results []string
}

// New creates a closed console submitting lines to runner.
func New(runner input.Runner, log *logging.Logger) *Console {
	return &Console{runner: runner, log: log.WithComponent("console")}
}

// Open reports whether the console is accepting input.
func (c *Console) Open() bool { return c.open }

// Line returns the command line under construction.
func (c *Console) Line() string { return string(c.line) }

// InsertResult appends a line of script output.
func (c *Console) InsertResult(s string) {
	c.results = append(c.results, s)
}

// Results returns the accumulated output and clears the buffer.
func (c *Console) Results() []string {
	out := c.results
	c.results = nil
	return out
}

// HandleInput claims the toggle key always, and every key event while
// the console is open. Mouse events always pass through.
func (c *Console) HandleInput(events []input.Event) []input.Event {
	var out []input.Event
	for _, e := range events {
		if e.Kind != input.KindKey {
			out = append(out, e)
			continue
		}
		if !c.open {
			if e.KeyState == key.StateTyped && e.Code == ToggleKey {
				c.open = true
				continue
			}
			out = append(out, e)
			continue
		}
		if e.KeyState == key.StateTyped {
			c.typed(e.Code)
		}
		// Down/Up/Pressed for the same keys are swallowed so held
		// state never leaks into gameplay while typing.
	}
	return out
}

func (c *Console) typed(code key.Code) {
	switch code {
	case ToggleKey:
		c.open = false
		c.line = c.line[:0]
	case '\n':
		c.submit()
	case key.Backspace:
		if len(c.line) > 0 {
			c.line = c.line[:len(c.line)-1]
		}
	default:
		if code.Printable() {
			c.line = append(c.line, rune(code))
		}
	}
}

func (c *Console) submit() {
	line := string(c.line)
	c.line = c.line[:0]
	if line == "" {
		return
	}
	if err := c.runner.Run(line); err != nil {
		c.log.Error("console command failed: %v", err)
		c.InsertResult(err.Error())
	}
}
