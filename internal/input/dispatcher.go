package input

import (
	"time"

	"stardrift/internal/input/key"
	"stardrift/internal/logging"
)

// DefaultPointerFade is used when no fade timeout is configured.
const DefaultPointerFade = 500 * time.Millisecond

// Dispatcher owns the per-frame input pipeline: it drains the event
// source, maintains held-key state, synthesizes typed characters, and
// routes the batch through the consumer chain and then the bindings
// registry.
//
// The dispatcher is frame-thread only. Nothing in it is safe for
// concurrent use; if polling ever moves off the main thread the owner
// must serialize access.
type Dispatcher struct {
	source    EventSource
	consumers []Consumer
	bindings  *Bindings
	runner    Runner
	log       *logging.Logger

	// heldKeys[k] is true iff the most recent transition seen for k
	// was Down with no Up since.
	heldKeys [key.MaxCode]bool

	quitKey     key.Code
	pointerFade time.Duration
	uiActive    func() bool
	now         func() time.Time

	lastPointerMove time.Time
	pointerVisible  bool

	events []Event
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithQuitKey sets the immediate-quit key. A transition of this key
// raises the quit flag instead of producing events.
func WithQuitKey(code key.Code) DispatcherOption {
	return func(d *Dispatcher) {
		d.quitKey = code
	}
}

// WithPointerFade sets how long the pointer stays visible after its
// last movement.
func WithPointerFade(fade time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.pointerFade = fade
	}
}

// WithUIActive sets the probe used to suppress pointer fade while a UI
// is up.
func WithUIActive(active func() bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.uiActive = active
	}
}

// WithClock overrides the dispatcher's time source.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// NewDispatcher creates a dispatcher draining source each frame. The
// consumer chain runs in the given order; whatever it leaves unclaimed
// is matched against bindings and executed by runner.
func NewDispatcher(source EventSource, bindings *Bindings, runner Runner, log *logging.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		source:         source,
		bindings:       bindings,
		runner:         runner,
		log:            log.WithComponent("input"),
		quitKey:        key.Escape,
		pointerFade:    DefaultPointerFade,
		now:            time.Now,
		pointerVisible: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.lastPointerMove = d.now()
	return d
}

// Chain sets the ordered consumer chain. Called once during wiring,
// before the first Update.
func (d *Dispatcher) Chain(consumers ...Consumer) {
	d.consumers = consumers
}

// Held reports whether code is currently held.
func (d *Dispatcher) Held(code key.Code) bool {
	if !code.Valid() {
		return false
	}
	return d.heldKeys[code]
}

// Update runs one frame of the input pipeline and reports whether a
// quit was requested. The flag is informational; the caller decides
// whether to actually terminate.
func (d *Dispatcher) Update() bool {
	quit := false

	for _, raw := range d.source.Drain() {
		switch raw.Kind {
		case RawQuit:
			quit = true
		case RawKeyDown:
			if d.handleKeyDown(raw.Code) {
				quit = true
			}
		case RawKeyUp:
			if d.handleKeyUp(raw.Code) {
				quit = true
			}
		case RawMouseMove:
			d.handleMouseMove(raw.X, raw.Y)
		case RawMouseButton:
			d.handleMouseButton(raw)
		}
	}

	// Re-emit a Pressed event for every held key. This runs every
	// frame regardless of new device events, so continuous-press
	// semantics do not depend on OS key repeat.
	for k := key.Code(0); k < key.MaxCode; k++ {
		if d.heldKeys[k] {
			d.events = append(d.events, NewKeyEvent(key.StatePressed, k))
		}
	}

	remaining := d.events
	for _, c := range d.consumers {
		remaining = c.HandleInput(remaining)
		if len(remaining) == 0 {
			break
		}
	}

	if d.bindings != nil && d.runner != nil {
		d.bindings.Dispatch(remaining, d.runner, func(e Event, err error) {
			d.log.Error("binding for %s failed: %v", e.String(), err)
		})
	}

	d.fadePointer()

	d.events = d.events[:0]
	return quit
}

func (d *Dispatcher) handleKeyDown(code key.Code) bool {
	if code == d.quitKey {
		return true
	}
	if !code.Valid() {
		return false
	}
	d.events = append(d.events, NewKeyEvent(key.StateDown, code))
	// Typed synthesis rides the down edge: the device layer repeats
	// down events at its own repeat rate, so one Typed per edge is
	// the right cadence for text entry.
	shift := d.heldKeys[key.LeftShift] || d.heldKeys[key.RightShift]
	d.events = append(d.events, NewKeyEvent(key.StateTyped, key.Typed(code, shift)))
	d.heldKeys[code] = true
	return false
}

func (d *Dispatcher) handleKeyUp(code key.Code) bool {
	if code == d.quitKey {
		return true
	}
	if !code.Valid() {
		return false
	}
	d.events = append(d.events, NewKeyEvent(key.StateUp, code))
	d.heldKeys[code] = false
	return false
}

func (d *Dispatcher) handleMouseMove(x, y int) {
	d.events = append(d.events, NewMouseEvent(MouseMove, x, y))
	d.showPointer()
	d.lastPointerMove = d.now()
}

func (d *Dispatcher) handleMouseButton(raw RawEvent) {
	state, ok := mapButton(raw.Button, raw.Up)
	if !ok {
		return
	}
	d.events = append(d.events, NewMouseEvent(state, raw.X, raw.Y))
}

func (d *Dispatcher) fadePointer() {
	if !d.pointerVisible {
		return
	}
	if d.uiActive != nil && d.uiActive() {
		return
	}
	if d.now().Sub(d.lastPointerMove) <= d.pointerFade {
		return
	}
	if pc, ok := d.source.(PointerController); ok {
		pc.HidePointer()
	}
	d.pointerVisible = false
}

func (d *Dispatcher) showPointer() {
	if d.pointerVisible {
		return
	}
	if pc, ok := d.source.(PointerController); ok {
		pc.ShowPointer()
	}
	d.pointerVisible = true
}
