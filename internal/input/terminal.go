package input

import (
	"github.com/gdamore/tcell/v2"

	"stardrift/internal/input/key"
)

// TerminalSource adapts a tcell screen to the EventSource interface.
//
// A pump goroutine blocks on the screen's event queue and forwards into
// a buffered channel; Drain empties that channel without blocking so
// the frame loop never stalls on the platform layer. Terminals do not
// report key releases, so every key event is surfaced as a down edge
// immediately followed by an up edge.
type TerminalSource struct {
	screen         tcell.Screen
	events         chan tcell.Event
	done           chan struct{}
	buttons        tcell.ButtonMask
	lastX, lastY   int
	pointerVisible bool
}

// NewTerminalSource creates and initializes a terminal event source.
func NewTerminalSource() (*TerminalSource, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	s := &TerminalSource{
		screen:         screen,
		events:         make(chan tcell.Event, 128),
		done:           make(chan struct{}),
		lastX:          -1,
		lastY:          -1,
		pointerVisible: true,
	}
	go s.pump()
	return s, nil
}

func (s *TerminalSource) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Drain returns every event that arrived since the previous call.
func (s *TerminalSource) Drain() []RawEvent {
	var out []RawEvent
	for {
		select {
		case ev := <-s.events:
			out = s.translate(ev, out)
		default:
			return out
		}
	}
}

func (s *TerminalSource) translate(ev tcell.Event, out []RawEvent) []RawEvent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			return append(out, RawEvent{Kind: RawQuit})
		}
		code := translateKey(e)
		if code == key.None {
			return out
		}
		// No release reporting from terminals; synthesize the pair.
		out = append(out, RawEvent{Kind: RawKeyDown, Code: code})
		out = append(out, RawEvent{Kind: RawKeyUp, Code: code})
	case *tcell.EventMouse:
		x, y := e.Position()
		out = s.translateMouse(e.Buttons(), x, y, out)
	}
	return out
}

// translateMouse compares the current button mask with the previous
// one to recover press and release edges, which the engine model
// needs and tcell does not report directly.
func (s *TerminalSource) translateMouse(mask tcell.ButtonMask, x, y int, out []RawEvent) []RawEvent {
	buttons := []struct {
		bit tcell.ButtonMask
		btn Button
	}{
		{tcell.Button1, ButtonLeft},
		{tcell.Button2, ButtonMiddle},
		{tcell.Button3, ButtonRight},
	}
	prev := s.buttons
	for _, b := range buttons {
		was := prev&b.bit != 0
		is := mask&b.bit != 0
		switch {
		case is && !was:
			out = append(out, RawEvent{Kind: RawMouseButton, Button: b.btn, Up: false, X: x, Y: y})
		case was && !is:
			out = append(out, RawEvent{Kind: RawMouseButton, Button: b.btn, Up: true, X: x, Y: y})
		}
	}
	s.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown)

	// Wheel notches are momentary; report each as a release edge so
	// the model sees exactly one event per notch.
	if mask&tcell.WheelUp != 0 {
		out = append(out, RawEvent{Kind: RawMouseButton, Button: ButtonWheelUp, Up: true, X: x, Y: y})
	}
	if mask&tcell.WheelDown != 0 {
		out = append(out, RawEvent{Kind: RawMouseButton, Button: ButtonWheelDown, Up: true, X: x, Y: y})
	}

	if x != s.lastX || y != s.lastY {
		out = append(out, RawEvent{Kind: RawMouseMove, X: x, Y: y})
		s.lastX, s.lastY = x, y
	}
	return out
}

func translateKey(e *tcell.EventKey) key.Code {
	switch e.Key() {
	case tcell.KeyRune:
		r := e.Rune()
		c := key.Code(r)
		if c.Printable() {
			return c
		}
		return key.None
	case tcell.KeyEscape:
		return key.Escape
	case tcell.KeyEnter:
		return key.Enter
	case tcell.KeyTab:
		return key.Tab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Backspace
	case tcell.KeyUp:
		return key.Up
	case tcell.KeyDown:
		return key.Down
	case tcell.KeyLeft:
		return key.Left
	case tcell.KeyRight:
		return key.Right
	case tcell.KeyHome:
		return key.Home
	case tcell.KeyEnd:
		return key.End
	case tcell.KeyPgUp:
		return key.PageUp
	case tcell.KeyPgDn:
		return key.PageDown
	case tcell.KeyInsert:
		return key.Insert
	case tcell.KeyDelete:
		return key.Delete
	default:
		return key.None
	}
}

// ShowPointer marks the pointer visible. Terminals do not own the
// pointer glyph, so visibility is advisory; the render layer reads it
// through PointerVisible.
func (s *TerminalSource) ShowPointer() {
	s.pointerVisible = true
}

// HidePointer marks the pointer hidden.
func (s *TerminalSource) HidePointer() {
	s.pointerVisible = false
}

// PointerVisible reports the advisory pointer visibility.
func (s *TerminalSource) PointerVisible() bool {
	return s.pointerVisible
}

// Close stops the pump and releases the screen.
func (s *TerminalSource) Close() {
	close(s.done)
	s.screen.Fini()
}
