package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"stardrift/internal/input"
	"stardrift/internal/input/key"
)

type fakeSource struct {
	frames [][]input.RawEvent
}

func (s *fakeSource) Drain() []input.RawEvent {
	if len(s.frames) == 0 {
		return nil
	}
	frame := s.frames[0]
	s.frames = s.frames[1:]
	return frame
}

func (s *fakeSource) push(events ...input.RawEvent) {
	s.frames = append(s.frames, events)
}

func newTestApp(t *testing.T, opts Options) (*App, *fakeSource) {
	t.Helper()
	opts.LogLevel = "error"
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src := &fakeSource{}
	a.SetSource(src)
	t.Cleanup(a.Shutdown)
	return a, src
}

func TestScriptBindingDrivesSimulation(t *testing.T) {
	a, src := newTestApp(t, Options{})

	err := a.Runtime().Run(`Stardrift.RegisterKey("p", Stardrift.KEYDOWN, "Stardrift.pause()")`)
	if err != nil {
		t.Fatalf("RegisterKey: %v", err)
	}

	src.push(
		input.RawEvent{Kind: input.RawKeyDown, Code: 'p'},
		input.RawEvent{Kind: input.RawKeyUp, Code: 'p'},
	)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !a.sim.IsPaused() {
		t.Error("bound key should have paused the simulation")
	}
}

func TestQuitKeyEndsFrameLoop(t *testing.T) {
	a, src := newTestApp(t, Options{})

	src.push(input.RawEvent{Kind: input.RawKeyDown, Code: key.Escape})
	err := a.Step()
	if !errors.Is(err, ErrQuit) {
		t.Errorf("Step = %v, want ErrQuit", err)
	}
}

func TestConfiguredQuitKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.json")
	if err := os.WriteFile(path, []byte(`{"input":{"quit-key":"q"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	a, src := newTestApp(t, Options{OptionsPath: path})

	src.push(input.RawEvent{Kind: input.RawKeyDown, Code: key.Escape})
	if err := a.Step(); errors.Is(err, ErrQuit) {
		t.Fatal("escape should not quit with a configured quit key")
	}

	src.push(input.RawEvent{Kind: input.RawKeyDown, Code: 'q'})
	if err := a.Step(); !errors.Is(err, ErrQuit) {
		t.Errorf("Step = %v, want ErrQuit on configured key", err)
	}
}

func TestConsoleClaimsInputFromBindings(t *testing.T) {
	a, src := newTestApp(t, Options{})

	err := a.Runtime().Run(`Stardrift.RegisterKey("p", Stardrift.KEYTYPED, "Stardrift.pause()")`)
	if err != nil {
		t.Fatalf("RegisterKey: %v", err)
	}

	// Open the console, then type p: the console must swallow it.
	src.push(
		input.RawEvent{Kind: input.RawKeyDown, Code: '`'},
		input.RawEvent{Kind: input.RawKeyUp, Code: '`'},
	)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !a.console.Open() {
		t.Fatal("console should be open")
	}

	src.push(
		input.RawEvent{Kind: input.RawKeyDown, Code: 'p'},
		input.RawEvent{Kind: input.RawKeyUp, Code: 'p'},
	)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.sim.IsPaused() {
		t.Error("binding should not fire while the console is open")
	}
	if a.console.Line() != "p" {
		t.Errorf("console line = %q, want p", a.console.Line())
	}
}

func TestLoadMainScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lua")
	script := `Stardrift.RegisterKey("k", Stardrift.KEYDOWN, "Stardrift.pause()")`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	a, src := newTestApp(t, Options{ScriptPath: path})
	if err := a.LoadMainScript(); err != nil {
		t.Fatalf("LoadMainScript: %v", err)
	}

	src.push(input.RawEvent{Kind: input.RawKeyDown, Code: 'k'})
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !a.sim.IsPaused() {
		t.Error("script-registered binding should fire")
	}
}

func TestStepWithoutSource(t *testing.T) {
	a, err := New(Options{LogLevel: "error"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Shutdown()
	if err := a.Step(); err == nil {
		t.Error("Step without a source should fail")
	}
}
