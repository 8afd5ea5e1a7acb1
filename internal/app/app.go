// Package app wires the engine subsystems together and owns the frame
// loop.
package app

import (
	"fmt"
	"os"
	"sync"
	"time"

	"stardrift/internal/camera"
	"stardrift/internal/console"
	"stardrift/internal/hud"
	"stardrift/internal/input"
	"stardrift/internal/input/key"
	"stardrift/internal/logging"
	"stardrift/internal/options"
	"stardrift/internal/script"
	"stardrift/internal/script/api"
	"stardrift/internal/script/watcher"
	"stardrift/internal/sim"
	"stardrift/internal/sprite"
	"stardrift/internal/ui"
	"stardrift/internal/world"
)

// DefaultFrameInterval paces the frame loop when the terminal has no
// vsync to follow.
const DefaultFrameInterval = 16 * time.Millisecond

// Options configures the application.
type Options struct {
	// OptionsPath is the options file to load. Empty skips loading and
	// runs on defaults.
	OptionsPath string

	// ScriptPath overrides the main script from the options store.
	ScriptPath string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// Debug forces debug logging.
	Debug bool

	// WatchScripts reloads the main script when it changes on disk.
	WatchScripts bool
}

// App is the assembled engine: input pipeline, script runtime, and the
// frame-thread subsystems they drive.
type App struct {
	log     *logging.Logger
	opts    Options
	options *options.Store

	world   *world.World
	sprites *sprite.Manager
	camera  *camera.Camera
	sim     *sim.Simulation
	hud     *hud.HUD
	ui      *ui.UI
	console *console.Console

	bindings   *input.Bindings
	runtime    *script.Runtime
	watch      *watcher.Watcher
	dispatcher *input.Dispatcher
	source     input.EventSource

	mu      sync.Mutex
	stopped bool
	stop    chan struct{}
}

// New assembles the application. The event source is attached
// separately through SetSource so tests can drive the pipeline with a
// synthetic one.
func New(opts Options) (*App, error) {
	level := logging.ParseLevel(opts.LogLevel)
	if opts.Debug {
		level = logging.LevelDebug
	}
	log := logging.New(logging.Config{Level: level, Output: os.Stderr, Prefix: "stardrift"})

	store := options.NewStore()
	if opts.OptionsPath != "" {
		if err := store.Load(opts.OptionsPath); err != nil {
			return nil, err
		}
	}
	if err := seedDefaults(store); err != nil {
		return nil, err
	}

	a := &App{
		log:      log,
		opts:     opts,
		options:  store,
		world:    world.New(),
		sprites:  sprite.NewManager(),
		sim:      sim.New(),
		hud:      hud.New(),
		ui:       ui.New(),
		bindings: input.NewBindings(),
		stop:     make(chan struct{}),
	}
	a.camera = camera.New(a.sprites)

	ctx := &api.Context{
		Log:      log,
		Sprites:  a.sprites,
		World:    a.world,
		Camera:   a.camera,
		Sim:      a.sim,
		Options:  store,
		HUD:      a.hud,
		Bindings: a.bindings,
	}
	a.runtime = script.New(log, api.Default(ctx)...)
	a.console = console.New(a.runtime, log)
	ctx.Console = a.console

	if opts.WatchScripts {
		w, err := watcher.New(log)
		if err != nil {
			return nil, err
		}
		a.watch = w
	}

	return a, nil
}

// SetSource attaches the device event source and builds the input
// pipeline around it. Must be called before Run.
func (a *App) SetSource(source input.EventSource) {
	a.source = source
	a.dispatcher = input.NewDispatcher(source, a.bindings, a.runtime, a.log,
		input.WithQuitKey(key.Lookup(a.options.Get(optQuitKey))),
		input.WithPointerFade(a.options.GetDuration(optMouseFade, input.DefaultPointerFade)),
		input.WithUIActive(a.ui.Active),
	)
	a.dispatcher.Chain(a.ui, a.console, a.hud)
}

// Console exposes the command console for the render layer.
func (a *App) Console() *console.Console {
	return a.console
}

// Runtime exposes the script runtime.
func (a *App) Runtime() *script.Runtime {
	return a.runtime
}

// LoadMainScript loads the configured main script, watching it for
// changes when hot reload is on. A missing script is not fatal; the
// engine runs with whatever bindings are already registered.
func (a *App) LoadMainScript() error {
	path := a.opts.ScriptPath
	if path == "" {
		path = a.options.Get(optMainScript)
	}
	if path == "" {
		return nil
	}
	if err := a.runtime.Load(path); err != nil {
		return err
	}
	if a.watch != nil {
		if err := a.watch.Watch(path); err != nil {
			a.log.Warn("script reload unavailable: %v", err)
		}
	}
	return nil
}

// Step runs one frame: script reloads, the input pipeline, and the
// per-frame subsystem updates. Returns ErrQuit when the user asked to
// exit.
func (a *App) Step() error {
	if a.dispatcher == nil {
		return fmt.Errorf("no event source attached")
	}

	if a.watch != nil {
		for _, path := range a.watch.Pending() {
			if err := a.runtime.Load(path); err != nil {
				a.log.Error("reload %s: %v", path, err)
			}
		}
	}

	quit := a.dispatcher.Update()

	if !a.sim.IsPaused() {
		a.camera.Update()
	}
	a.hud.Update()

	if quit {
		return ErrQuit
	}
	return nil
}

// Run drives the frame loop until quit or Shutdown.
func (a *App) Run() error {
	ticker := time.NewTicker(DefaultFrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stop:
			return ErrQuit
		case <-ticker.C:
			if err := a.Step(); err != nil {
				return err
			}
		}
	}
}

// Shutdown stops the frame loop and releases the runtime, the script
// watcher, and the event source. Safe to call more than once.
func (a *App) Shutdown() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	close(a.stop)
	a.mu.Unlock()

	if a.watch != nil {
		if err := a.watch.Close(); err != nil {
			a.log.Warn("close watcher: %v", err)
		}
	}
	if a.runtime.Initialized() {
		if err := a.runtime.Close(); err != nil {
			a.log.Warn("close runtime: %v", err)
		}
	}
	if closer, ok := a.source.(interface{ Close() }); ok {
		closer.Close()
	}
}
