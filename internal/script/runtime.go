package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"stardrift/internal/logging"
)

// Module installs a set of host functions into the Lua state.
// Implementations live in the api package; the runtime only knows how
// to register them at Init.
type Module interface {
	// Name identifies the module in diagnostics.
	Name() string

	// Register installs the module's functions into the Lua state.
	Register(L *lua.LState) error
}

// Runtime is the embedded Lua interpreter and its lifecycle. One
// Runtime per app; frame-thread only. See the package comment for the
// state machine.
type Runtime struct {
	log     *logging.Logger
	modules []Module

	L           *lua.LState
	initialized bool
}

// New creates an Uninitialized runtime. The modules are installed on
// every (re-)initialization.
func New(log *logging.Logger, modules ...Module) *Runtime {
	return &Runtime{
		log:     log.WithComponent("script"),
		modules: modules,
	}
}

// Initialized reports whether the interpreter is up.
func (r *Runtime) Initialized() bool {
	return r.initialized
}

// Init creates the interpreter, opens the Lua standard libraries, and
// installs the host-function modules. Initializing an already
// initialized runtime is an error and leaves it untouched.
func (r *Runtime) Init() error {
	if r.initialized {
		r.log.Warn("cannot initialize the script runtime: already initialized")
		return ErrAlreadyInitialized
	}

	L := lua.NewState()
	for _, mod := range r.modules {
		if err := mod.Register(L); err != nil {
			L.Close()
			return fmt.Errorf("register module %q: %w", mod.Name(), err)
		}
	}

	r.L = L
	r.initialized = true
	return nil
}

// Close tears down the interpreter. The runtime may be initialized
// again afterwards.
func (r *Runtime) Close() error {
	if !r.initialized {
		r.log.Warn("cannot close the script runtime: not initialized")
		return ErrNotInitialized
	}
	r.L.Close()
	r.L = nil
	r.initialized = false
	return nil
}

// ensure lazily initializes the runtime for Load, Run, and Call.
func (r *Runtime) ensure() error {
	if r.initialized {
		return nil
	}
	if err := r.Init(); err != nil {
		r.log.Warn("unable to initialize the script runtime: %v", err)
		return err
	}
	return nil
}

// Load parses and executes the script file at path in one step. The
// interpreter's own diagnostic is logged and returned on failure; the
// state needs no external cleanup afterwards.
func (r *Runtime) Load(path string) error {
	if err := r.ensure(); err != nil {
		return err
	}
	if err := r.do(func() error { return r.L.DoFile(path) }); err != nil {
		r.log.Error("error loading %q: %v", path, err)
		return fmt.Errorf("load %s: %w", path, err)
	}
	r.log.Info("loaded script %q", path)
	return nil
}

// Run executes an ad-hoc chunk of script source. Used for console
// lines and key-binding commands; if the chunk is known at compile
// time, prefer Call.
func (r *Runtime) Run(source string) error {
	if err := r.ensure(); err != nil {
		return err
	}
	if err := r.do(func() error { return r.L.DoString(source) }); err != nil {
		r.log.Error("error running %q: %v", source, err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// Call invokes the named global function with a typed argument list
// and returns its results. A missing or non-function global is an
// error; result type mismatches surface through the Results getters.
func (r *Runtime) Call(fn string, args ...Arg) (Results, error) {
	if err := r.ensure(); err != nil {
		return Results{}, err
	}

	fnVal := r.L.GetGlobal(fn)
	if fnVal == lua.LNil {
		return Results{}, fmt.Errorf("call %s: function not found", fn)
	}
	if fnVal.Type() != lua.LTFunction {
		return Results{}, fmt.Errorf("call %s: %s is not a function", fn, fnVal.Type())
	}

	stackTop := r.L.GetTop()
	r.L.Push(fnVal)
	for _, a := range args {
		r.L.Push(a.lvalue())
	}

	if err := r.do(func() error { return r.L.PCall(len(args), lua.MultRet, nil) }); err != nil {
		r.log.Error("error calling %q: %v", fn, err)
		return Results{}, fmt.Errorf("call %s: %w", fn, err)
	}

	nret := r.L.GetTop() - stackTop
	if nret <= 0 {
		return Results{}, nil
	}
	vals := make([]lua.LValue, nret)
	for i := 0; i < nret; i++ {
		vals[i] = r.L.Get(stackTop + i + 1)
	}
	r.L.Pop(nret)
	return Results{vals: vals}, nil
}

// State exposes the underlying interpreter for tests and wiring that
// must reach past the bridge. Frame-thread only.
func (r *Runtime) State() *lua.LState {
	return r.L
}

// do executes fn, converting interpreter panics into errors so a
// script failure can never unwind the frame loop.
func (r *Runtime) do(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn()
}
