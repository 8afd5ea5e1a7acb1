// Package script owns the engine's embedded Lua runtime.
//
// Exactly one Runtime exists per app. It is created Uninitialized and
// initializes lazily on the first Load, Run, or Call; Init installs
// the host-function modules and opens the Lua standard libraries.
// Close tears the interpreter down and the runtime may be initialized
// again afterwards.
//
// All failures crossing the script boundary are converted to logged
// diagnostics plus an ordinary error return. A script error never
// becomes a native fault, and nothing in this package is fatal to the
// process.
package script
