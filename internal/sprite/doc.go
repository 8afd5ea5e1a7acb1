// Package sprite tracks the live entities of a running simulation.
//
// Sprites are registered with a Manager that assigns stable integer
// IDs. The scripting layer never holds sprite pointers: it holds IDs
// and resolves them through the manager at each use, so a removed
// sprite is always seen as "not found" rather than stale data.
package sprite
