// Package world holds the named entity records the scripting layer
// exposes: ship models, weapons, engines, technologies, alliances, and
// planet descriptions.
//
// Records are plain values stored in name-keyed registries. Mutation
// goes through Replace only: callers construct a full replacement value
// and swap it in, so an entity is never observable in a partially
// updated state within a frame.
package world
