// Package options is the engine's path-keyed configuration store.
//
// Options live in a single JSON document addressed by slash paths such
// as "timing/mouse-fade". Values are stored as strings, matching the
// script-facing getoption/setoption contract; typed accessors parse on
// the way out. The store can load from and save to a file, and is
// seeded with defaults at startup.
package options

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Store holds the options document. Frame-thread only.
type Store struct {
	doc []byte
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{doc: []byte("{}")}
}

// jsonPath converts the engine's slash paths to gjson dot paths.
func jsonPath(path string) string {
	return strings.ReplaceAll(path, "/", ".")
}

// Get returns the value at path, or "" when unset.
func (s *Store) Get(path string) string {
	return gjson.GetBytes(s.doc, jsonPath(path)).String()
}

// Has reports whether path is set.
func (s *Store) Has(path string) bool {
	return gjson.GetBytes(s.doc, jsonPath(path)).Exists()
}

// Set writes value at path, creating intermediate objects as needed.
func (s *Store) Set(path, value string) error {
	doc, err := sjson.SetBytes(s.doc, jsonPath(path), value)
	if err != nil {
		return fmt.Errorf("set option %q: %w", path, err)
	}
	s.doc = doc
	return nil
}

// Default writes value at path only if the path is unset. Used to seed
// the store without clobbering loaded configuration.
func (s *Store) Default(path, value string) error {
	if s.Has(path) {
		return nil
	}
	return s.Set(path, value)
}

// GetInt returns the value at path parsed as an integer, or fallback
// when unset or unparsable.
func (s *Store) GetInt(path string, fallback int) int {
	v := s.Get(path)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetBool returns the value at path parsed as a boolean, or fallback
// when unset or unparsable.
func (s *Store) GetBool(path string, fallback bool) bool {
	v := s.Get(path)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// GetDuration returns the value at path interpreted as milliseconds,
// or fallback when unset or unparsable.
func (s *Store) GetDuration(path string, fallback time.Duration) time.Duration {
	v := s.Get(path)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// Load replaces the document with the contents of the file at path.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("load options: %s is not valid JSON", path)
	}
	s.doc = data
	return nil
}

// Save writes the document to the file at path.
func (s *Store) Save(path string) error {
	if err := os.WriteFile(path, s.doc, 0o644); err != nil {
		return fmt.Errorf("save options: %w", err)
	}
	return nil
}

// Document returns the raw JSON document.
func (s *Store) Document() []byte {
	out := make([]byte, len(s.doc))
	copy(out, s.doc)
	return out
}
