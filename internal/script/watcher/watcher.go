// Package watcher reports script file changes so the app can reload
// them between frames. Filesystem events arrive on fsnotify's
// goroutine; changed paths are queued and drained on the frame thread.
package watcher

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"stardrift/internal/logging"
)

// Watcher accumulates changed script paths.
type Watcher struct {
	log *logging.Logger
	fs  *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]struct{}
	done    chan struct{}
}

// New creates a watcher with no paths under watch.
func New(log *logging.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create script watcher: %w", err)
	}
	w := &Watcher{
		log:     log.WithComponent("watcher"),
		fs:      fs,
		pending: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch adds a script file or directory to the watch set.
func (w *Watcher) Watch(path string) error {
	if err := w.fs.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending[ev.Name] = struct{}{}
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("script watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Pending returns the changed paths seen since the last call and
// clears the queue. Called once per frame.
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.pending))
	for path := range w.pending {
		out = append(out, path)
	}
	w.pending = make(map[string]struct{})
	return out
}

// Close stops watching. The watcher cannot be reused.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
