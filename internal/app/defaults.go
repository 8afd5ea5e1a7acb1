package app

import "stardrift/internal/options"

// Option paths the engine reads at startup.
const (
	optMouseFade  = "timing/mouse-fade"
	optQuitKey    = "input/quit-key"
	optMainScript = "scripts/main"
	optLogLevel   = "log/level"
)

// seedDefaults writes the startup defaults without clobbering values
// loaded from the options file.
func seedDefaults(store *options.Store) error {
	defaults := []struct {
		path, value string
	}{
		{optMouseFade, "500"},
		{optQuitKey, "escape"},
		{optMainScript, "scripts/main.lua"},
		{optLogLevel, "info"},
	}
	for _, d := range defaults {
		if err := store.Default(d.path, d.value); err != nil {
			return err
		}
	}
	return nil
}
