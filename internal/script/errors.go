package script

import "errors"

// Errors for runtime lifecycle operations.
var (
	// ErrAlreadyInitialized is returned by Init when the runtime is
	// already up. Only one interpreter may exist at a time.
	ErrAlreadyInitialized = errors.New("script runtime is already initialized")

	// ErrNotInitialized is returned by Close when there is nothing to
	// tear down.
	ErrNotInitialized = errors.New("script runtime is not initialized")
)
