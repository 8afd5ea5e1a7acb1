package app

import "errors"

// ErrQuit signals a user-requested exit. Run returns it so main can
// tell a normal quit from a failure.
var ErrQuit = errors.New("quit requested")
