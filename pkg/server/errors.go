package server

import "errors"

// Common errors for the server package.
var (
	// ErrAlreadyStarted indicates Start was called twice.
	ErrAlreadyStarted = errors.New("server already started")
	// ErrNotStarted indicates the server was never started.
	ErrNotStarted = errors.New("server not started")
)
