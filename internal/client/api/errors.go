package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached at all. Callers use it to switch to cached data.
	ErrUnavailable = errors.New("server unavailable")
)
