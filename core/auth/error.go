package auth

import "fmt"

// Error indicates an API rejected the supplied bearer token (401/403).
// It is fatal: a run cannot proceed against a system it cannot authenticate
// with, so callers abort instead of counting it as a per-device failure.
type Error struct {
	// System is the API that rejected the token.
	System System
	// StatusCode is the HTTP status returned (401 or 403).
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s API rejected the bearer token (status %d)", e.System, e.StatusCode)
}
