package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the tracker rejected the token.
	ErrUnauthorized = errors.New("tracker rejected credentials")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrUnavailable indicates the tracker could not be reached.
	ErrUnavailable = errors.New("tracker unreachable")
)

// StatusError carries a non-2xx response verbatim so callers can surface
// the tracker's own error text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tracker returned status %d: %s", e.Code, e.Body)
}
