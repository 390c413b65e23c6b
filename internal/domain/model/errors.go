package model

import "errors"

// Error taxonomy for the map features. Callers convert these to user-facing
// strings or alerts at the boundary; none of them escape a handler
// unhandled.
var (
	// ErrPermission covers geolocation denial and unauthenticated write
	// attempts.
	ErrPermission = errors.New("permission denied")
	// ErrUnavailable covers an unreachable external service or an
	// undeterminable position.
	ErrUnavailable = errors.New("unavailable")
	// ErrTimeout covers a location fix that did not arrive in time.
	ErrTimeout = errors.New("timed out")
	// ErrPersistence covers a rejected store read/write/delete.
	ErrPersistence = errors.New("persistence failure")
	// ErrNotFound covers a missing floor plan or record.
	ErrNotFound = errors.New("not found")
)
