package model

import "time"

// LatLng is the basic latitude/longitude pair used across the map features.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Position is a single geolocation fix reported by a device. Ephemeral,
// never persisted.
type Position struct {
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	CapturedAt     time.Time `json:"captured_at"`
}

// Region is a named campus building footprint approximated by a small
// polygon of 3 or 4 corners, listed in a fixed order. Regions are defined
// once at process start and never mutated.
type Region struct {
	// ID is the short building code used for storage keys ("GYTE" ->
	// GYTEF1.png).
	ID string `json:"id"`
	// Name is what the resolver reports ("Gyte").
	Name string `json:"name"`
	// Corners are ordered; the first and last entries define the bounding
	// box used for containment.
	Corners []LatLng `json:"corners"`
}

// Geolocation error codes, mirroring the W3C GeolocationPositionError
// constants reported by devices.
const (
	GeoPermissionDenied    = 1
	GeoPositionUnavailable = 2
	GeoTimeout             = 3
)

// PositionError is the failure a location provider reports for a fix
// request. Code carries the platform error code.
type PositionError struct {
	Code    int
	Message string
}

func (e *PositionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "position error"
}
