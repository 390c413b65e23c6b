package service

import (
	"context"
	"errors"
	"log"
	"time"

	"pnw-map/internal/domain/model"
)

// Fix acquisition parameters, matching how the map page has always asked
// the browser for a position.
const (
	highAccuracyTimeout = 10 * time.Second
	highAccuracyMaxAge  = 5 * time.Second
	lowAccuracyTimeout  = 5 * time.Second
	// accuracyThresholdMeters is the worst accuracy accepted from the
	// high-accuracy attempt before falling back.
	accuracyThresholdMeters = 150.0
)

// User-facing strings for geolocation failures.
const (
	MsgPermissionDenied    = "Please enable location services"
	MsgPositionUnavailable = "Unable to determine location"
	MsgTimeout             = "Location request timed out"
	MsgGenericError        = "Location error occurred"
	MsgInsecureContext     = "Geolocation requires HTTPS or localhost for security reasons."
	MsgNotSupported        = "Geolocation is not supported by this browser."
)

// FixOptions are the parameters for one position request.
type FixOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// LocationProvider is the device geolocation capability the poller wraps.
// CurrentPosition failures are reported as *model.PositionError carrying
// the platform error code.
type LocationProvider interface {
	// Supported reports whether the platform has a geolocation capability
	// at all.
	Supported() bool
	// SecureContext reports whether the page is served over HTTPS or a
	// local loopback, a hard precondition for geolocation.
	SecureContext() bool
	CurrentPosition(ctx context.Context, opts FixOptions) (*model.Position, error)
}

// LocationService acquires a position fix and resolves it to a building
// name. Every request terminates in exactly one callback invocation, with
// either a region name or a user-facing error string; it never panics and
// never retries beyond the single low-accuracy fallback.
type LocationService struct {
	provider LocationProvider
	resolver *GeofenceResolver
}

// NewLocationService creates a LocationService over the given provider and
// resolver.
func NewLocationService(provider LocationProvider, resolver *GeofenceResolver) *LocationService {
	return &LocationService{provider: provider, resolver: resolver}
}

// RequestLocation asynchronously acquires one fix and invokes callback with
// the resolved region name or an error message. Precondition failures
// (insecure context, missing capability) invoke the callback before
// returning and are fatal, no retry. Polling cadence belongs to the
// caller; see Watch.
func (s *LocationService) RequestLocation(ctx context.Context, callback func(string)) {
	if callback == nil {
		return
	}
	if !s.provider.SecureContext() {
		log.Printf("geolocation blocked: %s", MsgInsecureContext)
		callback(MsgInsecureContext)
		return
	}
	if !s.provider.Supported() {
		log.Printf("geolocation blocked: %s", MsgNotSupported)
		callback(MsgNotSupported)
		return
	}

	go func() {
		callback(s.acquire(ctx))
	}()
}

// acquire runs the high-accuracy attempt and the single bounded fallback,
// returning the value for the callback.
func (s *LocationService) acquire(ctx context.Context) string {
	pos, err := s.provider.CurrentPosition(ctx, FixOptions{
		EnableHighAccuracy: true,
		Timeout:            highAccuracyTimeout,
		MaximumAge:         highAccuracyMaxAge,
	})
	if err != nil {
		return errorMessage(err)
	}

	log.Printf("High accuracy location - Lat: %f, Lng: %f, Accuracy: %.0fm", pos.Lat, pos.Lng, pos.AccuracyMeters)
	if pos.AccuracyMeters <= accuracyThresholdMeters {
		return s.resolver.Resolve(pos.Lat, pos.Lng)
	}

	// One fallback at low accuracy, preferring network positioning. Its
	// result is accepted whatever the accuracy; there is never a second
	// fallback.
	pos, err = s.provider.CurrentPosition(ctx, FixOptions{
		EnableHighAccuracy: false,
		Timeout:            lowAccuracyTimeout,
		MaximumAge:         0,
	})
	if err != nil {
		return errorMessage(err)
	}
	log.Printf("Low accuracy location - Lat: %f, Lng: %f, Accuracy: %.0fm", pos.Lat, pos.Lng, pos.AccuracyMeters)
	return s.resolver.Resolve(pos.Lat, pos.Lng)
}

// Watch polls RequestLocation on a fixed interval until ctx is cancelled.
// The first request fires immediately. Deduplicating identical consecutive
// results is the caller's concern.
func (s *LocationService) Watch(ctx context.Context, interval time.Duration, callback func(string)) {
	s.RequestLocation(ctx, callback)
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RequestLocation(ctx, callback)
			}
		}
	}()
}

// errorMessage maps a provider failure to one of the three user-facing
// strings, with a generic default for anything unrecognized.
func errorMessage(err error) string {
	var posErr *model.PositionError
	if errors.As(err, &posErr) {
		switch posErr.Code {
		case model.GeoPermissionDenied:
			return MsgPermissionDenied
		case model.GeoPositionUnavailable:
			return MsgPositionUnavailable
		case model.GeoTimeout:
			return MsgTimeout
		}
	}
	log.Printf("Geolocation error: %v", err)
	return MsgGenericError
}
