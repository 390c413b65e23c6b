package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/metrics"
)

// MarkersUseCase is the marker lifecycle manager. It owns the in-memory
// mirror of persisted pins; the mirror is only reachable through these
// operations and always reflects the last successful sync with the store.
type MarkersUseCase interface {
	// Create persists a new marker, then adds it to the mirror. The
	// returned marker carries the id the store assigned.
	Create(ctx context.Context, ownerID string, coords model.LatLng, description string, color model.MarkerColor) (*model.Marker, error)

	// LoadAll replaces the whole mirror with the store's markers for the
	// owner. On a read failure the prior mirror is left unchanged.
	LoadAll(ctx context.Context, ownerID string) ([]model.Marker, error)

	// Delete removes a marker from the store, then from the mirror.
	// Confirmation is a UI concern and is not enforced here. A failed
	// store delete leaves the mirror untouched.
	Delete(ctx context.Context, markerID string) error

	// Mirror returns a copy of the current mirror, in store order as of
	// the last successful sync.
	Mirror() []model.Marker
}

type markersUseCaseImpl struct {
	repo repository.MarkersRepository

	// mu serializes every store-then-mirror sequence. A LoadAll and a
	// Delete can no longer interleave, which resolves the historical race
	// where a delete landed after a stale reload repopulated the mirror.
	mu     sync.Mutex
	mirror []model.Marker
}

// NewMarkersUseCase creates the lifecycle manager over a markers
// repository.
func NewMarkersUseCase(repo repository.MarkersRepository) MarkersUseCase {
	return &markersUseCaseImpl{
		repo: repo,
	}
}

func (u *markersUseCaseImpl) Create(ctx context.Context, ownerID string, coords model.LatLng, description string, color model.MarkerColor) (*model.Marker, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("marker owner is required: %w", model.ErrPermission)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("marker description is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Store first, mirror second. The mirror never claims a success the
	// store did not confirm.
	created, err := u.repo.Create(ctx, &model.Marker{
		OwnerID:     ownerID,
		Latitude:    coords.Lat,
		Longitude:   coords.Lng,
		Description: description,
		Color:       color,
	})
	if err != nil {
		metrics.MarkerOperations.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	u.mirror = append(u.mirror, *created)
	metrics.MarkerOperations.WithLabelValues("create", "ok").Inc()
	return created, nil
}

func (u *markersUseCaseImpl) LoadAll(ctx context.Context, ownerID string) ([]model.Marker, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	markers, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		metrics.MarkerOperations.WithLabelValues("load", "error").Inc()
		// No partial overwrite: the prior mirror stays as it was.
		return nil, err
	}

	u.mirror = make([]model.Marker, len(markers))
	copy(u.mirror, markers)
	metrics.MarkerOperations.WithLabelValues("load", "ok").Inc()
	return u.snapshot(), nil
}

func (u *markersUseCaseImpl) Delete(ctx context.Context, markerID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.repo.Delete(ctx, markerID); err != nil {
		metrics.MarkerOperations.WithLabelValues("delete", "error").Inc()
		return err
	}

	for i, m := range u.mirror {
		if m.ID == markerID {
			u.mirror = append(u.mirror[:i], u.mirror[i+1:]...)
			break
		}
	}
	metrics.MarkerOperations.WithLabelValues("delete", "ok").Inc()
	return nil
}

func (u *markersUseCaseImpl) Mirror() []model.Marker {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot()
}

// snapshot copies the mirror so callers can never mutate it. Callers hold
// mu.
func (u *markersUseCaseImpl) snapshot() []model.Marker {
	out := make([]model.Marker, len(u.mirror))
	copy(out, u.mirror)
	return out
}
