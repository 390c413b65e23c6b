package repository

import (
	"context"

	"pnw-map/internal/domain/model"
)

// MarkersRepository is the persistence boundary for user-placed pins. All
// reads are scoped to a single owner; the store enforces the same scoping
// with row-level security.
type MarkersRepository interface {
	// Create persists a new marker and returns it with the id and
	// created_at the store assigned.
	Create(ctx context.Context, marker *model.Marker) (*model.Marker, error)

	// ListByOwner returns every marker owned by ownerID.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Marker, error)

	// Delete removes the marker with the given id. Deleting an id the
	// store does not have is an error.
	Delete(ctx context.Context, id string) error
}
