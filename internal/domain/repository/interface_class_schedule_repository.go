package repository

import (
	"context"

	"pnw-map/internal/domain/model"
)

// ClassScheduleRepository is the persistence boundary for class schedules.
type ClassScheduleRepository interface {
	// ListByOwner returns every schedule entry owned by ownerID.
	ListByOwner(ctx context.Context, ownerID string) ([]model.ClassScheduleEntry, error)

	// Create persists a new schedule entry.
	Create(ctx context.Context, entry *model.ClassScheduleEntry) error

	// Delete removes the entry with the given id.
	Delete(ctx context.Context, id string) error
}
