package repository

import (
	"context"

	"pnw-map/internal/domain/model"
)

// BuildingsRepository reads building metadata from the external store.
type BuildingsRepository interface {
	// GetByName returns the record for one building, or model.ErrNotFound
	// when the store has no row for it.
	GetByName(ctx context.Context, name string) (*model.BuildingRecord, error)

	// List returns every building record.
	List(ctx context.Context) ([]model.BuildingRecord, error)
}
