package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/infrastructure/database"
)

type SupabaseBuildingsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseBuildingsRepository(client *database.SupabaseClient) repository.BuildingsRepository {
	return &SupabaseBuildingsRepository{
		client: client,
	}
}

func (r *SupabaseBuildingsRepository) GetByName(ctx context.Context, name string) (*model.BuildingRecord, error) {
	var records []model.BuildingRecord
	data, count, err := r.client.GetClient().From("buildings").
		Select("*", "exact", false).
		Eq("name", name).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch building %s: %w (%v)", name, model.ErrPersistence, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal building: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("building %s: %w", name, model.ErrNotFound)
	}

	return &records[0], nil
}

func (r *SupabaseBuildingsRepository) List(ctx context.Context) ([]model.BuildingRecord, error) {
	var records []model.BuildingRecord
	data, count, err := r.client.GetClient().From("buildings").
		Select("*", "exact", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch buildings: %w (%v)", model.ErrPersistence, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal buildings: %w", err)
	}

	return records, nil
}
