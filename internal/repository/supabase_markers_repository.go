package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/infrastructure/database"
)

type SupabaseMarkersRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseMarkersRepository(client *database.SupabaseClient) repository.MarkersRepository {
	return &SupabaseMarkersRepository{
		client: client,
	}
}

// markerRow is the markers table shape; the store assigns id and
// created_at.
type markerRow struct {
	ID          string  `json:"id,omitempty"`
	UserID      string  `json:"user_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

func (r *SupabaseMarkersRepository) Create(ctx context.Context, marker *model.Marker) (*model.Marker, error) {
	row := markerRow{
		UserID:      marker.OwnerID,
		Latitude:    marker.Latitude,
		Longitude:   marker.Longitude,
		Description: marker.Description,
		Color:       string(marker.Color),
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal marker: %w", err)
	}

	data, _, err := r.client.GetClient().From("markers").
		Insert(string(payload), false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create marker: %w (%v)", model.ErrPersistence, err)
	}

	var created []model.Marker
	if err := json.Unmarshal([]byte(data), &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created marker: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("store returned no row for created marker: %w", model.ErrPersistence)
	}

	return &created[0], nil
}

func (r *SupabaseMarkersRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Marker, error) {
	var markers []model.Marker
	data, count, err := r.client.GetClient().From("markers").
		Select("*", "exact", false).
		Eq("user_id", ownerID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch markers for user %s: %w (%v)", ownerID, model.ErrPersistence, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &markers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal markers: %w", err)
	}

	return markers, nil
}

func (r *SupabaseMarkersRepository) Delete(ctx context.Context, id string) error {
	data, _, err := r.client.GetClient().From("markers").
		Delete("representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete marker %s: %w (%v)", id, model.ErrPersistence, err)
	}

	var deleted []model.Marker
	if err := json.Unmarshal([]byte(data), &deleted); err != nil {
		return fmt.Errorf("failed to unmarshal deleted marker: %w", err)
	}
	if len(deleted) == 0 {
		return fmt.Errorf("marker %s does not exist: %w", id, model.ErrPersistence)
	}

	return nil
}
