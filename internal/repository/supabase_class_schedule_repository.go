package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/infrastructure/database"
)

type SupabaseClassScheduleRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseClassScheduleRepository(client *database.SupabaseClient) repository.ClassScheduleRepository {
	return &SupabaseClassScheduleRepository{
		client: client,
	}
}

func (r *SupabaseClassScheduleRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.ClassScheduleEntry, error) {
	var entries []model.ClassScheduleEntry
	data, count, err := r.client.GetClient().From("class_schedule").
		Select("*", "exact", false).
		Eq("user_id", ownerID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class schedule for user %s: %w (%v)", ownerID, model.ErrPersistence, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal class schedule: %w", err)
	}

	return entries, nil
}

func (r *SupabaseClassScheduleRepository) Create(ctx context.Context, entry *model.ClassScheduleEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule entry: %w", err)
	}

	_, _, err = r.client.GetClient().From("class_schedule").
		Insert(string(payload), false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create schedule entry: %w (%v)", model.ErrPersistence, err)
	}

	return nil
}

func (r *SupabaseClassScheduleRepository) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.GetClient().From("class_schedule").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry %s: %w (%v)", id, model.ErrPersistence, err)
	}

	return nil
}
