package repository

import (
	"context"
	"fmt"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/infrastructure/database"
)

// SupabaseFloorPlanStorage fetches floor plan images from a Supabase
// storage bucket using the {buildingID}F{level}.png key pattern.
type SupabaseFloorPlanStorage struct {
	client *database.SupabaseClient
	bucket string
}

func NewSupabaseFloorPlanStorage(client *database.SupabaseClient, bucket string) repository.FloorPlanStorage {
	return &SupabaseFloorPlanStorage{
		client: client,
		bucket: bucket,
	}
}

func (s *SupabaseFloorPlanStorage) Download(ctx context.Context, buildingID string, level int) ([]byte, error) {
	key := model.FloorPlanKey(buildingID, level)

	data, err := s.client.GetClient().Storage.DownloadFile(s.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("floor plan %s: %w (%v)", key, model.ErrNotFound, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("floor plan %s is empty: %w", key, model.ErrNotFound)
	}

	return data, nil
}
