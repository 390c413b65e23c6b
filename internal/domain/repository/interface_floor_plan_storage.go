package repository

import "context"

// FloorPlanStorage fetches floor plan raster images from object storage.
// Keys follow the {buildingID}F{level}.png pattern.
type FloorPlanStorage interface {
	// Download returns the image bytes for a building floor, or
	// model.ErrNotFound when no plan exists for that key.
	Download(ctx context.Context, buildingID string, level int) ([]byte, error)
}
