package application

import (
	"context"
	"errors"
	"fmt"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/domain/service"
)

// BuildingsService merges the static region table with stored building
// metadata into the presentation view.
type BuildingsService interface {
	// List returns every campus building in region priority order.
	List(ctx context.Context) ([]model.BuildingInfo, error)

	// Get returns one building by region name or id, with fallback
	// defaults when the store has no metadata row for it.
	Get(ctx context.Context, name string) (*model.BuildingInfo, error)

	// FloorPlan returns the plan image for a building floor.
	FloorPlan(ctx context.Context, buildingID string, level int) ([]byte, error)
}

type buildingsServiceImpl struct {
	resolver      *service.GeofenceResolver
	buildingsRepo repository.BuildingsRepository
	storage       repository.FloorPlanStorage
}

// NewBuildingsService creates the service.
func NewBuildingsService(resolver *service.GeofenceResolver, buildingsRepo repository.BuildingsRepository, storage repository.FloorPlanStorage) BuildingsService {
	return &buildingsServiceImpl{
		resolver:      resolver,
		buildingsRepo: buildingsRepo,
		storage:       storage,
	}
}

func (s *buildingsServiceImpl) List(ctx context.Context) ([]model.BuildingInfo, error) {
	var infos []model.BuildingInfo
	for _, region := range s.resolver.Regions() {
		info, err := s.merge(ctx, region)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

func (s *buildingsServiceImpl) Get(ctx context.Context, name string) (*model.BuildingInfo, error) {
	for _, region := range s.resolver.Regions() {
		if region.Name == name || region.ID == name {
			return s.merge(ctx, region)
		}
	}
	return nil, fmt.Errorf("building %s: %w", name, model.ErrNotFound)
}

func (s *buildingsServiceImpl) FloorPlan(ctx context.Context, buildingID string, level int) ([]byte, error) {
	return s.storage.Download(ctx, buildingID, level)
}

func (s *buildingsServiceImpl) merge(ctx context.Context, region model.Region) (*model.BuildingInfo, error) {
	center, ok := s.resolver.Center(region.Name)
	if !ok {
		return nil, fmt.Errorf("no centroid for region %s", region.Name)
	}

	record, err := s.buildingsRepo.GetByName(ctx, region.Name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Metadata is optional; fall back to region defaults.
			record = nil
		} else {
			return nil, err
		}
	}

	info := model.MergeBuildingInfo(region, record, center)
	return &info, nil
}
