package application

import (
	"context"
	"fmt"
	"log"
	"sort"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/domain/service"
)

// ClassMarkersService derives the read-only "class marker per building"
// projection: one synthetic marker for every building that has at least one
// schedule entry for the user.
type ClassMarkersService interface {
	BuildingMarkers(ctx context.Context, ownerID string) ([]model.ClassMarker, error)
}

type classMarkersServiceImpl struct {
	scheduleRepo repository.ClassScheduleRepository
	resolver     *service.GeofenceResolver
}

// NewClassMarkersService creates the projection service.
func NewClassMarkersService(scheduleRepo repository.ClassScheduleRepository, resolver *service.GeofenceResolver) ClassMarkersService {
	return &classMarkersServiceImpl{
		scheduleRepo: scheduleRepo,
		resolver:     resolver,
	}
}

func (s *classMarkersServiceImpl) BuildingMarkers(ctx context.Context, ownerID string) ([]model.ClassMarker, error) {
	entries, err := s.scheduleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load class schedule: %w", err)
	}

	byBuilding := make(map[string][]model.ClassScheduleEntry)
	for _, entry := range entries {
		byBuilding[entry.Building] = append(byBuilding[entry.Building], entry)
	}

	var markers []model.ClassMarker
	for building, group := range byBuilding {
		center, ok := s.resolver.Center(building)
		if !ok {
			// A schedule row naming an unknown building has no footprint
			// to pin to; skip it rather than drop the whole projection.
			log.Printf("class schedule references unknown building %q, skipping", building)
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if group[i].StartTime != group[j].StartTime {
				return group[i].StartTime < group[j].StartTime
			}
			return group[i].ClassName < group[j].ClassName
		})
		markers = append(markers, model.ClassMarker{
			Building: building,
			Position: center,
			Entries:  group,
		})
	}

	sort.Slice(markers, func(i, j int) bool { return markers[i].Building < markers[j].Building })
	return markers, nil
}
