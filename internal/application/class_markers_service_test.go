package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/service"
)

type fakeScheduleRepo struct {
	entries []model.ClassScheduleEntry
	listErr error
}

func (r *fakeScheduleRepo) ListByOwner(_ context.Context, ownerID string) ([]model.ClassScheduleEntry, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []model.ClassScheduleEntry
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Create(_ context.Context, entry *model.ClassScheduleEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id string) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no entry %s: %w", id, model.ErrNotFound)
}

func TestClassMarkersService_BuildingMarkers(t *testing.T) {
	resolver, err := service.NewGeofenceResolver(model.CampusRegions())
	require.NoError(t, err)

	repo := &fakeScheduleRepo{entries: []model.ClassScheduleEntry{
		{ID: "1", OwnerID: "user-1", ClassName: "CS 275", Building: "Gyte", Room: "103", Days: "MWF", StartTime: "10:00", EndTime: "10:50"},
		{ID: "2", OwnerID: "user-1", ClassName: "MA 264", Building: "Gyte", Room: "217", Days: "TR", StartTime: "09:00", EndTime: "10:15"},
		{ID: "3", OwnerID: "user-1", ClassName: "COM 114", Building: "SULB", Room: "122", Days: "MW", StartTime: "13:00", EndTime: "14:15"},
		{ID: "4", OwnerID: "someone-else", ClassName: "PHYS 152", Building: "Gyte", Room: "240", Days: "F", StartTime: "08:00", EndTime: "08:50"},
	}}

	svc := NewClassMarkersService(repo, resolver)
	markers, err := svc.BuildingMarkers(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, markers, 2)

	// Markers come back sorted by building name.
	assert.Equal(t, "Gyte", markers[0].Building)
	assert.Equal(t, "SULB", markers[1].Building)

	// Entries within a building sort by start time.
	require.Len(t, markers[0].Entries, 2)
	assert.Equal(t, "MA 264", markers[0].Entries[0].ClassName)
	assert.Equal(t, "CS 275", markers[0].Entries[1].ClassName)

	// Marker position is the building centroid.
	center, ok := resolver.Center("Gyte")
	require.True(t, ok)
	assert.Equal(t, center, markers[0].Position)
}

func TestClassMarkersService_SkipsUnknownBuildings(t *testing.T) {
	resolver, err := service.NewGeofenceResolver(model.CampusRegions())
	require.NoError(t, err)

	repo := &fakeScheduleRepo{entries: []model.ClassScheduleEntry{
		{ID: "1", OwnerID: "user-1", ClassName: "CS 275", Building: "Gyte", StartTime: "10:00"},
		{ID: "2", OwnerID: "user-1", ClassName: "ART 101", Building: "Atlantis Hall", StartTime: "11:00"},
	}}

	svc := NewClassMarkersService(repo, resolver)
	markers, err := svc.BuildingMarkers(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "Gyte", markers[0].Building)
}

func TestClassMarkersService_RepoFailure(t *testing.T) {
	resolver, err := service.NewGeofenceResolver(model.CampusRegions())
	require.NoError(t, err)

	repo := &fakeScheduleRepo{listErr: fmt.Errorf("store down: %w", model.ErrPersistence)}
	svc := NewClassMarkersService(repo, resolver)

	_, err = svc.BuildingMarkers(context.Background(), "user-1")
	assert.ErrorIs(t, err, model.ErrPersistence)
}
