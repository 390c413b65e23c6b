package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnw-map/internal/domain/model"
)

// fakeMarkersRepo is an in-memory markers store with switchable failures.
type fakeMarkersRepo struct {
	markers   []model.Marker
	nextID    int
	createErr error
	listErr   error
	deleteErr error
}

func (r *fakeMarkersRepo) Create(_ context.Context, marker *model.Marker) (*model.Marker, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	stored := *marker
	stored.ID = fmt.Sprintf("m-%d", r.nextID)
	r.markers = append(r.markers, stored)
	return &stored, nil
}

func (r *fakeMarkersRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Marker, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []model.Marker
	for _, m := range r.markers {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMarkersRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, m := range r.markers {
		if m.ID == id {
			r.markers = append(r.markers[:i], r.markers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no marker %s: %w", id, model.ErrPersistence)
}

func TestMarkersUseCase_CreateAddsToMirror(t *testing.T) {
	repo := &fakeMarkersRepo{}
	uc := NewMarkersUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", model.LatLng{Lat: 41.5853, Lng: -87.4748}, "study spot", model.ColorGreen)
	require.NoError(t, err)
	assert.Equal(t, "m-1", created.ID)
	assert.Equal(t, "user-1", created.OwnerID)

	mirror := uc.Mirror()
	require.Len(t, mirror, 1)
	assert.Equal(t, "m-1", mirror[0].ID)
	assert.Equal(t, model.ColorGreen, mirror[0].Color)
}

func TestMarkersUseCase_CreateValidation(t *testing.T) {
	uc := NewMarkersUseCase(&fakeMarkersRepo{})
	ctx := context.Background()

	_, err := uc.Create(ctx, "", model.LatLng{}, "desc", model.ColorRed)
	require.ErrorIs(t, err, model.ErrPermission)

	_, err = uc.Create(ctx, "user-1", model.LatLng{}, "   ", model.ColorRed)
	require.Error(t, err)

	assert.Empty(t, uc.Mirror())
}

func TestMarkersUseCase_FailedCreateLeavesMirrorUntouched(t *testing.T) {
	repo := &fakeMarkersRepo{}
	uc := NewMarkersUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", model.LatLng{}, "keeper", model.ColorBlue)
	require.NoError(t, err)

	repo.createErr = fmt.Errorf("store down: %w", model.ErrPersistence)
	_, err = uc.Create(ctx, "user-1", model.LatLng{}, "lost", model.ColorBlue)
	require.Error(t, err)

	mirror := uc.Mirror()
	require.Len(t, mirror, 1)
	assert.Equal(t, "keeper", mirror[0].Description)
}

func TestMarkersUseCase_LoadAllReplacesMirror(t *testing.T) {
	repo := &fakeMarkersRepo{}
	uc := NewMarkersUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", model.LatLng{}, "first", model.ColorRed)
	require.NoError(t, err)
	_, err = uc.Create(ctx, "user-1", model.LatLng{}, "second", model.ColorBlue)
	require.NoError(t, err)
	_, err = uc.Create(ctx, "someone-else", model.LatLng{}, "not mine", model.ColorGreen)
	require.NoError(t, err)

	markers, err := uc.LoadAll(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, "first", markers[0].Description)
	assert.Equal(t, "second", markers[1].Description)
	assert.Len(t, uc.Mirror(), 2)
}

func TestMarkersUseCase_FailedLoadKeepsPriorMirror(t *testing.T) {
	repo := &fakeMarkersRepo{}
	uc := NewMarkersUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", model.LatLng{}, "survivor", model.ColorRed)
	require.NoError(t, err)

	repo.listErr = fmt.Errorf("store down: %w", model.ErrPersistence)
	_, err = uc.LoadAll(ctx, "user-1")
	require.Error(t, err)

	mirror := uc.Mirror()
	require.Len(t, mirror, 1)
	assert.Equal(t, "survivor", mirror[0].Description)
}

func TestMarkersUseCase_DeleteRemovesFromStoreAndMirror(t *testing.T) {
	repo := &fakeMarkersRepo{}
	uc := NewMarkersUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", model.LatLng{}, "temporary", model.ColorBlue)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Empty(t, uc.Mirror())
	assert.Empty(t, repo.markers)
}

func TestMarkersUseCase_DeleteMissingMarker(t *testing.T) {
	repo := &fakeMarkersRepo{}
	uc := NewMarkersUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", model.LatLng{}, "stays put", model.ColorRed)
	require.NoError(t, err)

	err = uc.Delete(ctx, "no-such-id")
	require.ErrorIs(t, err, model.ErrPersistence)
	assert.Len(t, uc.Mirror(), 1)
}

func TestMarkersUseCase_FailedDeleteLeavesMirrorUntouched(t *testing.T) {
	repo := &fakeMarkersRepo{}
	uc := NewMarkersUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", model.LatLng{}, "stuck", model.ColorRed)
	require.NoError(t, err)

	repo.deleteErr = fmt.Errorf("store down: %w", model.ErrPersistence)
	require.Error(t, uc.Delete(ctx, created.ID))

	mirror := uc.Mirror()
	require.Len(t, mirror, 1)
	assert.Equal(t, created.ID, mirror[0].ID)
}

func TestMarkersUseCase_MirrorReturnsCopy(t *testing.T) {
	uc := NewMarkersUseCase(&fakeMarkersRepo{})
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", model.LatLng{}, "original", model.ColorRed)
	require.NoError(t, err)

	mirror := uc.Mirror()
	mirror[0].Description = "tampered"

	assert.Equal(t, "original", uc.Mirror()[0].Description)
}
