package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnw-map/internal/domain/model"
)

func TestCentroid(t *testing.T) {
	center, err := Centroid([]model.LatLng{
		{Lat: 41.0, Lng: -87.0},
		{Lat: 42.0, Lng: -87.0},
		{Lat: 41.5, Lng: -88.5},
	})
	require.NoError(t, err)
	assert.InDelta(t, 41.5, center.Lat, 1e-9)
	assert.InDelta(t, -87.5, center.Lng, 1e-9)

	_, err = Centroid([]model.LatLng{{Lat: 41.0, Lng: -87.0}})
	assert.Error(t, err)
}

func TestHaversineDistance(t *testing.T) {
	// Gyte to SULB is a short walk across campus.
	d := HaversineDistance(41.5854, -87.4747, 41.5843, -87.4740)
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 200.0)

	assert.InDelta(t, 0.0, HaversineDistance(41.58, -87.47, 41.58, -87.47), 0.01)

	// One degree of latitude is roughly 111km.
	d = HaversineDistance(41.0, -87.47, 42.0, -87.47)
	assert.InDelta(t, 111195, d, 500)
}
