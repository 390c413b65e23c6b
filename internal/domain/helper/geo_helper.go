package helper

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"pnw-map/internal/domain/model"
)

const earthRadiusMeters = 6371000.0

// Centroid returns the geometric center of a building footprint. Footprints
// always carry at least three corners.
func Centroid(corners []model.LatLng) (model.LatLng, error) {
	if len(corners) < 3 {
		return model.LatLng{}, fmt.Errorf("need at least 3 corners, got %d", len(corners))
	}
	var totalLat, totalLng float64
	for _, c := range corners {
		totalLat += c.Lat
		totalLng += c.Lng
	}
	n := float64(len(corners))
	return model.LatLng{Lat: totalLat / n, Lng: totalLng / n}, nil
}

// HaversineDistance returns the great-circle distance in meters between two
// coordinates.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	point1 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lng1))
	point2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lng2))

	angle := s1.Angle(s2.ChordAngleBetweenPoints(point1, point2).Angle())

	return angle.Radians() * earthRadiusMeters
}
