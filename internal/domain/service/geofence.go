package service

import (
	"fmt"

	"github.com/paulmach/orb"

	"pnw-map/internal/domain/helper"
	"pnw-map/internal/domain/model"
)

// OutsideCampus is what the resolver reports for a coordinate that falls in
// no region's box.
const OutsideCampus = "Outside"

// GeofenceResolver maps a coordinate to the name of the campus region
// containing it. Containment is an axis-aligned bounding-box test built
// from each region's first and last listed corners, not a true
// point-in-polygon test; points near a diagonal building edge can
// misclassify, which is accepted. Regions are tested in declaration order
// and the first hit wins.
type GeofenceResolver struct {
	regions []model.Region
	bounds  []orb.Bound
	centers []model.LatLng
}

// NewGeofenceResolver precomputes the bounding box and centroid of every
// region. The slice order fixes the match priority for overlapping boxes.
func NewGeofenceResolver(regions []model.Region) (*GeofenceResolver, error) {
	r := &GeofenceResolver{
		regions: regions,
		bounds:  make([]orb.Bound, 0, len(regions)),
		centers: make([]model.LatLng, 0, len(regions)),
	}
	for _, region := range regions {
		if len(region.Corners) < 3 || len(region.Corners) > 4 {
			return nil, fmt.Errorf("region %q has %d corners, want 3 or 4", region.Name, len(region.Corners))
		}
		first := region.Corners[0]
		last := region.Corners[len(region.Corners)-1]
		bound := orb.Bound{
			Min: orb.Point{first.Lng, first.Lat},
			Max: orb.Point{first.Lng, first.Lat},
		}
		bound = bound.Extend(orb.Point{last.Lng, last.Lat})
		r.bounds = append(r.bounds, bound)

		center, err := helper.Centroid(region.Corners)
		if err != nil {
			return nil, fmt.Errorf("region %q centroid: %w", region.Name, err)
		}
		r.centers = append(r.centers, center)
	}
	return r, nil
}

// Resolve returns the name of the first declared region whose box contains
// the coordinate, or OutsideCampus. Pure, O(regions).
func (r *GeofenceResolver) Resolve(lat, lng float64) string {
	point := orb.Point{lng, lat}
	for i, bound := range r.bounds {
		if bound.Contains(point) {
			return r.regions[i].Name
		}
	}
	return OutsideCampus
}

// Nearest returns the region whose centroid is closest to the coordinate
// and the distance to it in meters. Used to enrich an "Outside" answer;
// it does not change what Resolve reports.
func (r *GeofenceResolver) Nearest(lat, lng float64) (string, float64) {
	bestName := ""
	bestDist := -1.0
	for i, center := range r.centers {
		d := helper.HaversineDistance(lat, lng, center.Lat, center.Lng)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestName = r.regions[i].Name
		}
	}
	return bestName, bestDist
}

// Regions returns the region table in priority order.
func (r *GeofenceResolver) Regions() []model.Region {
	return r.regions
}

// Center returns the precomputed centroid for a region name.
func (r *GeofenceResolver) Center(name string) (model.LatLng, bool) {
	for i, region := range r.regions {
		if region.Name == name {
			return r.centers[i], true
		}
	}
	return model.LatLng{}, false
}
