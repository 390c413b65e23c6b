package model

import "fmt"

// Floor is one level of a building that may have a plan image on file.
type Floor struct {
	Level    int    `json:"level"`
	Name     string `json:"name"`
	ImageRef string `json:"image_ref,omitempty"`
}

// BuildingRecord is the buildings table row kept in the external store.
// Floors is a count; the levels themselves are derived.
type BuildingRecord struct {
	Name         string `json:"name" db:"name"`
	DisplayName  string `json:"display_name" db:"display_name"`
	Floors       int    `json:"floors" db:"floors"`
	Description  string `json:"desc" db:"desc"`
	BuildingType string `json:"building_type" db:"building_type"`
}

// BuildingInfo is the presentation view of a building: the region footprint
// merged with whatever metadata the store has for it.
type BuildingInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DisplayName  string  `json:"display_name"`
	Description  string  `json:"description,omitempty"`
	BuildingType string  `json:"building_type,omitempty"`
	Center       LatLng  `json:"center"`
	Floors       []Floor `json:"floors"`
}

// FloorPlanKey is the deterministic object-storage key for a floor plan
// image, e.g. GYTEF2.png.
func FloorPlanKey(buildingID string, level int) string {
	return fmt.Sprintf("%sF%d.png", buildingID, level)
}

// MergeBuildingInfo combines a region with its stored metadata. A missing
// record falls back to the region name and zero floors, which the presenter
// shows as a "no floor plans" notice.
func MergeBuildingInfo(region Region, record *BuildingRecord, center LatLng) BuildingInfo {
	info := BuildingInfo{
		ID:          region.ID,
		Name:        region.Name,
		DisplayName: region.Name,
		Center:      center,
		Floors:      []Floor{},
	}
	if record == nil {
		return info
	}
	if record.DisplayName != "" {
		info.DisplayName = record.DisplayName
	}
	info.Description = record.Description
	info.BuildingType = record.BuildingType
	for level := 1; level <= record.Floors; level++ {
		info.Floors = append(info.Floors, Floor{
			Level:    level,
			Name:     fmt.Sprintf("Floor %d", level),
			ImageRef: FloorPlanKey(region.ID, level),
		})
	}
	return info
}
