package model

import "testing"

func TestFloorPlanKey(t *testing.T) {
	if got := FloorPlanKey("GYTE", 2); got != "GYTEF2.png" {
		t.Errorf("FloorPlanKey = %q, want GYTEF2.png", got)
	}
	if got := FloorPlanKey("SULB", 10); got != "SULBF10.png" {
		t.Errorf("FloorPlanKey = %q, want SULBF10.png", got)
	}
}

func TestMergeBuildingInfo(t *testing.T) {
	region := Region{ID: "GYTE", Name: "Gyte"}
	center := LatLng{Lat: 41.5854, Lng: -87.4747}

	t.Run("with record", func(t *testing.T) {
		info := MergeBuildingInfo(region, &BuildingRecord{
			Name:         "Gyte",
			DisplayName:  "Gyte Building",
			Floors:       3,
			Description:  "Engineering classrooms",
			BuildingType: "academic",
		}, center)

		if info.DisplayName != "Gyte Building" {
			t.Errorf("DisplayName = %q", info.DisplayName)
		}
		if len(info.Floors) != 3 {
			t.Fatalf("got %d floors, want 3", len(info.Floors))
		}
		if info.Floors[1].ImageRef != "GYTEF2.png" {
			t.Errorf("floor 2 ImageRef = %q", info.Floors[1].ImageRef)
		}
		if info.Center != center {
			t.Errorf("Center = %+v", info.Center)
		}
	})

	t.Run("missing record falls back to region name and zero floors", func(t *testing.T) {
		info := MergeBuildingInfo(region, nil, center)
		if info.DisplayName != "Gyte" {
			t.Errorf("DisplayName = %q, want region name", info.DisplayName)
		}
		if len(info.Floors) != 0 {
			t.Errorf("got %d floors, want 0", len(info.Floors))
		}
	})

	t.Run("record with empty display name keeps region name", func(t *testing.T) {
		info := MergeBuildingInfo(region, &BuildingRecord{Name: "Gyte", Floors: 1}, center)
		if info.DisplayName != "Gyte" {
			t.Errorf("DisplayName = %q, want Gyte", info.DisplayName)
		}
	})
}

func TestClassMarkerPopupText(t *testing.T) {
	marker := ClassMarker{
		Building: "Gyte",
		Entries: []ClassScheduleEntry{
			{ClassName: "CS 275", Room: "103", Days: "MWF", StartTime: "09:00", EndTime: "09:50"},
			{ClassName: "MA 264", Room: "217", Days: "TR", StartTime: "12:00", EndTime: "13:15"},
		},
	}
	want := "Classes in Gyte:\nCS 275 (103) MWF 09:00-09:50\nMA 264 (217) TR 12:00-13:15"
	if got := marker.PopupText(); got != want {
		t.Errorf("PopupText() = %q, want %q", got, want)
	}
}
