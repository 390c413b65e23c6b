package model

import (
	"fmt"
	"strings"
)

// ClassScheduleEntry is one class a user attends, keyed to a building by
// region name.
type ClassScheduleEntry struct {
	ID        string `json:"id" db:"id"`
	OwnerID   string `json:"user_id" db:"user_id"`
	ClassName string `json:"class_name" db:"class_name"`
	Building  string `json:"building" db:"building"`
	Room      string `json:"room" db:"room"`
	// Days is the meeting-day shorthand, e.g. "MWF".
	Days      string `json:"days" db:"days"`
	StartTime string `json:"start_time" db:"start_time"`
	EndTime   string `json:"end_time" db:"end_time"`
}

// ClassMarker is the derived, read-only pin shown for a building that has
// at least one schedule entry for the current user. It is never persisted.
type ClassMarker struct {
	Building string               `json:"building"`
	Position LatLng               `json:"position"`
	Entries  []ClassScheduleEntry `json:"entries"`
}

// PopupText renders the popup body listing every entry for the building.
func (c *ClassMarker) PopupText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Classes in %s:\n", c.Building)
	for _, e := range c.Entries {
		fmt.Fprintf(&b, "%s (%s) %s %s-%s\n", e.ClassName, e.Room, e.Days, e.StartTime, e.EndTime)
	}
	return strings.TrimRight(b.String(), "\n")
}
