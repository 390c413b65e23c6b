package model

import (
	"fmt"
	"time"
)

// WeatherReport is the reduced view of a weatherapi.com current-conditions
// response that the weather widget renders.
type WeatherReport struct {
	Location  string    `json:"location"`
	TempF     float64   `json:"temp_f"`
	Condition string    `json:"condition"`
	IconURL   string    `json:"icon_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Traffic status values shown by the traffic widget.
const (
	TrafficAllClear   = "All clear"
	TrafficCongested  = "Congested"
	TrafficStandstill = "Standstill"
)

// TrafficStatus is the classified traffic state around campus.
type TrafficStatus struct {
	Status        string    `json:"status"`
	Color         string    `json:"color"`
	Description   string    `json:"description"`
	IncidentCount int       `json:"incident_count"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// TrafficStatusFor classifies an incident count: 0 is all clear, 1-2 is
// congested, 3 or more is a standstill.
func TrafficStatusFor(incidents int) TrafficStatus {
	status := TrafficStatus{IncidentCount: incidents, FetchedAt: time.Now()}
	switch {
	case incidents == 0:
		status.Status = TrafficAllClear
		status.Color = "green"
		status.Description = "No incidents reported"
	case incidents <= 2:
		status.Status = TrafficCongested
		status.Color = "yellow"
		status.Description = fmt.Sprintf("%d incidents reported", incidents)
	default:
		status.Status = TrafficStandstill
		status.Color = "red"
		status.Description = fmt.Sprintf("%d incidents reported", incidents)
	}
	return status
}
