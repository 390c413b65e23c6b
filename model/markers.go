package model

import domain "pnw-map/internal/domain/model"

// CreateMarkerRequest is the POST /markers body.
type CreateMarkerRequest struct {
	UserID      string  `json:"user_id" binding:"required"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Color       string  `json:"color"`
}

// MarkerView is a marker plus the icon it renders with.
type MarkerView struct {
	domain.Marker
	Icon domain.MarkerIcon `json:"icon"`
}

// GetMarkersResponse is the GET /markers payload.
type GetMarkersResponse struct {
	Markers []MarkerView `json:"markers"`
}

// NewMarkerView attaches the presentation icon to a marker.
func NewMarkerView(m domain.Marker) MarkerView {
	return MarkerView{Marker: m, Icon: m.Icon()}
}

// NewMarkerViews maps a marker list to views, preserving order.
func NewMarkerViews(markers []domain.Marker) []MarkerView {
	views := make([]MarkerView, 0, len(markers))
	for _, m := range markers {
		views = append(views, NewMarkerView(m))
	}
	return views
}
