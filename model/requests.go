package model

import domain "pnw-map/internal/domain/model"

// ResolveLocationResponse is the GET /location/resolve payload. Nearest is
// only populated when the coordinate resolves to "Outside".
type ResolveLocationResponse struct {
	Building string           `json:"building"`
	Nearest  *NearestBuilding `json:"nearest,omitempty"`
}

// NearestBuilding names the closest building to an off-campus coordinate.
type NearestBuilding struct {
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distance_meters"`
}

// CreateScheduleEntryRequest is the POST /schedule body.
type CreateScheduleEntryRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ClassName string `json:"class_name" binding:"required"`
	Building  string `json:"building" binding:"required"`
	Room      string `json:"room"`
	Days      string `json:"days" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ClassMarkersResponse is the GET /class-markers payload.
type ClassMarkersResponse struct {
	Markers []ClassMarkerView `json:"markers"`
}

// ClassMarkerView is a class marker plus its rendered popup text.
type ClassMarkerView struct {
	domain.ClassMarker
	Popup string `json:"popup"`
}

// EventsResponse is the GET /events payload. Error is set when the feed
// could not be fetched and Events degrades to empty.
type EventsResponse struct {
	Events []domain.CampusEvent `json:"events"`
	Error  string               `json:"error,omitempty"`
}

// SignUpRequest is the POST /auth/signup body.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignInRequest is the POST /auth/login body.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest is the POST /auth/forgot-password body.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}
