package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pnw-map/internal/application"
	domain "pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/model"
)

// ScheduleHandler manages class schedule entries and the derived
// class-marker projection.
type ScheduleHandler struct {
	scheduleRepo repository.ClassScheduleRepository
	classMarkers application.ClassMarkersService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleRepo repository.ClassScheduleRepository, classMarkers application.ClassMarkersService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleRepo: scheduleRepo,
		classMarkers: classMarkers,
	}
}

// CreateEntry POST /schedule - add one class to the user's schedule.
func (h *ScheduleHandler) CreateEntry(c *gin.Context) {
	var req model.CreateScheduleEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	entry := domain.ClassScheduleEntry{
		OwnerID:   req.UserID,
		ClassName: req.ClassName,
		Building:  req.Building,
		Room:      req.Room,
		Days:      req.Days,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.scheduleRepo.Create(c.Request.Context(), &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "persistence_error",
			"message": "Failed to create schedule entry: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries GET /schedule?user_id= - the user's schedule entries.
func (h *ScheduleHandler) GetEntries(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "user_id parameter is required",
		})
		return
	}

	entries, err := h.scheduleRepo.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "persistence_error",
			"message": "Failed to load schedule: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteEntry DELETE /schedule/:id - remove one schedule entry.
func (h *ScheduleHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")

	if err := h.scheduleRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "persistence_error",
			"message": "Failed to delete schedule entry: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetClassMarkers GET /class-markers?user_id= - one synthetic marker per
// building with classes, with the popup body rendered server-side.
func (h *ScheduleHandler) GetClassMarkers(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "user_id parameter is required",
		})
		return
	}

	markers, err := h.classMarkers.BuildingMarkers(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "persistence_error",
			"message": "Failed to build class markers: " + err.Error(),
		})
		return
	}

	views := make([]model.ClassMarkerView, 0, len(markers))
	for _, m := range markers {
		views = append(views, model.ClassMarkerView{ClassMarker: m, Popup: m.PopupText()})
	}

	c.JSON(http.StatusOK, model.ClassMarkersResponse{Markers: views})
}
