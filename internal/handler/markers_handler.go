package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "pnw-map/internal/domain/model"
	"pnw-map/internal/usecase"
	"pnw-map/model"
)

// MarkersHandler exposes the marker lifecycle over HTTP.
type MarkersHandler struct {
	markers usecase.MarkersUseCase
}

// NewMarkersHandler creates a MarkersHandler.
func NewMarkersHandler(markers usecase.MarkersUseCase) *MarkersHandler {
	return &MarkersHandler{
		markers: markers,
	}
}

// CreateMarker POST /markers - place a new pin.
func (h *MarkersHandler) CreateMarker(c *gin.Context) {
	var req model.CreateMarkerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	color := domain.MarkerColor(req.Color)
	if color == "" {
		color = domain.ColorDefault
	}

	marker, err := h.markers.Create(c.Request.Context(), req.UserID,
		domain.LatLng{Lat: req.Latitude, Lng: req.Longitude}, req.Description, color)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "persistence_error",
			"message": "Failed to create marker: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, model.NewMarkerView(*marker))
}

// GetMarkers GET /markers?user_id= - reload the mirror from the store and
// return it.
func (h *MarkersHandler) GetMarkers(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "user_id parameter is required",
		})
		return
	}

	markers, err := h.markers.LoadAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "persistence_error",
			"message": "Failed to load markers: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.GetMarkersResponse{
		Markers: model.NewMarkerViews(markers),
	})
}

// DeleteMarker DELETE /markers/:id - remove a pin. The confirmation dialog
// is the client's job.
func (h *MarkersHandler) DeleteMarker(c *gin.Context) {
	markerID := c.Param("id")
	if markerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Marker ID is required",
		})
		return
	}

	if err := h.markers.Delete(c.Request.Context(), markerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "persistence_error",
			"message": "Failed to delete marker: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
