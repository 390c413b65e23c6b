package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pnw-map/internal/application"
	domain "pnw-map/internal/domain/model"
)

// BuildingsHandler serves building outlines, metadata and floor plans.
type BuildingsHandler struct {
	buildings application.BuildingsService
}

// NewBuildingsHandler creates a BuildingsHandler.
func NewBuildingsHandler(buildings application.BuildingsService) *BuildingsHandler {
	return &BuildingsHandler{
		buildings: buildings,
	}
}

// ListBuildings GET /buildings - every campus building with outline center
// and floors.
func (h *BuildingsHandler) ListBuildings(c *gin.Context) {
	infos, err := h.buildings.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load buildings: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"buildings": infos})
}

// GetBuilding GET /buildings/:name - one building by region name or id.
func (h *BuildingsHandler) GetBuilding(c *gin.Context) {
	name := c.Param("name")

	info, err := h.buildings.Get(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Unknown building: " + name,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load building: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetFloorPlan GET /buildings/:name/floors/:level/plan - the raster plan
// image for one floor.
func (h *BuildingsHandler) GetFloorPlan(c *gin.Context) {
	name := c.Param("name")
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid floor level",
		})
		return
	}

	info, err := h.buildings.Get(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Unknown building: " + name,
		})
		return
	}

	image, err := h.buildings.FloorPlan(c.Request.Context(), info.ID, level)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "No floor plan for " + domain.FloorPlanKey(info.ID, level),
		})
		return
	}

	c.Data(http.StatusOK, "image/png", image)
}
