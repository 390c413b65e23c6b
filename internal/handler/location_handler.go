package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pnw-map/internal/domain/service"
	"pnw-map/model"
)

// LocationHandler resolves coordinates to building names.
type LocationHandler struct {
	resolver *service.GeofenceResolver
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(resolver *service.GeofenceResolver) *LocationHandler {
	return &LocationHandler{
		resolver: resolver,
	}
}

// ResolveLocation GET /location/resolve?lat=&lng= - which building the
// coordinate falls in. An "Outside" answer is enriched with the closest
// building and its distance.
func (h *LocationHandler) ResolveLocation(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lat value",
		})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lng value",
		})
		return
	}

	resp := model.ResolveLocationResponse{
		Building: h.resolver.Resolve(lat, lng),
	}
	if resp.Building == service.OutsideCampus {
		name, distance := h.resolver.Nearest(lat, lng)
		if name != "" {
			resp.Nearest = &model.NearestBuilding{
				Name:           name,
				DistanceMeters: distance,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
