package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pnw-map/internal/application"
)

// WidgetsHandler serves the weather and traffic widget data.
type WidgetsHandler struct {
	widgets application.WidgetsService
}

// NewWidgetsHandler creates a WidgetsHandler.
func NewWidgetsHandler(widgets application.WidgetsService) *WidgetsHandler {
	return &WidgetsHandler{
		widgets: widgets,
	}
}

// GetWeather GET /widgets/weather - current conditions, or the last cached
// payload when the upstream is down.
func (h *WidgetsHandler) GetWeather(c *gin.Context) {
	report := h.widgets.Weather(c.Request.Context())
	if report == nil {
		// Nothing fetched and nothing cached yet.
		c.JSON(http.StatusOK, gin.H{
			"weather": nil,
			"error":   "Failed to load weather data",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weather": report})
}

// GetTraffic GET /widgets/traffic - the classified traffic state.
func (h *WidgetsHandler) GetTraffic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"traffic": h.widgets.Traffic(c.Request.Context())})
}
