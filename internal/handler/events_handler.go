package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pnw-map/internal/application"
	domain "pnw-map/internal/domain/model"
	"pnw-map/model"
)

// EventsHandler serves the campus events feed.
type EventsHandler struct {
	events application.EventsService
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(events application.EventsService) *EventsHandler {
	return &EventsHandler{
		events: events,
	}
}

// GetEvents GET /events?limit= - upcoming campus events. A feed failure
// degrades to an empty list with an error field rather than a 500.
func (h *EventsHandler) GetEvents(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid limit value",
			})
			return
		}
		limit = parsed
	}

	events, err := h.events.Upcoming(c.Request.Context(), limit)
	if err != nil {
		log.Printf("events feed fetch failed: %v", err)
		c.JSON(http.StatusOK, model.EventsResponse{
			Events: []domain.CampusEvent{},
			Error:  "Failed to fetch events",
		})
		return
	}

	c.JSON(http.StatusOK, model.EventsResponse{Events: events})
}
