package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pnw-map/internal/metrics"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Markers   *MarkersHandler
	Location  *LocationHandler
	Buildings *BuildingsHandler
	Schedule  *ScheduleHandler
	Widgets   *WidgetsHandler
	Events    *EventsHandler
	Auth      *AuthHandler
}

// SetupRouter wires the API routes, CORS and metrics middleware.
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "pnw-map"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Auth.SignUp)
		api.POST("/auth/login", h.Auth.SignIn)
		api.POST("/auth/logout", h.Auth.SignOut)
		api.POST("/auth/forgot-password", h.Auth.ForgotPassword)

		api.GET("/location/resolve", h.Location.ResolveLocation)

		api.GET("/markers", h.Markers.GetMarkers)
		api.POST("/markers", h.Markers.CreateMarker)
		api.DELETE("/markers/:id", h.Markers.DeleteMarker)

		api.GET("/buildings", h.Buildings.ListBuildings)
		api.GET("/buildings/:name", h.Buildings.GetBuilding)
		api.GET("/buildings/:name/floors/:level/plan", h.Buildings.GetFloorPlan)

		api.GET("/schedule", h.Schedule.GetEntries)
		api.POST("/schedule", h.Schedule.CreateEntry)
		api.DELETE("/schedule/:id", h.Schedule.DeleteEntry)
		api.GET("/class-markers", h.Schedule.GetClassMarkers)

		api.GET("/widgets/weather", h.Widgets.GetWeather)
		api.GET("/widgets/traffic", h.Widgets.GetTraffic)

		api.GET("/events", h.Events.GetEvents)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
