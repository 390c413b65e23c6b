package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts API requests by route, method and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pnwmap_http_requests_total",
		Help: "HTTP requests handled, by route, method and status.",
	}, []string{"route", "method", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pnwmap_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// WidgetFetchFailures counts upstream widget fetch failures by widget.
	WidgetFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pnwmap_widget_fetch_failures_total",
		Help: "Weather/traffic upstream fetch failures.",
	}, []string{"widget"})

	// MarkerOperations counts marker lifecycle operations by op and outcome.
	MarkerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pnwmap_marker_operations_total",
		Help: "Marker create/load/delete operations by outcome.",
	}, []string{"op", "outcome"})
)

// Handler exposes the prometheus registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records per-request counters and latency for gin routes.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
