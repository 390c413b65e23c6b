package application

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/logger"
	"pnw-map/internal/metrics"
)

// Poll cadences for the two widgets.
const (
	WeatherPollInterval = 15 * time.Minute
	TrafficPollInterval = 5 * time.Minute
)

const (
	weatherCacheKey = "widget:weather"
	trafficCacheKey = "widget:traffic"
)

// WeatherProvider is the upstream weather API boundary.
type WeatherProvider interface {
	Current(ctx context.Context) (*model.WeatherReport, error)
}

// TrafficProvider is the upstream traffic incidents boundary.
type TrafficProvider interface {
	IncidentCount(ctx context.Context) (int, error)
}

// WidgetsService serves the weather and traffic widgets. Upstream failures
// degrade to the last cached payload, or to a default state, never to an
// error page.
type WidgetsService interface {
	Weather(ctx context.Context) *model.WeatherReport
	Traffic(ctx context.Context) model.TrafficStatus
	// StartPolling refreshes both widgets on their fixed intervals until
	// ctx is cancelled.
	StartPolling(ctx context.Context)
}

type widgetsServiceImpl struct {
	weather WeatherProvider
	traffic TrafficProvider
	// cache is optional; nil keeps the last good payloads in memory only.
	cache *redis.Client

	mu          sync.Mutex
	lastWeather *model.WeatherReport
	lastTraffic *model.TrafficStatus
}

// NewWidgetsService creates the widgets service. cache may be nil.
func NewWidgetsService(weather WeatherProvider, traffic TrafficProvider, cache *redis.Client) WidgetsService {
	return &widgetsServiceImpl{
		weather: weather,
		traffic: traffic,
		cache:   cache,
	}
}

func (s *widgetsServiceImpl) Weather(ctx context.Context) *model.WeatherReport {
	report, err := s.weather.Current(ctx)
	if err != nil {
		metrics.WidgetFetchFailures.WithLabelValues("weather").Inc()
		logger.L().Warn("weather fetch failed, serving cached state", "error", err)
		return s.cachedWeather(ctx)
	}
	s.storeWeather(ctx, report)
	return report
}

func (s *widgetsServiceImpl) Traffic(ctx context.Context) model.TrafficStatus {
	incidents, err := s.traffic.IncidentCount(ctx)
	if err != nil {
		metrics.WidgetFetchFailures.WithLabelValues("traffic").Inc()
		logger.L().Warn("traffic fetch failed, serving cached state", "error", err)
		return s.cachedTraffic(ctx)
	}
	status := model.TrafficStatusFor(incidents)
	s.storeTraffic(ctx, &status)
	return status
}

func (s *widgetsServiceImpl) StartPolling(ctx context.Context) {
	go s.pollLoop(ctx, WeatherPollInterval, func() { s.Weather(ctx) })
	go s.pollLoop(ctx, TrafficPollInterval, func() { s.Traffic(ctx) })
}

func (s *widgetsServiceImpl) pollLoop(ctx context.Context, interval time.Duration, refresh func()) {
	refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

func (s *widgetsServiceImpl) storeWeather(ctx context.Context, report *model.WeatherReport) {
	s.mu.Lock()
	s.lastWeather = report
	s.mu.Unlock()
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, weatherCacheKey, payload, WeatherPollInterval*2).Err(); err != nil {
		logger.L().Warn("weather cache write failed", "error", err)
	}
}

func (s *widgetsServiceImpl) cachedWeather(ctx context.Context) *model.WeatherReport {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, weatherCacheKey).Result()
		if err == nil {
			var report model.WeatherReport
			if json.Unmarshal([]byte(raw), &report) == nil {
				return &report
			}
		} else if err != redis.Nil {
			logger.L().Warn("weather cache read failed", "error", err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWeather
}

func (s *widgetsServiceImpl) storeTraffic(ctx context.Context, status *model.TrafficStatus) {
	s.mu.Lock()
	s.lastTraffic = status
	s.mu.Unlock()
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, trafficCacheKey, payload, TrafficPollInterval*2).Err(); err != nil {
		logger.L().Warn("traffic cache write failed", "error", err)
	}
}

func (s *widgetsServiceImpl) cachedTraffic(ctx context.Context) model.TrafficStatus {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, trafficCacheKey).Result()
		if err == nil {
			var status model.TrafficStatus
			if json.Unmarshal([]byte(raw), &status) == nil {
				return status
			}
		} else if err != redis.Nil {
			logger.L().Warn("traffic cache read failed", "error", err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastTraffic != nil {
		return *s.lastTraffic
	}
	// Nothing cached at all: show the calm default rather than an error.
	return model.TrafficStatusFor(0)
}
