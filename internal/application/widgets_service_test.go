package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnw-map/internal/domain/model"
)

type fakeWeather struct {
	report *model.WeatherReport
	err    error
}

func (f *fakeWeather) Current(context.Context) (*model.WeatherReport, error) {
	return f.report, f.err
}

type fakeTraffic struct {
	incidents int
	err       error
}

func (f *fakeTraffic) IncidentCount(context.Context) (int, error) {
	return f.incidents, f.err
}

func TestWidgetsService_Weather(t *testing.T) {
	ctx := context.Background()
	report := &model.WeatherReport{Location: "Hammond", TempF: 71.2, Condition: "Partly cloudy", FetchedAt: time.Now()}
	weather := &fakeWeather{report: report}
	svc := NewWidgetsService(weather, &fakeTraffic{}, nil)

	got := svc.Weather(ctx)
	require.NotNil(t, got)
	assert.Equal(t, 71.2, got.TempF)

	// Upstream failure serves the last good payload.
	weather.report = nil
	weather.err = fmt.Errorf("upstream 503: %w", model.ErrUnavailable)
	got = svc.Weather(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "Partly cloudy", got.Condition)
}

func TestWidgetsService_WeatherNothingCached(t *testing.T) {
	svc := NewWidgetsService(&fakeWeather{err: fmt.Errorf("down")}, &fakeTraffic{}, nil)
	assert.Nil(t, svc.Weather(context.Background()))
}

func TestWidgetsService_Traffic(t *testing.T) {
	ctx := context.Background()
	traffic := &fakeTraffic{incidents: 2}
	svc := NewWidgetsService(&fakeWeather{}, traffic, nil)

	status := svc.Traffic(ctx)
	assert.Equal(t, model.TrafficCongested, status.Status)
	assert.Equal(t, 2, status.IncidentCount)

	// Upstream failure serves the last good classification.
	traffic.err = fmt.Errorf("upstream down")
	status = svc.Traffic(ctx)
	assert.Equal(t, model.TrafficCongested, status.Status)
}

func TestWidgetsService_TrafficNothingCached(t *testing.T) {
	// No successful fetch yet: the widget shows the calm default, never an
	// error state.
	svc := NewWidgetsService(&fakeWeather{}, &fakeTraffic{err: fmt.Errorf("down")}, nil)
	status := svc.Traffic(context.Background())
	assert.Equal(t, model.TrafficAllClear, status.Status)
	assert.Equal(t, "green", status.Color)
}
