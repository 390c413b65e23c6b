package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pnw-map/internal/domain/model"
)

// bboxPadDegrees widens the incident search box around the campus center.
const bboxPadDegrees = 0.1

// Client fetches incident details from the TomTom traffic API for a fixed
// bounding box around campus.
type Client struct {
	apiKey     string
	center     model.LatLng
	httpClient *http.Client
}

// NewClient creates a client centered on the given coordinate.
func NewClient(apiKey string, center model.LatLng) *Client {
	return &Client{
		apiKey:     apiKey,
		center:     center,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type incidentResponse struct {
	Incidents []struct {
		Type       string `json:"type"`
		Properties struct {
			IconCategory int `json:"iconCategory"`
		} `json:"properties"`
	} `json:"incidents"`
}

// IncidentCount returns the number of incidents currently reported inside
// the campus bounding box.
func (c *Client) IncidentCount(ctx context.Context) (int, error) {
	reqURL := fmt.Sprintf(
		"https://api.tomtom.com/traffic/services/4/incidentDetails?key=%s&bbox=%f,%f,%f,%f&fields={incidents{type,geometry,properties{iconCategory}}}",
		c.apiKey,
		c.center.Lng-bboxPadDegrees, c.center.Lat-bboxPadDegrees,
		c.center.Lng+bboxPadDegrees, c.center.Lat+bboxPadDegrees,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("traffic API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("traffic API returned %s: %w", resp.Status, model.ErrUnavailable)
	}

	var apiResp incidentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		// An unparseable body is treated as no incidents, matching the
		// widget's long-standing behavior.
		return 0, nil
	}

	return len(apiResp.Incidents), nil
}
