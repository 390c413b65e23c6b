package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pnw-map/internal/domain/model"
)

// Client fetches current conditions from weatherapi.com.
type Client struct {
	apiKey     string
	query      string
	httpClient *http.Client
}

// NewClient creates a client for a fixed location query, e.g. "Hammond,IN".
func NewClient(apiKey, query string) *Client {
	return &Client{
		apiKey:     apiKey,
		query:      query,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// weatherAPIResponse mirrors the fields of current.json the widget uses.
type weatherAPIResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempF     float64 `json:"temp_f"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"current"`
}

// Current fetches and reduces the current conditions.
func (c *Client) Current(ctx context.Context) (*model.WeatherReport, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", c.query)
	params.Set("aqi", "no")
	reqURL := "https://api.weatherapi.com/v1/current.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned %s: %w", resp.Status, model.ErrUnavailable)
	}

	var apiResp weatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	return &model.WeatherReport{
		Location:  apiResp.Location.Name,
		TempF:     apiResp.Current.TempF,
		Condition: apiResp.Current.Condition.Text,
		IconURL:   apiResp.Current.Condition.Icon,
		FetchedAt: time.Now(),
	}, nil
}
