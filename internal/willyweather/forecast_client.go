package willyweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arikatz123/SurfScout/internal/models"
)

// forecastCategories is the fixed comma-separated category list the weather
// endpoint expects.
const forecastCategories = "tides,wind,swell"

// ForecastClient implements ForecastFetcher using the WillyWeather per-location
// weather endpoint
type ForecastClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
}

// NewForecastClient creates a new WillyWeather forecast client
func NewForecastClient(baseURL, apiKey string) *ForecastClient {
	return &ForecastClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "SurfScout/1.0 (github.com/arikatz123/SurfScout)",
	}
}

// Conditions fetches one day of tide, wind and swell forecasts for a location
// and normalizes them into a fully populated Conditions record. A non-success
// status or a response without the forecast container is a hard failure: no
// partial records are ever returned.
func (c *ForecastClient) Conditions(ctx context.Context, locationID int) (*models.Conditions, error) {
	params := url.Values{}
	params.Add("forecasts", forecastCategories)
	params.Add("days", "1")

	requestURL := fmt.Sprintf("%s/%s/locations/%d/weather.json?%s",
		c.baseURL, c.apiKey, locationID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching surf conditions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var weatherResp weatherResponse
	if err := json.Unmarshal(body, &weatherResp); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	if weatherResp.Forecasts == nil {
		return nil, fmt.Errorf("%w: weather response has no forecast data", ErrUnexpectedShape)
	}

	conditions := normalizeForecasts(weatherResp.Forecasts)
	return &conditions, nil
}

// Internal types for WillyWeather weather API responses

type weatherResponse struct {
	Forecasts *forecastContainer `json:"forecasts"`
}

type forecastContainer struct {
	Tides *forecastCategory `json:"tides"`
	Wind  *forecastCategory `json:"wind"`
	Swell *forecastCategory `json:"swell"`
}

type forecastCategory struct {
	Days []forecastDay `json:"days"`
}

type forecastDay struct {
	Entries []forecastEntry `json:"entries"`
}

type forecastEntry struct {
	DateTime  string  `json:"dateTime"`
	Height    float64 `json:"height"`
	Type      string  `json:"type"`
	Speed     float64 `json:"speed"`
	Direction float64 `json:"direction"`
}
