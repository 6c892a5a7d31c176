package willyweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arikatz123/SurfScout/internal/models"
)

// searchResultLimit caps how many candidates one search may return.
const searchResultLimit = 5

// SearchClient implements Searcher using the WillyWeather search endpoint
type SearchClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
}

// NewSearchClient creates a new WillyWeather search client
func NewSearchClient(baseURL, apiKey string) *SearchClient {
	return &SearchClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: "SurfScout/1.0 (github.com/arikatz123/SurfScout)",
	}
}

// Search queries the search endpoint and returns the candidates that pass
// the Australian filter, in provider order. Every call issues exactly one
// request; results are never cached.
func (c *SearchClient) Search(ctx context.Context, query string) ([]models.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("limit", fmt.Sprintf("%d", searchResultLimit))

	requestURL := fmt.Sprintf("%s/%s/search.json?%s", c.baseURL, c.apiKey, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching for location: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	candidates, err := decodeSearchResults(body)
	if err != nil {
		return nil, err
	}

	locations := make([]models.Location, 0, len(candidates))
	for _, loc := range candidates {
		if loc.IsAustralian() {
			locations = append(locations, loc)
		}
	}

	return locations, nil
}

// decodeSearchResults accepts the two shapes the search endpoint is known to
// produce: a bare list of locations, or an object wrapping the list under
// "search". Anything else is classified as a shape error.
func decodeSearchResults(body []byte) ([]models.Location, error) {
	var bare []models.Location
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Search *[]models.Location `json:"search"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: search response is neither a list nor a search object", ErrUnexpectedShape)
		}
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if wrapped.Search == nil {
		return nil, fmt.Errorf("%w: search response is neither a list nor a search object", ErrUnexpectedShape)
	}

	return *wrapped.Search, nil
}
