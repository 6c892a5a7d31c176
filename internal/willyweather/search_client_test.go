package willyweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

const bondiSearchJSON = `[
	{"id": 7093, "name": "Bondi Beach", "region": "Sydney", "state": "NSW", "timeZone": "Australia/Sydney"},
	{"id": 7094, "name": "Bondi Junction", "region": "Sydney", "state": "NSW", "timeZone": "Australia/Sydney"},
	{"id": 9001, "name": "Bondi", "region": "Auckland", "state": "AUK", "timeZone": "Pacific/Auckland"}
]`

func TestNewSearchClient(t *testing.T) {
	client := NewSearchClient("https://api.willyweather.com.au/v2", "test-key")

	if client == nil {
		t.Fatal("NewSearchClient() returned nil")
	}

	if client.baseURL != "https://api.willyweather.com.au/v2" {
		t.Errorf("baseURL = %s, want https://api.willyweather.com.au/v2", client.baseURL)
	}

	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", client.httpClient.Timeout)
	}

	if client.userAgent == "" {
		t.Error("userAgent should not be empty")
	}
}

func TestSearchClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Error("Accept header should be application/json")
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		if r.URL.Path != "/test-key/search.json" {
			t.Errorf("path = %s, want /test-key/search.json", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "Bondi" {
			t.Errorf("query param = %q, want 'Bondi'", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit param = %q, want '5'", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(bondiSearchJSON))
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "test-key")

	locations, err := client.Search(context.Background(), "Bondi")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(locations) != 2 {
		t.Fatalf("len(locations) = %d, want 2 (Auckland entry filtered out)", len(locations))
	}

	for _, loc := range locations {
		if loc.State != "NSW" {
			t.Errorf("location %s has state %s, want NSW", loc.Name, loc.State)
		}
	}

	if locations[0].Name != "Bondi Beach" {
		t.Errorf("first result = %s, want 'Bondi Beach' (provider order preserved)", locations[0].Name)
	}
}

func TestSearchClient_Search_WrappedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"search": [{"id": 1, "name": "Torquay", "region": "Geelong", "state": "VIC", "timeZone": "Australia/Melbourne"}]}`))
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "test-key")

	locations, err := client.Search(context.Background(), "Torquay")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(locations) != 1 {
		t.Fatalf("len(locations) = %d, want 1", len(locations))
	}
	if locations[0].Name != "Torquay" {
		t.Errorf("Name = %s, want Torquay", locations[0].Name)
	}
}

func TestSearchClient_Search_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "test-key")

	locations, err := client.Search(context.Background(), "Nonexistent Beach Xyz")
	if err != nil {
		t.Fatalf("Search() error = %v, want nil (empty result is not an error)", err)
	}
	if len(locations) != 0 {
		t.Errorf("len(locations) = %d, want 0", len(locations))
	}
}

func TestSearchClient_Search_EmptyQuery(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "test-key")

	_, err := client.Search(context.Background(), "   ")
	if err == nil {
		t.Fatal("Search() with blank query should return an error")
	}
	if calls != 0 {
		t.Errorf("blank query made %d outbound calls, want 0", calls)
	}
}

func TestSearchClient_Search_FilterSubset(t *testing.T) {
	// Every returned location must satisfy the country filter; everything
	// else from the raw provider list is dropped.
	raw := `[
		{"id": 1, "name": "Snapper Rocks", "region": "Gold Coast", "state": "QLD", "timeZone": "Australia/Brisbane"},
		{"id": 2, "name": "Piha", "region": "Auckland", "state": "AUK", "timeZone": "Pacific/Auckland"},
		{"id": 3, "name": "Cottesloe", "region": "Perth", "state": "", "timeZone": "AUSTRALIA/Perth"},
		{"id": 4, "name": "Huntington", "region": "California", "state": "CA", "timeZone": "America/Los_Angeles"},
		{"id": 5, "name": "Hobart", "region": "Hobart", "state": "TAS", "timeZone": ""}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(raw))
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "test-key")

	locations, err := client.Search(context.Background(), "beach")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	wantIDs := []int{1, 3, 5}
	gotIDs := make([]int, 0, len(locations))
	for _, loc := range locations {
		if !loc.IsAustralian() {
			t.Errorf("location %s failed the country filter but was returned", loc.Name)
		}
		gotIDs = append(gotIDs, loc.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("filtered IDs = %v, want %v", gotIDs, wantIDs)
	}
}

func TestSearchClient_Search_Idempotent(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(bondiSearchJSON))
	}))
	defer server.Close()

	client := NewSearchClient(server.URL, "test-key")

	first, err := client.Search(context.Background(), "Bondi")
	if err != nil {
		t.Fatalf("first Search() error = %v", err)
	}
	second, err := client.Search(context.Background(), "Bondi")
	if err != nil {
		t.Fatalf("second Search() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated search returned different results:\nfirst:  %+v\nsecond: %+v", first, second)
	}

	// No hidden caching: every invocation re-queries the provider.
	if calls != 2 {
		t.Errorf("provider saw %d calls, want 2", calls)
	}
}

func TestSearchClient_Search_ErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantShape  bool
	}{
		{"404 not found", http.StatusNotFound, "not found", false},
		{"500 server error", http.StatusInternalServerError, "boom", false},
		{"503 unavailable", http.StatusServiceUnavailable, "maintenance", false},
		{"malformed body", http.StatusOK, `{"search": [`, false},
		{"object without search key", http.StatusOK, `{"results": []}`, true},
		{"scalar body", http.StatusOK, `42`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewSearchClient(server.URL, "test-key")

			locations, err := client.Search(context.Background(), "Bondi")
			if err == nil {
				t.Fatal("Search() error = nil, want an error")
			}
			if locations != nil {
				t.Errorf("locations = %v, want nil on error", locations)
			}

			if tt.statusCode != http.StatusOK {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Errorf("error = %v, want a StatusError", err)
				} else if statusErr.Code != tt.statusCode {
					t.Errorf("StatusError.Code = %d, want %d", statusErr.Code, tt.statusCode)
				}
			}

			if tt.wantShape && !errors.Is(err, ErrUnexpectedShape) {
				t.Errorf("error = %v, want ErrUnexpectedShape", err)
			}
		})
	}
}

func TestDecodeSearchResults_EmptyWrappedList(t *testing.T) {
	locations, err := decodeSearchResults([]byte(`{"search": []}`))
	if err != nil {
		t.Fatalf("decodeSearchResults() error = %v, want nil", err)
	}
	if len(locations) != 0 {
		t.Errorf("len(locations) = %d, want 0", len(locations))
	}
}
