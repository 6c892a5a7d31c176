package willyweather

import (
	"context"

	"github.com/arikatz123/SurfScout/internal/models"
)

// Searcher defines the interface for looking up locations by name
type Searcher interface {
	// Search returns Australian locations matching the query, in provider
	// order. An empty result is a valid outcome, not an error.
	Search(ctx context.Context, query string) ([]models.Location, error)
}

// ForecastFetcher defines the interface for fetching surf conditions
type ForecastFetcher interface {
	// Conditions retrieves the current tide/wind/swell snapshot for a
	// location. The returned record is always fully populated.
	Conditions(ctx context.Context, locationID int) (*models.Conditions, error)
}
