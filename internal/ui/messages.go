package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arikatz123/SurfScout/internal/models"
	"github.com/arikatz123/SurfScout/internal/surf"
	"github.com/arikatz123/SurfScout/internal/willyweather"
)

// searchResultsMsg is sent when a beach search completes
type searchResultsMsg struct {
	query     string
	locations []models.Location
	err       error
}

// conditionsFetchedMsg is sent when the forecast for a beach is fetched
type conditionsFetchedMsg struct {
	conditions *models.Conditions
	err        error
}

// assessmentMsg is sent when the surf quality verdict is ready
type assessmentMsg struct {
	assessment models.Assessment
	err        error
}

// autoSearchMsg triggers a search for a query supplied at startup
type autoSearchMsg struct{}

// searchBeaches looks up Australian beaches matching the query
func searchBeaches(searcher willyweather.Searcher, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		locations, err := searcher.Search(ctx, query)
		return searchResultsMsg{query: query, locations: locations, err: err}
	}
}

// fetchConditions fetches today's tide, wind and swell for a beach
func fetchConditions(fetcher willyweather.ForecastFetcher, locationID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
		defer cancel()

		conditions, err := fetcher.Conditions(ctx, locationID)
		return conditionsFetchedMsg{conditions: conditions, err: err}
	}
}

// assessSurf asks the model to score the conditions for a beach
func assessSurf(assessor surf.Assessor, conditions models.Conditions, beachName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		assessment, err := assessor.Assess(ctx, conditions, beachName)
		return assessmentMsg{assessment: assessment, err: err}
	}
}
