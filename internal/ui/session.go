package ui

import "github.com/arikatz123/SurfScout/internal/models"

// session holds everything produced by the current query chain: the search
// results, the chosen beach, its conditions, and the verdict. Starting a new
// search resets the whole record; choosing a new beach resets everything
// downstream of the selection.
type session struct {
	query      string
	locations  []models.Location
	selected   *models.Location
	conditions *models.Conditions
	assessment *models.Assessment
}

func (s *session) startSearch(query string) {
	s.query = query
	s.locations = nil
	s.selected = nil
	s.conditions = nil
	s.assessment = nil
}

func (s *session) setLocations(locations []models.Location) {
	s.locations = locations
}

func (s *session) selectLocation(location models.Location) {
	s.selected = &location
	s.conditions = nil
	s.assessment = nil
}

func (s *session) setConditions(conditions *models.Conditions) {
	s.conditions = conditions
}

func (s *session) setAssessment(assessment models.Assessment) {
	s.assessment = &assessment
}
