package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/arikatz123/SurfScout/internal/models"
)

// locationItem wraps a Location for use in a list
type locationItem struct {
	location models.Location
}

// FilterValue implements list.Item
func (l locationItem) FilterValue() string {
	return l.location.Name + " " + l.location.Region
}

// Title implements list.DefaultItem
func (l locationItem) Title() string {
	return l.location.Label()
}

// Description implements list.DefaultItem
func (l locationItem) Description() string {
	if l.location.State == "" {
		return l.location.TimeZone
	}
	return l.location.State + " · " + l.location.TimeZone
}

// createLocationList creates a list.Model from search results
func createLocationList(locations []models.Location, width, height int) list.Model {
	items := make([]list.Item, len(locations))
	for i, location := range locations {
		items[i] = locationItem{location: location}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a beach"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
