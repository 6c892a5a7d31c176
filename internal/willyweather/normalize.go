package willyweather

import "github.com/arikatz123/SurfScout/internal/models"

// normalizeForecasts flattens a forecast container into a Conditions record.
// Per category the first entry of the first day is taken as "current"; a
// category with no day or no entry falls back to the documented defaults
// (0, Unknown) so the record is always fully populated.
func normalizeForecasts(fc *forecastContainer) models.Conditions {
	conditions := models.DefaultConditions()

	if entry, ok := firstEntry(fc.Tides); ok {
		conditions.Tide.Height = entry.Height
		if entry.Type != "" {
			conditions.Tide.Type = entry.Type
		}
	}

	if entry, ok := firstEntry(fc.Wind); ok {
		conditions.Wind.Speed = entry.Speed
		conditions.Wind.Direction = entry.Direction
	}

	if entry, ok := firstEntry(fc.Swell); ok {
		conditions.Swell.Height = entry.Height
		conditions.Swell.Direction = entry.Direction
	}

	return conditions
}

// firstEntry returns the first entry of a category's first day, if present.
func firstEntry(category *forecastCategory) (forecastEntry, bool) {
	if category == nil || len(category.Days) == 0 || len(category.Days[0].Entries) == 0 {
		return forecastEntry{}, false
	}
	return category.Days[0].Entries[0], true
}
