package models

import (
	"fmt"
	"strings"
)

// australianStates are the state/territory codes WillyWeather uses for
// locations inside Australia.
var australianStates = map[string]bool{
	"NSW": true,
	"QLD": true,
	"VIC": true,
	"SA":  true,
	"WA":  true,
	"TAS": true,
	"NT":  true,
	"ACT": true,
}

// Location represents a candidate place returned by the WillyWeather search
// endpoint. It lives only for the duration of one search result set.
type Location struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	State    string `json:"state"`
	TimeZone string `json:"timeZone"`
}

// Label renders the location the way it appears in the selection list,
// e.g. "Bondi Beach, Sydney".
func (l Location) Label() string {
	if l.Region == "" {
		return l.Name
	}
	return fmt.Sprintf("%s, %s", l.Name, l.Region)
}

// IsAustralian reports whether the location passes the country filter:
// a recognised Australian state code, or a timezone naming Australia.
func (l Location) IsAustralian() bool {
	if australianStates[l.State] {
		return true
	}
	return strings.Contains(strings.ToLower(l.TimeZone), "australia")
}
