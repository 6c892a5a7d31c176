package models

// TideTypeUnknown is the tide type reported when the provider supplies no
// tide entries for the day.
const TideTypeUnknown = "Unknown"

// Tide is the current tide snapshot for a location.
type Tide struct {
	Height float64 // meters
	Type   string  // e.g. "high", "low", or TideTypeUnknown
}

// Wind is the current wind snapshot for a location.
type Wind struct {
	Speed     float64 // km/h
	Direction float64 // degrees
}

// Swell is the current swell snapshot for a location.
type Swell struct {
	Height    float64 // meters
	Direction float64 // degrees
}

// Conditions is the normalized tide/wind/swell snapshot for one location at
// one forecast day. It is always fully populated: categories the provider
// omits are filled with defaults (0, TideTypeUnknown) rather than left absent.
type Conditions struct {
	Tide  Tide
	Wind  Wind
	Swell Swell
}

// DefaultConditions returns a Conditions record with every slot at its
// documented default.
func DefaultConditions() Conditions {
	return Conditions{
		Tide: Tide{Height: 0, Type: TideTypeUnknown},
	}
}
