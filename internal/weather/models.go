package weather

import "fmt"

// Location is the place a user asked about.
// City/State must be provided; State is a 2-letter US region code.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Query returns the "city,state,US" form understood by the geocoding API.
func (l Location) Query() string {
	return fmt.Sprintf("%s,%s,US", l.City, l.State)
}

func (l Location) String() string {
	return l.City + ", " + l.State
}

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Reading is the current weather at a set of coordinates, in imperial units.
type Reading struct {
	LocationName string  `json:"name"`
	Description  string  `json:"description"`
	TemperatureF float64 `json:"temperatureF"`
	HumidityPct  int     `json:"humidityPercent"`
}

// Outcome tags the result of a lookup.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
	OutcomeUpstreamFailure
	OutcomeMalformed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeUpstreamFailure:
		return "upstream_failure"
	case OutcomeMalformed:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Result is what a lookup produced. Reading and Style are only set when
// Outcome is OutcomeFound; Err holds the classified cause otherwise.
type Result struct {
	Outcome     Outcome
	Location    Location
	Coordinates Coordinates
	Reading     Reading
	Style       Style
	Err         error
}

// Found reports whether the lookup produced a reading.
func (r Result) Found() bool {
	return r.Outcome == OutcomeFound
}
