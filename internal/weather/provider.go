package weather

import "context"

// Geocoder resolves a location to coordinates.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, loc Location) (Coordinates, error)
}

// Provider abstracts a current-weather data source (e.g. OpenWeatherMap).
type Provider interface {
	Name() string
	Current(ctx context.Context, coords Coordinates) (Reading, error)
}
