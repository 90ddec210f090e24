package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service runs the geocode → current weather pipeline for a location.
type Service struct {
	geocoder Geocoder
	provider Provider
	log      *slog.Logger
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, provider Provider, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		geocoder: geocoder,
		provider: provider,
		log:      log,
	}
}

// Lookup resolves loc and fetches its current weather. Known upstream failures
// are reported through Result.Outcome; the returned error is reserved for
// failures that fit none of them.
func (s *Service) Lookup(ctx context.Context, loc Location) (Result, error) {
	res := Result{Location: loc}
	if s.geocoder == nil || s.provider == nil {
		return res, errors.New("weather service is not fully configured")
	}

	coords, err := s.geocoder.Geocode(ctx, loc)
	if err != nil {
		return s.fail(res, s.geocoder.Name(), err)
	}
	res.Coordinates = coords

	reading, err := s.provider.Current(ctx, coords)
	if err != nil {
		return s.fail(res, s.provider.Name(), err)
	}

	s.log.InfoContext(ctx, fmt.Sprintf("Weather in %s: %s, Temperature: %v°F",
		reading.LocationName, reading.Description, reading.TemperatureF),
		"location", loc.String(),
		"lat", coords.Lat,
		"lon", coords.Lon,
	)

	res.Outcome = OutcomeFound
	res.Reading = reading
	res.Style = StyleFor(reading.Description)
	return res, nil
}

func (s *Service) fail(res Result, stage string, err error) (Result, error) {
	outcome, ok := Classify(err)
	if !ok {
		return res, fmt.Errorf("%s: %w", stage, err)
	}

	res.Outcome = outcome
	res.Err = err
	s.log.Warn("weather lookup failed",
		"stage", stage,
		"location", res.Location.String(),
		"outcome", outcome.String(),
		"error", err,
	)
	return res, nil
}
