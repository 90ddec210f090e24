package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when geocoding yields no match for a location.
	ErrNotFound = errors.New("location not found")
	// ErrUpstream covers non-2xx statuses and transport failures from an upstream API.
	ErrUpstream = errors.New("upstream request failed")
	// ErrMalformedResponse is returned when an upstream body lacks expected fields.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// UpstreamError describes a non-success HTTP status from an upstream API.
type UpstreamError struct {
	Service    string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.Service, e.StatusCode, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// Classify maps a lookup error onto an Outcome. ok is false for errors that
// are not a known upstream failure mode.
func Classify(err error) (outcome Outcome, ok bool) {
	switch {
	case err == nil:
		return OutcomeFound, true
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound, true
	case errors.Is(err, ErrMalformedResponse):
		return OutcomeMalformed, true
	case errors.Is(err, ErrUpstream):
		return OutcomeUpstreamFailure, true
	default:
		return 0, false
	}
}
