package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	DefaultGeocodingURL = "https://api.openweathermap.org/geo/1.0/direct"
	DefaultWeatherURL   = "https://api.openweathermap.org/data/2.5/weather"
)

// maxErrorBody bounds how much of a failed response is read before closing it.
const maxErrorBody = 4 << 10

var (
	errNoHTTPClient = errors.New("http client not configured")
	errNoAPIKey     = errors.New("api key is not configured")
)

// doRequest executes a single request built by buildRequest. Transport failures
// and non-2xx statuses are reported as weather.ErrUpstream; the caller owns the
// body of a successful response.
func doRequest(
	ctx context.Context,
	client *http.Client,
	service string,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", weather.ErrUpstream, service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &weather.UpstreamError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	return resp, nil
}

// decodeJSON decodes body into v, treating any decode failure as a malformed response.
func decodeJSON(service string, body io.Reader, v any) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", weather.ErrMalformedResponse, service, err)
	}
	return nil
}

func malformed(service, field string) error {
	return fmt.Errorf("%w: %s: missing %s", weather.ErrMalformedResponse, service, field)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
