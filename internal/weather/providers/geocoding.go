package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// OpenWeatherGeocoder implements weather.Geocoder using the OpenWeatherMap
// direct geocoding API, restricted to the US.
type OpenWeatherGeocoder struct {
	name    string
	apiKey  string
	baseURL string
	limit   int
	client  *http.Client
}

func NewOpenWeatherGeocoder(client *http.Client, apiKey, baseURL string, limit int) *OpenWeatherGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	if limit <= 0 {
		limit = 1
	}
	return &OpenWeatherGeocoder{
		name:    "openweathermap-geocoding",
		apiKey:  apiKey,
		baseURL: baseURL,
		limit:   limit,
		client:  client,
	}
}

func (g *OpenWeatherGeocoder) Name() string {
	return g.name
}

// Geocode returns the coordinates of the first match in upstream order.
func (g *OpenWeatherGeocoder) Geocode(ctx context.Context, loc weather.Location) (weather.Coordinates, error) {
	if g.apiKey == "" {
		return weather.Coordinates{}, fmt.Errorf("%w: %s: %v", weather.ErrUpstream, g.name, errNoAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", loc.Query())
		values.Set("limit", strconv.Itoa(g.limit))
		values.Set("appid", g.apiKey)

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, g.client, g.name, buildRequest)
	if err != nil {
		return weather.Coordinates{}, err
	}
	defer resp.Body.Close()

	var payload []struct {
		Name  string   `json:"name"`
		State string   `json:"state"`
		Lat   *float64 `json:"lat"`
		Lon   *float64 `json:"lon"`
	}
	if err := decodeJSON(g.name, resp.Body, &payload); err != nil {
		return weather.Coordinates{}, err
	}

	if len(payload) == 0 {
		return weather.Coordinates{}, fmt.Errorf("%w: %s", weather.ErrNotFound, loc.Query())
	}

	first := payload[0]
	if first.Lat == nil {
		return weather.Coordinates{}, malformed(g.name, "lat")
	}
	if first.Lon == nil {
		return weather.Coordinates{}, malformed(g.name, "lon")
	}

	return weather.Coordinates{Lat: *first.Lat, Lon: *first.Lon}, nil
}
