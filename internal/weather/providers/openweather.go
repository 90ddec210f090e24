package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) Current(ctx context.Context, coords weather.Coordinates) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("%w: %s: %v", weather.ErrUpstream, p.name, errNoAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", formatCoord(coords.Lat))
		values.Set("lon", formatCoord(coords.Lon))
		values.Set("units", "imperial")
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.name, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	// Pointers distinguish absent fields from zero values.
	var payload struct {
		Name *string `json:"name"`
		Main *struct {
			Temp     *float64 `json:"temp"`
			Humidity *int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description *string `json:"description"`
		} `json:"weather"`
	}
	if err := decodeJSON(p.name, resp.Body, &payload); err != nil {
		return weather.Reading{}, err
	}

	switch {
	case payload.Name == nil:
		return weather.Reading{}, malformed(p.name, "name")
	case len(payload.Weather) == 0 || payload.Weather[0].Description == nil:
		return weather.Reading{}, malformed(p.name, "weather[0].description")
	case payload.Main == nil:
		return weather.Reading{}, malformed(p.name, "main")
	case payload.Main.Temp == nil:
		return weather.Reading{}, malformed(p.name, "main.temp")
	case payload.Main.Humidity == nil:
		return weather.Reading{}, malformed(p.name, "main.humidity")
	}

	return weather.Reading{
		LocationName: *payload.Name,
		Description:  *payload.Weather[0].Description,
		TemperatureF: *payload.Main.Temp,
		HumidityPct:  *payload.Main.Humidity,
	}, nil
}
