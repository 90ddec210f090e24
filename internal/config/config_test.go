package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OPENWEATHER_API_KEY", "OPENWEATHER_GEOCODING_URL", "OPENWEATHER_WEATHER_URL",
		"GEOCODING_LIMIT", "HTTP_TIMEOUT", "PORT", "PUBLIC_DIR", "APP_ENV", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.OpenWeatherAPIKey)
	assert.Equal(t, providers.DefaultGeocodingURL, cfg.GeocodingURL)
	assert.Equal(t, providers.DefaultWeatherURL, cfg.WeatherURL)
	assert.Equal(t, 1, cfg.GeocodingLimit)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./public", cfg.PublicDir)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PORT", "3000")
	t.Setenv("GEOCODING_LIMIT", "5")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.OpenWeatherAPIKey)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 5, cfg.GeocodingLimit)
	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string][2]string{
		"unparsable timeout": {"HTTP_TIMEOUT", "soon"},
		"negative timeout":   {"HTTP_TIMEOUT", "-1s"},
		"log level":          {"LOG_LEVEL", "chatty"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetenvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("GEOCODING_LIMIT", "many")
	assert.Equal(t, 1, getenvInt("GEOCODING_LIMIT", 1))
}
