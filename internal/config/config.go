package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

type AppConfig struct {
	OpenWeatherAPIKey string

	// Upstream endpoints; overridable for tests and proxies.
	GeocodingURL   string
	WeatherURL     string
	GeocodingLimit int

	// HTTPTimeout bounds every outbound upstream call.
	HTTPTimeout time.Duration

	Port      string
	PublicDir string

	AppEnv   string
	LogLevel slog.Level
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GeocodingURL = getenvDefault("OPENWEATHER_GEOCODING_URL", providers.DefaultGeocodingURL)
	cfg.WeatherURL = getenvDefault("OPENWEATHER_WEATHER_URL", providers.DefaultWeatherURL)
	cfg.GeocodingLimit = getenvInt("GEOCODING_LIMIT", 1)

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.PublicDir = getenvDefault("PUBLIC_DIR", "./public")
	cfg.AppEnv = getenvDefault("APP_ENV", "dev")

	if err := cfg.LogLevel.UnmarshalText([]byte(getenvDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
