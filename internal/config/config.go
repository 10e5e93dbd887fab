// README: Config loader with env defaults for upstream URLs, HTTP behaviour and suggestion timing.
package config

import (
	"os"
	"time"
)

type Config struct {
	Routing struct {
		BaseURL string
	}
	Geocoding struct {
		BaseURL string
	}
	Weather struct {
		BaseURL string
	}
	Traffic struct {
		BaseURL string
	}
	HTTP struct {
		Timeout   time.Duration
		UserAgent string
	}
	Suggest struct {
		Debounce time.Duration
		Settle   time.Duration
	}
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.Routing.BaseURL = envOrDefault("TAXIFARE_ROUTING_URL", "https://router.project-osrm.org")
	cfg.Geocoding.BaseURL = envOrDefault("TAXIFARE_GEOCODING_URL", "https://nominatim.openstreetmap.org")
	cfg.Weather.BaseURL = envOrDefault("TAXIFARE_WEATHER_URL", "https://api.open-meteo.com")
	cfg.Traffic.BaseURL = envOrDefault("TAXIFARE_TRAFFIC_URL", "https://infocar.dgt.es/datex")
	cfg.HTTP.Timeout = envOrDefaultDuration("TAXIFARE_HTTP_TIMEOUT", 10*time.Second)
	cfg.HTTP.UserAgent = envOrDefault("TAXIFARE_USER_AGENT", "taxifare/1.0")
	cfg.Suggest.Debounce = envOrDefaultDuration("TAXIFARE_SUGGEST_DEBOUNCE", 500*time.Millisecond)
	cfg.Suggest.Settle = envOrDefaultDuration("TAXIFARE_SUGGEST_SETTLE", 250*time.Millisecond)
	cfg.Log.Level = envOrDefault("TAXIFARE_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
