// README: Current-weather adapter for an Open-Meteo-compatible API.
package maps

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"taxifare/internal/types"
)

// WeatherInfo is the enrichment shown next to a fare estimate.
type WeatherInfo struct {
	Temperature int // °C, rounded
	Condition   string
	Icon        string
}

// WeatherService fetches current conditions for a position.
type WeatherService struct {
	baseURL string
	client  *apiClient
	log     *zap.Logger
}

func NewWeatherService(baseURL string, timeout time.Duration, userAgent string, log *zap.Logger) *WeatherService {
	return &WeatherService{
		baseURL: baseURL,
		client:  newAPIClient(timeout, userAgent, log),
		log:     log,
	}
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current returns the weather at pos, or an error for the caller to absorb;
// weather is best-effort and never fails a fare request.
func (s *WeatherService) Current(ctx context.Context, pos types.Coordinates) (WeatherInfo, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current_weather=true",
		s.baseURL, pos.Lat, pos.Lng)

	var resp openMeteoResponse
	if err := s.client.getJSON(ctx, url, &resp); err != nil {
		return WeatherInfo{}, fmt.Errorf("weather: %w", err)
	}

	condition, icon := describeWeatherCode(resp.CurrentWeather.WeatherCode)
	return WeatherInfo{
		Temperature: int(math.Round(resp.CurrentWeather.Temperature)),
		Condition:   condition,
		Icon:        icon,
	}, nil
}

// describeWeatherCode maps a WMO weather code onto a condition label and an
// icon glyph through fixed numeric bands.
func describeWeatherCode(code int) (string, string) {
	switch {
	case code == 0:
		return "Despejado", "☀️"
	case code >= 1 && code <= 3:
		return "Parcialmente nublado", "⛅"
	case code >= 45 && code <= 48:
		return "Niebla", "🌫️"
	case code >= 51 && code <= 55:
		return "Llovizna", "🌦️"
	case code >= 61 && code <= 65:
		return "Lluvia", "🌧️"
	case code >= 71 && code <= 77:
		return "Nieve", "❄️"
	case code >= 80 && code <= 82:
		return "Chubascos", "🌧️"
	case code >= 95 && code <= 99:
		return "Tormenta", "⛈️"
	default:
		return "Variable", "🌤️"
	}
}
