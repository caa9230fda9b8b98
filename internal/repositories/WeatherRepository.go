package repositories

import (
	"context"
	"fmt"
	"net/http"

	"simpleweather/config"
	"simpleweather/internal/models"
	"simpleweather/pkg/observe"
)

// WeatherRepository fetches current, hourly and daily weather in one call.
type WeatherRepository interface {
	Name() string
	FetchWeather(ctx context.Context, coord models.Coordinate, unit models.TemperatureUnit) (*models.Weather, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitWeatherRepository builds the configured provider behind a rate limiter.
func InitWeatherRepository(cfg *config.Config, l *observe.Logger, httpClient HTTPClient) (WeatherRepository, error) {
	api := cfg.SelectedAPI()

	var repo WeatherRepository
	switch api.Name {
	case config.ProviderOpenMeteo:
		repo = NewOpenMeteoRepository(api.BaseURL, l, httpClient)
	case config.ProviderOpenWeatherMap:
		owm, err := NewOpenWeatherMapRepository(api.BaseURL, api.APIKey, l, httpClient)
		if err != nil {
			return nil, err
		}
		repo = owm
	default:
		return nil, fmt.Errorf("unknown weather provider %q", api.Name)
	}

	return NewRateLimitedRepository(repo, cfg.Weather.RateLimit, cfg.Weather.RateBurst), nil
}
