package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"simpleweather/internal/models"
)

// RateLimitedRepository wraps a WeatherRepository with rate limiting
type RateLimitedRepository struct {
	repo    WeatherRepository
	limiter *rate.Limiter
}

// NewRateLimitedRepository creates a new rate limited repository.
// rps is the maximum requests per second allowed and may be fractional.
func NewRateLimitedRepository(repo WeatherRepository, rps float64, burst int) *RateLimitedRepository {
	return &RateLimitedRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Name reports the wrapped provider so logs and errors stay attributable.
func (r *RateLimitedRepository) Name() string {
	return r.repo.Name()
}

func (r *RateLimitedRepository) FetchWeather(ctx context.Context, coord models.Coordinate, unit models.TemperatureUnit) (*models.Weather, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return r.repo.FetchWeather(ctx, coord, unit)
}

var _ WeatherRepository = (*RateLimitedRepository)(nil)
