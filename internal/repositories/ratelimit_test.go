package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleweather/config"
	"simpleweather/internal/models"
	"simpleweather/pkg/observe"
)

type countingRepository struct {
	calls int
}

func (c *countingRepository) Name() string { return "counting" }

func (c *countingRepository) FetchWeather(ctx context.Context, coord models.Coordinate, unit models.TemperatureUnit) (*models.Weather, error) {
	c.calls++
	return &models.Weather{Provider: c.Name(), Location: coord}, nil
}

func TestRateLimitedRepository_Delegates(t *testing.T) {
	inner := &countingRepository{}
	repo := NewRateLimitedRepository(inner, 1, 1)

	weather, err := repo.FetchWeather(context.Background(), london, models.Celsius)
	require.NoError(t, err)

	assert.Equal(t, "counting", repo.Name())
	assert.Equal(t, london, weather.Location)
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimitedRepository_WaitCanceled(t *testing.T) {
	inner := &countingRepository{}
	repo := NewRateLimitedRepository(inner, 0.01, 1)

	_, err := repo.FetchWeather(context.Background(), london, models.Celsius)
	require.NoError(t, err)

	// the burst is spent, the next token is 100s away
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = repo.FetchWeather(ctx, london, models.Celsius)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait canceled")
	assert.Equal(t, 1, inner.calls)
}

func TestInitWeatherRepository(t *testing.T) {
	l := observe.NewNopLogger()

	cfg := config.Default()
	repo, err := InitWeatherRepository(cfg, l, nil)
	require.NoError(t, err)
	assert.Equal(t, "open-meteo", repo.Name())
	assert.IsType(t, &RateLimitedRepository{}, repo)

	cfg.Weather.Provider = config.ProviderOpenWeatherMap
	_, err = InitWeatherRepository(cfg, l, nil)
	assert.EqualError(t, err, "API key cannot be empty")

	cfg.Weather.APIKey = "key"
	repo, err = InitWeatherRepository(cfg, l, nil)
	require.NoError(t, err)
	assert.Equal(t, "openweathermap", repo.Name())

	cfg.Weather.Provider = "weatherkit"
	_, err = InitWeatherRepository(cfg, l, nil)
	assert.EqualError(t, err, `unknown weather provider "weatherkit"`)
}

func TestWMOSymbol(t *testing.T) {
	symbol, condition := wmoSymbol(0, true)
	assert.Equal(t, "sun.max", symbol)
	assert.Equal(t, "Clear", condition)

	symbol, _ = wmoSymbol(0, false)
	assert.Equal(t, "moon.stars", symbol)

	symbol, condition = wmoSymbol(42, true)
	assert.Equal(t, "questionmark", symbol)
	assert.Equal(t, "Unknown", condition)

	assert.Equal(t, "cloud.fog", owmSymbol("50n"))
	assert.Equal(t, "questionmark", owmSymbol(""))
}
