package weather

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"simpleweather/internal/models"
	"simpleweather/internal/repositories"
	"simpleweather/pkg/observe"
)

var errNoWeather = errors.New("provider returned no weather")

// WeatherService fetches weather for one location and turns it into a snapshot.
type WeatherService struct {
	repo         repositories.WeatherRepository
	unit         models.TemperatureUnit
	l            *observe.Logger
	now          func() time.Time
	fetchTimeout time.Duration
}

type Option func(*WeatherService)

// WithClock replaces time.Now as the source of the fetch completion time.
func WithClock(now func() time.Time) Option {
	return func(s *WeatherService) {
		s.now = now
	}
}

// WithFetchTimeout bounds a single fetch. Zero means no timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *WeatherService) {
		s.fetchTimeout = d
	}
}

func NewWeatherService(repo repositories.WeatherRepository, unit models.TemperatureUnit, l *observe.Logger, opts ...Option) *WeatherService {
	s := &WeatherService{
		repo: repo,
		unit: unit,
		l:    l,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch calls the provider once and builds the snapshot relative to the
// moment the call completed. On failure the error is a *WeatherFetchError.
func (s *WeatherService) Fetch(ctx context.Context, coord models.Coordinate) (models.Snapshot, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	s.l.Info("starting weather fetch", map[string]any{
		"provider": s.repo.Name(),
		"lat":      coord.Latitude,
		"lon":      coord.Longitude,
		"unit":     s.unit,
	})

	weather, err := s.repo.FetchWeather(ctx, coord, s.unit)
	if err == nil && weather == nil {
		err = errNoWeather
	}
	if err != nil {
		return models.Snapshot{}, &WeatherFetchError{Provider: s.repo.Name(), Err: err}
	}

	snapshot := BuildSnapshot(weather, s.now())

	s.l.Info("completed weather fetch", map[string]any{
		"provider":    s.repo.Name(),
		"hours":       len(snapshot.Hours()),
		"rawHours":    len(weather.Hourly),
		"hasHighLow":  snapshot.HasHighLow(),
		"currentTemp": weather.Current.Temperature.Narrow(),
	})

	return snapshot, nil
}

// BuildSnapshot distributes a provider result into the snapshot fields. Only
// hours strictly after now are kept, in provider order; high and low come from
// the first daily record when there is one.
func BuildSnapshot(w *models.Weather, now time.Time) models.Snapshot {
	symbol := w.Current.Symbol
	condition := w.Current.Condition
	current := w.Current.Temperature

	hours := make([]models.HourRecord, 0, len(w.Hourly))
	for _, h := range w.Hourly {
		if h.Time.After(now) {
			hours = append(hours, h)
		}
	}

	s := models.Snapshot{
		CurrentSymbol:      &symbol,
		Condition:          &condition,
		CurrentTemperature: &current,
		HourlyForecast:     &hours,
	}

	if len(w.Daily) > 0 {
		high := w.Daily[0].High
		low := w.Daily[0].Low
		s.TodayHigh = &high
		s.TodayLow = &low
	}

	return s
}
