package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"simpleweather/config"
	"simpleweather/internal/models"
	"simpleweather/pkg/observe"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/3.0/onecall"
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewOpenWeatherMapRepository(baseURL, apiKey string, l *observe.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = OpenWeatherMapBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherMapRepository{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return config.ProviderOpenWeatherMap
}

type OpenWeatherMapCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type OpenWeatherMapResponse struct {
	TimezoneOffset int `json:"timezone_offset"`
	Current        *struct {
		Dt      int64                     `json:"dt"`
		Temp    float64                   `json:"temp"`
		Weather []OpenWeatherMapCondition `json:"weather"`
	} `json:"current"`
	Hourly []struct {
		Dt      int64                     `json:"dt"`
		Temp    float64                   `json:"temp"`
		Pop     float64                   `json:"pop"`
		Weather []OpenWeatherMapCondition `json:"weather"`
	} `json:"hourly"`
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
		Weather []OpenWeatherMapCondition `json:"weather"`
	} `json:"daily"`
}

type OpenWeatherMapErrorResponse struct {
	Message string `json:"message"`
}

func owmUnits(unit models.TemperatureUnit) string {
	if unit == models.Fahrenheit {
		return "imperial"
	}
	return "metric"
}

func (w *OpenWeatherMapRepository) FetchWeather(ctx context.Context, coord models.Coordinate, unit models.TemperatureUnit) (*models.Weather, error) {
	// Validate API key before making request
	if strings.TrimSpace(w.APIKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	q.Set("units", owmUnits(unit))
	q.Set("exclude", "minutely,alerts")
	q.Set("appid", w.APIKey)

	w.l.Info("making openweathermap API request", map[string]any{
		"params": coord.String(),
		"unit":   unit,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp OpenWeatherMapErrorResponse
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Message != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response OpenWeatherMapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	weather, err := weatherFromOpenWeatherMap(response, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather: %w", err)
	}
	weather.Provider = w.Name()
	weather.Location = coord

	w.l.Info("parsed API response", map[string]any{
		"hours": len(weather.Hourly),
		"days":  len(weather.Daily),
	})

	return weather, nil
}

func firstCondition(conditions []OpenWeatherMapCondition) OpenWeatherMapCondition {
	if len(conditions) == 0 {
		return OpenWeatherMapCondition{}
	}
	return conditions[0]
}

func weatherFromOpenWeatherMap(r OpenWeatherMapResponse, unit models.TemperatureUnit) (*models.Weather, error) {
	if r.Current == nil {
		return nil, fmt.Errorf("no current conditions in response")
	}

	loc := time.FixedZone("", r.TimezoneOffset)
	at := func(dt int64) time.Time { return time.Unix(dt, 0).In(loc) }

	current := firstCondition(r.Current.Weather)
	condition := "Unknown"
	if current.Description != "" {
		condition = cases.Title(language.English).String(current.Description)
	}

	weather := &models.Weather{
		Current: models.CurrentRecord{
			Time:        at(r.Current.Dt),
			Symbol:      owmSymbol(current.Icon),
			Condition:   condition,
			Temperature: models.Temperature{Value: r.Current.Temp, Unit: unit},
		},
		Hourly: make([]models.HourRecord, 0, len(r.Hourly)),
		Daily:  make([]models.DayRecord, 0, len(r.Daily)),
	}

	for _, h := range r.Hourly {
		weather.Hourly = append(weather.Hourly, models.HourRecord{
			Time:                at(h.Dt),
			Symbol:              owmSymbol(firstCondition(h.Weather).Icon),
			Temperature:         models.Temperature{Value: h.Temp, Unit: unit},
			PrecipitationChance: models.ClampChance(h.Pop),
		})
	}

	for _, d := range r.Daily {
		weather.Daily = append(weather.Daily, models.DayRecord{
			Date:   at(d.Dt),
			Symbol: owmSymbol(firstCondition(d.Weather).Icon),
			High:   models.Temperature{Value: d.Temp.Max, Unit: unit},
			Low:    models.Temperature{Value: d.Temp.Min, Unit: unit},
		})
	}

	return weather, nil
}

var _ WeatherRepository = (*OpenWeatherMapRepository)(nil)
