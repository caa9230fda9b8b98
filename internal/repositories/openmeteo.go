package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	_ "time/tzdata"

	"simpleweather/config"
	"simpleweather/internal/models"
	"simpleweather/pkg/observe"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	// three days so that at least 24 future hours remain late in the evening
	openMeteoForecastDays = 3
)

type OpenMeteoRepository struct {
	BaseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewOpenMeteoRepository(baseURL string, l *observe.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenMeteoRepository{
		BaseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return config.ProviderOpenMeteo
}

// OpenMeteoResponse is requested with timeformat=unixtime, so every time is
// an absolute instant and only the labels depend on the zone.
type OpenMeteoResponse struct {
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int               `json:"utc_offset_seconds"`
	Current              *OpenMeteoCurrent `json:"current"`
	Hourly               OpenMeteoHourly   `json:"hourly"`
	Daily                OpenMeteoDaily    `json:"daily"`
}

type OpenMeteoCurrent struct {
	Time          int64   `json:"time"`
	Temperature2m float64 `json:"temperature_2m"`
	WeatherCode   int     `json:"weather_code"`
	IsDay         int     `json:"is_day"`
}

type OpenMeteoHourly struct {
	Time                     []int64    `json:"time"`
	Temperature2m            []float64  `json:"temperature_2m"`
	WeatherCode              []int      `json:"weather_code"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	IsDay                    []int      `json:"is_day"`
}

type OpenMeteoDaily struct {
	Time             []int64   `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
}

type OpenMeteoErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func (o *OpenMeteoRepository) requestURL(coord models.Coordinate, unit models.TemperatureUnit) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m,weather_code,is_day")
	q.Set("hourly", "temperature_2m,weather_code,precipitation_probability,is_day")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("temperature_unit", string(unit))
	q.Set("forecast_days", strconv.Itoa(openMeteoForecastDays))
	q.Set("timezone", "auto")
	q.Set("timeformat", "unixtime")
	return o.BaseURL + "?" + q.Encode()
}

func (o *OpenMeteoRepository) FetchWeather(ctx context.Context, coord models.Coordinate, unit models.TemperatureUnit) (*models.Weather, error) {
	o.l.Info("making openmeteo API request", map[string]any{
		"params": coord.String(),
		"unit":   unit,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.requestURL(coord, unit), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp OpenMeteoErrorResponse
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Error {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, errorResp.Reason)
		}
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response OpenMeteoResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	weather, err := weatherFromOpenMeteo(response, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather: %w", err)
	}
	weather.Provider = o.Name()
	weather.Location = coord

	o.l.Info("parsed API response", map[string]any{
		"hours": len(weather.Hourly),
		"days":  len(weather.Daily),
	})

	return weather, nil
}

func weatherFromOpenMeteo(r OpenMeteoResponse, unit models.TemperatureUnit) (*models.Weather, error) {
	if r.Current == nil {
		return nil, fmt.Errorf("no current conditions in response")
	}

	loc := r.location()

	symbol, condition := wmoSymbol(r.Current.WeatherCode, r.Current.IsDay != 0)

	return &models.Weather{
		Current: models.CurrentRecord{
			Time:        time.Unix(r.Current.Time, 0).In(loc),
			Symbol:      symbol,
			Condition:   condition,
			Temperature: models.Temperature{Value: r.Current.Temperature2m, Unit: unit},
		},
		Hourly: hourlyOpenMeteo(r.Hourly, unit, loc),
		Daily:  dailyOpenMeteo(r.Daily, unit, loc),
	}, nil
}

// location resolves the named zone of the location, which follows DST
// changes inside the forecast window. The current offset is only a fallback.
func (r OpenMeteoResponse) location() *time.Location {
	if r.Timezone != "" {
		if loc, err := time.LoadLocation(r.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone(r.TimezoneAbbreviation, r.UTCOffsetSeconds)
}

func hourlyOpenMeteo(h OpenMeteoHourly, unit models.TemperatureUnit, loc *time.Location) []models.HourRecord {
	// Find the minimum length to avoid index out of bounds
	n := min(len(h.Time), len(h.Temperature2m), len(h.WeatherCode))

	hours := make([]models.HourRecord, 0, n)
	for i := 0; i < n; i++ {
		isDay := true
		if i < len(h.IsDay) {
			isDay = h.IsDay[i] != 0
		}
		symbol, _ := wmoSymbol(h.WeatherCode[i], isDay)

		var chance float64
		if i < len(h.PrecipitationProbability) && h.PrecipitationProbability[i] != nil {
			chance = models.ClampChance(*h.PrecipitationProbability[i] / 100)
		}

		hours = append(hours, models.HourRecord{
			Time:                time.Unix(h.Time[i], 0).In(loc),
			Symbol:              symbol,
			Temperature:         models.Temperature{Value: h.Temperature2m[i], Unit: unit},
			PrecipitationChance: chance,
		})
	}

	return hours
}

func dailyOpenMeteo(d OpenMeteoDaily, unit models.TemperatureUnit, loc *time.Location) []models.DayRecord {
	n := min(len(d.Time), len(d.Temperature2mMax), len(d.Temperature2mMin))

	days := make([]models.DayRecord, 0, n)
	for i := 0; i < n; i++ {
		var symbol string
		if i < len(d.WeatherCode) {
			symbol, _ = wmoSymbol(d.WeatherCode[i], true)
		}

		days = append(days, models.DayRecord{
			Date:   time.Unix(d.Time[i], 0).In(loc),
			Symbol: symbol,
			High:   models.Temperature{Value: d.Temperature2mMax[i], Unit: unit},
			Low:    models.Temperature{Value: d.Temperature2mMin[i], Unit: unit},
		})
	}

	return days
}

var _ WeatherRepository = (*OpenMeteoRepository)(nil)
