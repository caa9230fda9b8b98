package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "simpleweather/docs"
	v1 "simpleweather/internal/controllers/http/v1"
	"simpleweather/internal/dashboard"
	"simpleweather/internal/models"
	"simpleweather/internal/services/weather"
	"simpleweather/pkg/httpserver"
	"simpleweather/pkg/observe"
)

var fetchedAt = time.Date(2025, 7, 25, 14, 30, 0, 0, time.UTC)

type stubRepository struct {
	err     error
	release chan struct{}
}

func (s *stubRepository) Name() string { return "stub" }

func (s *stubRepository) FetchWeather(ctx context.Context, coord models.Coordinate, unit models.TemperatureUnit) (*models.Weather, error) {
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}

	w := &models.Weather{
		Current: models.CurrentRecord{
			Symbol:      "cloud.rain",
			Condition:   "Rain",
			Temperature: models.Temperature{Value: 12.6, Unit: unit},
		},
	}
	for i := 0; i < 5; i++ {
		w.Hourly = append(w.Hourly, models.HourRecord{
			Time:                fetchedAt.Add(time.Duration(i+1) * time.Hour),
			Symbol:              "cloud.rain",
			Temperature:         models.Temperature{Value: 12, Unit: unit},
			PrecipitationChance: 0.6,
		})
	}
	return w, nil
}

func newApp(t *testing.T, repo *stubRepository) (*fiber.App, *dashboard.Controller) {
	t.Helper()

	l := observe.NewNopLogger()
	service := weather.NewWeatherService(repo, models.Celsius, l,
		weather.WithClock(func() time.Time { return fetchedAt }))
	controller := dashboard.NewController(service, models.Coordinate{Latitude: 51.51, Longitude: -0.13}, l)
	t.Cleanup(controller.Close)

	app := httpserver.InitFiberServer(httpserver.Options{AppName: "test-app", Ready: controller.Settled})
	v1.NewRouter(context.Background(), app, controller, v1.Options{Title: "Weather", Refresh: 2 * time.Second}, l)
	return app, controller
}

func get(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestDashboard_PendingThenLoaded(t *testing.T) {
	repo := &stubRepository{release: make(chan struct{})}
	app, controller := newApp(t, repo)

	status, _ := get(t, app, "/manage/ready")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)

	status, body := get(t, app, "/")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `<meta http-equiv="refresh" content="2">`)
	assert.NotContains(t, body, "<section")

	close(repo.release)
	require.NoError(t, controller.Mount(context.Background()).Wait(context.Background()))

	status, body = get(t, app, "/")
	require.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, body, `http-equiv="refresh"`)
	assert.Contains(t, body, `<div class="temperature">13°C</div>`)
	assert.Contains(t, body, `<div class="condition">Rain</div>`)
	assert.NotContains(t, body, `class="high-low"`)

	status, _ = get(t, app, "/manage/ready")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestDashboard_FailedFetchRendersBackgroundOnly(t *testing.T) {
	app, controller := newApp(t, &stubRepository{err: errors.New("dial tcp: connection refused")})

	get(t, app, "/")
	_ = controller.Mount(context.Background()).Wait(context.Background())

	status, body := get(t, app, "/")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "linear-gradient")
	assert.NotContains(t, body, "<section")
	assert.NotContains(t, body, `http-equiv="refresh"`)

	status, body = get(t, app, "/api/snapshot")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"state":"failed","snapshot":{}}`, body)
}

func TestSnapshot_DoesNotMount(t *testing.T) {
	app, controller := newApp(t, &stubRepository{})

	status, body := get(t, app, "/api/snapshot")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"state":"pending","snapshot":{}}`, body)
	assert.Equal(t, dashboard.StatePending, controller.State())
}

func TestLayout_ReportsShortForecast(t *testing.T) {
	app, controller := newApp(t, &stubRepository{})

	get(t, app, "/api/layout")
	require.NoError(t, controller.Mount(context.Background()).Wait(context.Background()))

	status, body := get(t, app, "/api/layout")
	require.Equal(t, fiber.StatusOK, status)

	var resp v1.LayoutResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, dashboard.StateLoaded, resp.State)
	require.NotNil(t, resp.Layout.Hourly)
	assert.Len(t, resp.Layout.Hourly.Cells, 5)
	require.NotNil(t, resp.Layout.Chart)
	assert.Len(t, resp.Layout.Chart.Points, 5)
	assert.Nil(t, resp.Layout.Card.HighLow)
	assert.Equal(t, "cloud.rain", resp.Layout.Card.Symbol.Name)

	status, body = get(t, app, "/api/snapshot")
	require.Equal(t, fiber.StatusOK, status)

	var snap v1.SnapshotResponse
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	assert.Equal(t, "Rain", *snap.Snapshot.Condition)
	assert.Nil(t, snap.Snapshot.TodayHigh)
	assert.Len(t, snap.Snapshot.Hours(), 5)
}

func TestSwaggerDoc(t *testing.T) {
	app, _ := newApp(t, &stubRepository{})

	status, body := get(t, app, "/swagger/doc.json")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "/api/snapshot")
}
