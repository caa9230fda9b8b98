package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleweather/internal/models"
)

var base = time.Date(2025, 7, 25, 15, 0, 0, 0, time.UTC)

func celsius(v float64) *models.Temperature {
	return &models.Temperature{Value: v, Unit: models.Celsius}
}

func hours(n int) []models.HourRecord {
	out := make([]models.HourRecord, n)
	for i := range out {
		out[i] = models.HourRecord{
			Time:                base.Add(time.Duration(i) * time.Hour),
			Symbol:              "cloud.rain",
			Temperature:         *celsius(15.6 + float64(i)),
			PrecipitationChance: float64(i%11) / 10,
		}
	}
	return out
}

func strPtr(s string) *string { return &s }

const (
	hasSymbol = 1 << iota
	hasTemperature
	hasCondition
	hasHigh
	hasLow
	hasHourly
)

func snapshotWith(mask int) models.Snapshot {
	var s models.Snapshot
	if mask&hasSymbol != 0 {
		s.CurrentSymbol = strPtr("cloud.sun")
	}
	if mask&hasTemperature != 0 {
		s.CurrentTemperature = celsius(21.4)
	}
	if mask&hasCondition != 0 {
		s.Condition = strPtr("Partly Cloudy")
	}
	if mask&hasHigh != 0 {
		s.TodayHigh = celsius(24.2)
	}
	if mask&hasLow != 0 {
		s.TodayLow = celsius(14.8)
	}
	if mask&hasHourly != 0 {
		h := hours(30)
		s.HourlyForecast = &h
	}
	return s
}

func TestRender_EveryPresenceSubset(t *testing.T) {
	for mask := 0; mask < 1<<6; mask++ {
		t.Run(fmt.Sprintf("mask=%06b", mask), func(t *testing.T) {
			var want []string
			if mask&hasSymbol != 0 {
				want = append(want, "symbol")
			}
			if mask&hasTemperature != 0 {
				want = append(want, "temperature")
			}
			if mask&hasCondition != 0 {
				want = append(want, "condition")
			}
			if mask&hasHigh != 0 && mask&hasLow != 0 {
				want = append(want, "high_low")
			}
			if mask&hasHourly != 0 {
				want = append(want, "hourly", "chart")
			}

			var layout Layout
			require.NotPanics(t, func() { layout = Render(snapshotWith(mask)) })
			assert.Equal(t, want, layout.Sections())

			require.NotPanics(t, func() {
				_, err := Page(layout, PageOptions{Title: "Weather"})
				require.NoError(t, err)
			})
		})
	}
}

func TestRender_HighLowNeedsBoth(t *testing.T) {
	assert.Nil(t, Render(snapshotWith(hasHigh)).Card.HighLow)
	assert.Nil(t, Render(snapshotWith(hasLow)).Card.HighLow)

	layout := Render(snapshotWith(hasHigh | hasLow))
	require.NotNil(t, layout.Card.HighLow)
	assert.Equal(t, "H:24°C L:15°C", *layout.Card.HighLow)
	assert.True(t, layout.Card.Visible())
}

func TestRender_CardContent(t *testing.T) {
	layout := Render(snapshotWith(hasSymbol | hasTemperature | hasCondition))

	assert.Equal(t, SymbolView{Name: "cloud.sun", Glyph: "⛅"}, *layout.Card.Symbol)
	assert.Equal(t, "21°C", *layout.Card.Temperature)
	assert.Equal(t, "Partly Cloudy", *layout.Card.Condition)
}

func TestRender_EmptySnapshot(t *testing.T) {
	layout := Render(models.Snapshot{})

	assert.Empty(t, layout.Sections())
	assert.False(t, layout.Card.Visible())
	assert.Nil(t, layout.Hourly)
	assert.Nil(t, layout.Chart)
}

func TestRender_ShortForecastIsNotPadded(t *testing.T) {
	h := hours(5)
	layout := Render(models.Snapshot{HourlyForecast: &h})

	require.NotNil(t, layout.Hourly)
	require.NotNil(t, layout.Chart)
	assert.Len(t, layout.Hourly.Cells, 5)
	assert.Len(t, layout.Chart.Points, 5)
}

func TestRender_LongForecastIsBounded(t *testing.T) {
	s := snapshotWith(hasHourly)
	layout := Render(s)

	assert.Len(t, layout.Hourly.Cells, HourlyStripLength)
	assert.Len(t, layout.Chart.Points, ChartLength)

	assert.Equal(t, "3 PM", layout.Hourly.Cells[0].Hour)
	assert.Equal(t, "4 PM", layout.Hourly.Cells[1].Hour)
	assert.Equal(t, "16°C", layout.Hourly.Cells[0].Temperature)
	assert.Equal(t, "cloud.rain", layout.Hourly.Cells[0].Symbol.Name)

	assert.Equal(t, [2]float64{0, 1}, layout.Chart.YDomain)
	assert.True(t, layout.Chart.YAxisHidden)
	assert.Equal(t, s.Hours()[11].Time, layout.Chart.Points[11].Time)
	assert.Equal(t, s.Hours()[11].PrecipitationChance, layout.Chart.Points[11].Chance)
}

func TestRender_PresentButEmptyForecast(t *testing.T) {
	h := []models.HourRecord{}
	layout := Render(models.Snapshot{HourlyForecast: &h})

	require.NotNil(t, layout.Hourly)
	assert.Empty(t, layout.Hourly.Cells)
	assert.Empty(t, layout.Chart.Points)

	_, err := Page(layout, PageOptions{})
	assert.NoError(t, err)
}

func TestRender_HourLabelUsesRecordZone(t *testing.T) {
	zone := time.FixedZone("BST", 3600)
	h := []models.HourRecord{{Time: time.Date(2025, 7, 25, 23, 0, 0, 0, zone)}}
	layout := Render(models.Snapshot{HourlyForecast: &h})

	assert.Equal(t, "11 PM", layout.Hourly.Cells[0].Hour)
	assert.Equal(t, "❔", layout.Hourly.Cells[0].Symbol.Glyph)
}
