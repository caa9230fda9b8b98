package dashboard

import (
	"time"

	"simpleweather/internal/models"
)

const (
	HourlyStripLength = 24
	ChartLength       = 12

	hourLayout = "3 PM"
)

// Layout is the set of sub-views the dashboard shows for one snapshot. A nil
// member is a sub-view that is not rendered.
type Layout struct {
	Card   Card                `json:"card"`
	Hourly *HourlyStrip        `json:"hourly,omitempty"`
	Chart  *PrecipitationChart `json:"chart,omitempty"`
}

type Card struct {
	Symbol      *SymbolView `json:"symbol,omitempty"`
	Temperature *string     `json:"temperature,omitempty" example:"21°C"`
	Condition   *string     `json:"condition,omitempty" example:"Partly Cloudy"`
	HighLow     *string     `json:"high_low,omitempty" example:"H:24°C L:15°C"`
}

func (c Card) Visible() bool {
	return c.Symbol != nil || c.Temperature != nil || c.Condition != nil || c.HighLow != nil
}

type SymbolView struct {
	Name  string `json:"name" example:"cloud.sun"`
	Glyph string `json:"glyph" example:"⛅"`
}

type HourlyStrip struct {
	Cells []HourCell `json:"cells"`
}

type HourCell struct {
	Time        time.Time  `json:"time"`
	Hour        string     `json:"hour" example:"3 PM"`
	Symbol      SymbolView `json:"symbol"`
	Temperature string     `json:"temperature" example:"22°C"`
}

type PrecipitationChart struct {
	Points        []ChartPoint `json:"points"`
	YDomain       [2]float64   `json:"y_domain"`
	YAxisHidden   bool         `json:"y_axis_hidden"`
	Interpolation string       `json:"interpolation" example:"catmullRom"`
}

type ChartPoint struct {
	Time   time.Time `json:"time"`
	Chance float64   `json:"chance" example:"0.35"`
}

// Render builds the layout from whatever subset of the snapshot is present.
func Render(s models.Snapshot) Layout {
	var layout Layout

	if s.CurrentSymbol != nil {
		v := symbolView(*s.CurrentSymbol)
		layout.Card.Symbol = &v
	}
	if s.CurrentTemperature != nil {
		v := s.CurrentTemperature.Narrow()
		layout.Card.Temperature = &v
	}
	if s.Condition != nil {
		v := *s.Condition
		layout.Card.Condition = &v
	}
	if s.HasHighLow() {
		v := "H:" + s.TodayHigh.Narrow() + " L:" + s.TodayLow.Narrow()
		layout.Card.HighLow = &v
	}

	if s.HourlyForecast != nil {
		hours := s.Hours()
		layout.Hourly = hourlyStrip(models.Take(hours, HourlyStripLength))
		layout.Chart = precipitationChart(models.Take(hours, ChartLength))
	}

	return layout
}

func hourlyStrip(hours []models.HourRecord) *HourlyStrip {
	cells := make([]HourCell, 0, len(hours))
	for _, h := range hours {
		cells = append(cells, HourCell{
			Time:        h.Time,
			Hour:        h.Time.Format(hourLayout),
			Symbol:      symbolView(h.Symbol),
			Temperature: h.Temperature.Narrow(),
		})
	}
	return &HourlyStrip{Cells: cells}
}

func precipitationChart(hours []models.HourRecord) *PrecipitationChart {
	points := make([]ChartPoint, 0, len(hours))
	for _, h := range hours {
		points = append(points, ChartPoint{Time: h.Time, Chance: models.ClampChance(h.PrecipitationChance)})
	}
	return &PrecipitationChart{
		Points:        points,
		YDomain:       [2]float64{0, 1},
		YAxisHidden:   true,
		Interpolation: "catmullRom",
	}
}

// Sections lists the rendered sub-views by name, in page order.
func (l Layout) Sections() []string {
	var out []string
	if l.Card.Symbol != nil {
		out = append(out, "symbol")
	}
	if l.Card.Temperature != nil {
		out = append(out, "temperature")
	}
	if l.Card.Condition != nil {
		out = append(out, "condition")
	}
	if l.Card.HighLow != nil {
		out = append(out, "high_low")
	}
	if l.Hourly != nil {
		out = append(out, "hourly")
	}
	if l.Chart != nil {
		out = append(out, "chart")
	}
	return out
}
