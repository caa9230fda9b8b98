package models

import (
	"fmt"
	"time"
)

// Coordinate is the fixed location the dashboard is rendered for.
type Coordinate struct {
	Latitude  float64 `json:"latitude" example:"51.51"`
	Longitude float64 `json:"longitude" example:"-0.13"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Latitude, c.Longitude)
}

// CurrentRecord is the provider's current-conditions record.
type CurrentRecord struct {
	Time        time.Time   `json:"time"`
	Symbol      string      `json:"symbol" example:"cloud.sun"`
	Condition   string      `json:"condition" example:"Partly Cloudy"`
	Temperature Temperature `json:"temperature"`
}

// HourRecord is one hour of the hourly forecast.
type HourRecord struct {
	Time                time.Time   `json:"time"`
	Symbol              string      `json:"symbol" example:"cloud.rain"`
	Temperature         Temperature `json:"temperature"`
	PrecipitationChance float64     `json:"precipitation_chance" example:"0.35"`
}

// DayRecord holds one day's extremes, starting at local midnight.
type DayRecord struct {
	Date   time.Time   `json:"date"`
	Symbol string      `json:"symbol" example:"sun.max"`
	High   Temperature `json:"high"`
	Low    Temperature `json:"low"`
}

// Weather is the combined current, hourly and daily result of one provider call.
type Weather struct {
	Provider string        `json:"provider" example:"open-meteo"`
	Location Coordinate    `json:"location"`
	Current  CurrentRecord `json:"current"`
	Hourly   []HourRecord  `json:"hourly"`
	Daily    []DayRecord   `json:"daily"`
}

// ClampChance keeps a precipitation probability inside [0,1].
func ClampChance(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
