package models

import (
	"math"
	"strconv"
)

// TemperatureUnit is the unit providers report temperatures in.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// Symbol returns the bare unit symbol appended in narrow formatting.
func (u TemperatureUnit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	}
	return "°"
}

// Valid reports whether u is one of the supported units.
func (u TemperatureUnit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// Temperature is a value tagged with its unit.
type Temperature struct {
	Value float64         `json:"value" example:"21.4"`
	Unit  TemperatureUnit `json:"unit" example:"celsius"`
}

// Narrow formats the temperature as a rounded value with the unit symbol
// directly appended, e.g. "21°C".
func (t Temperature) Narrow() string {
	v := math.Round(t.Value)
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', 0, 64) + t.Unit.Symbol()
}

func (t Temperature) String() string {
	return t.Narrow()
}
