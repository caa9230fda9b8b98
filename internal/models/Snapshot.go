package models

// Snapshot is the view state of the dashboard. Every field is independently
// optional; nil means the value has not arrived.
type Snapshot struct {
	CurrentSymbol      *string       `json:"current_symbol,omitempty"`
	Condition          *string       `json:"condition,omitempty"`
	CurrentTemperature *Temperature  `json:"current_temperature,omitempty"`
	TodayHigh          *Temperature  `json:"today_high,omitempty"`
	TodayLow           *Temperature  `json:"today_low,omitempty"`
	HourlyForecast     *[]HourRecord `json:"hourly_forecast,omitempty"`
}

// HasHighLow reports whether both of today's extremes are present.
func (s Snapshot) HasHighLow() bool {
	return s.TodayHigh != nil && s.TodayLow != nil
}

// IsEmpty reports whether no field has arrived yet.
func (s Snapshot) IsEmpty() bool {
	return s.CurrentSymbol == nil &&
		s.Condition == nil &&
		s.CurrentTemperature == nil &&
		s.TodayHigh == nil &&
		s.TodayLow == nil &&
		s.HourlyForecast == nil
}

// Hours returns the hourly forecast, or nil when it is absent.
func (s Snapshot) Hours() []HourRecord {
	if s.HourlyForecast == nil {
		return nil
	}
	return *s.HourlyForecast
}

// Clone returns a copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{}
	if s.CurrentSymbol != nil {
		v := *s.CurrentSymbol
		out.CurrentSymbol = &v
	}
	if s.Condition != nil {
		v := *s.Condition
		out.Condition = &v
	}
	if s.CurrentTemperature != nil {
		v := *s.CurrentTemperature
		out.CurrentTemperature = &v
	}
	if s.TodayHigh != nil {
		v := *s.TodayHigh
		out.TodayHigh = &v
	}
	if s.TodayLow != nil {
		v := *s.TodayLow
		out.TodayLow = &v
	}
	if s.HourlyForecast != nil {
		v := make([]HourRecord, len(*s.HourlyForecast))
		copy(v, *s.HourlyForecast)
		out.HourlyForecast = &v
	}
	return out
}

// Take returns at most the first n records. It never reads past len(xs).
func Take(xs []HourRecord, n int) []HourRecord {
	if n < 0 {
		n = 0
	}
	return xs[:min(n, len(xs))]
}
