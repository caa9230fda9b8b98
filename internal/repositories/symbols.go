package repositories

// Symbol names follow the SF Symbols vocabulary so the dashboard can key its
// glyphs on a provider-independent name.

type wmoCondition struct {
	condition string
	day       string
	night     string
}

var wmoCodes = map[int]wmoCondition{
	0:  {"Clear", "sun.max", "moon.stars"},
	1:  {"Mostly Clear", "sun.max", "moon"},
	2:  {"Partly Cloudy", "cloud.sun", "cloud.moon"},
	3:  {"Cloudy", "cloud", "cloud"},
	45: {"Foggy", "cloud.fog", "cloud.fog"},
	48: {"Foggy", "cloud.fog", "cloud.fog"},
	51: {"Drizzle", "cloud.drizzle", "cloud.drizzle"},
	53: {"Drizzle", "cloud.drizzle", "cloud.drizzle"},
	55: {"Drizzle", "cloud.drizzle", "cloud.drizzle"},
	56: {"Freezing Drizzle", "cloud.sleet", "cloud.sleet"},
	57: {"Freezing Drizzle", "cloud.sleet", "cloud.sleet"},
	61: {"Rain", "cloud.rain", "cloud.rain"},
	63: {"Rain", "cloud.rain", "cloud.rain"},
	65: {"Heavy Rain", "cloud.heavyrain", "cloud.heavyrain"},
	66: {"Freezing Rain", "cloud.sleet", "cloud.sleet"},
	67: {"Freezing Rain", "cloud.sleet", "cloud.sleet"},
	71: {"Snow", "cloud.snow", "cloud.snow"},
	73: {"Snow", "cloud.snow", "cloud.snow"},
	75: {"Heavy Snow", "cloud.snow", "cloud.snow"},
	77: {"Snow Grains", "cloud.snow", "cloud.snow"},
	80: {"Rain Showers", "cloud.sun.rain", "cloud.moon.rain"},
	81: {"Rain Showers", "cloud.sun.rain", "cloud.moon.rain"},
	82: {"Heavy Rain Showers", "cloud.heavyrain", "cloud.heavyrain"},
	85: {"Snow Showers", "cloud.snow", "cloud.snow"},
	86: {"Snow Showers", "cloud.snow", "cloud.snow"},
	95: {"Thunderstorms", "cloud.bolt.rain", "cloud.bolt.rain"},
	96: {"Thunderstorms with Hail", "cloud.bolt.rain", "cloud.bolt.rain"},
	99: {"Thunderstorms with Hail", "cloud.bolt.rain", "cloud.bolt.rain"},
}

// wmoSymbol maps a WMO weather interpretation code to a symbol and condition.
func wmoSymbol(code int, isDay bool) (symbol, condition string) {
	c, ok := wmoCodes[code]
	if !ok {
		return "questionmark", "Unknown"
	}
	if isDay {
		return c.day, c.condition
	}
	return c.night, c.condition
}

var owmIcons = map[string]string{
	"01d": "sun.max",
	"01n": "moon.stars",
	"02d": "cloud.sun",
	"02n": "cloud.moon",
	"03d": "cloud",
	"03n": "cloud",
	"04d": "cloud",
	"04n": "cloud",
	"09d": "cloud.heavyrain",
	"09n": "cloud.heavyrain",
	"10d": "cloud.sun.rain",
	"10n": "cloud.moon.rain",
	"11d": "cloud.bolt.rain",
	"11n": "cloud.bolt.rain",
	"13d": "cloud.snow",
	"13n": "cloud.snow",
	"50d": "cloud.fog",
	"50n": "cloud.fog",
}

func owmSymbol(icon string) string {
	if s, ok := owmIcons[icon]; ok {
		return s
	}
	return "questionmark"
}
