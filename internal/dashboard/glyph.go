package dashboard

var glyphs = map[string]string{
	"sun.max":         "☀️",
	"moon":            "🌙",
	"moon.stars":      "🌙",
	"cloud.sun":       "⛅",
	"cloud.moon":      "☁️",
	"cloud":           "☁️",
	"cloud.fog":       "🌫️",
	"cloud.drizzle":   "🌦️",
	"cloud.rain":      "🌧️",
	"cloud.heavyrain": "🌧️",
	"cloud.sleet":     "🌨️",
	"cloud.snow":      "❄️",
	"cloud.sun.rain":  "🌦️",
	"cloud.moon.rain": "🌧️",
	"cloud.bolt.rain": "⛈️",
}

func symbolView(name string) SymbolView {
	glyph, ok := glyphs[name]
	if !ok {
		glyph = "❔"
	}
	return SymbolView{Name: name, Glyph: glyph}
}
