package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type PageOptions struct {
	Title string
	// Refresh asks the browser to reload after the interval. Zero disables it.
	Refresh time.Duration
}

type pageData struct {
	Title          string
	RefreshSeconds int
	Layout         Layout
	Chart          ChartSVG
}

// Page renders the layout as a complete HTML document.
func Page(layout Layout, opts PageOptions) ([]byte, error) {
	data := pageData{
		Title:  opts.Title,
		Layout: layout,
	}
	if opts.Refresh > 0 {
		data.RefreshSeconds = max(int(opts.Refresh.Round(time.Second)/time.Second), 1)
	}
	if layout.Chart != nil {
		data.Chart = layout.Chart.Plot(chartWidth, chartHeight)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}
