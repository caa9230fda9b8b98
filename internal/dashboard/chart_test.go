package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartOf(chances ...float64) *PrecipitationChart {
	c := &PrecipitationChart{YDomain: [2]float64{0, 1}, YAxisHidden: true}
	for i, p := range chances {
		c.Points = append(c.Points, ChartPoint{Time: base.Add(time.Duration(i) * time.Hour), Chance: p})
	}
	return c
}

func TestPlot_MapsDomainToBox(t *testing.T) {
	svg := chartOf(0, 1, 0.5).Plot(100, 52)

	require.Len(t, svg.Dots, 3)
	// x spans first to last point inside the padding
	assert.InDelta(t, chartPadding, svg.Dots[0].X, 1e-9)
	assert.InDelta(t, 50, svg.Dots[1].X, 1e-9)
	assert.InDelta(t, 100-chartPadding, svg.Dots[2].X, 1e-9)
	// chance 0 sits at the bottom, 1 at the top
	assert.InDelta(t, 52-chartPadding, svg.Dots[0].Y, 1e-9)
	assert.InDelta(t, chartPadding, svg.Dots[1].Y, 1e-9)
	assert.InDelta(t, 26, svg.Dots[2].Y, 1e-9)
}

func TestPlot_CatmullRomPath(t *testing.T) {
	svg := chartOf(0.1, 0.2, 0.3, 0.4).Plot(chartWidth, chartHeight)

	assert.True(t, strings.HasPrefix(svg.Path, "M"))
	assert.Equal(t, 3, strings.Count(svg.Path, " C"), "one cubic segment per gap")
	// the curve ends on the last point
	last := svg.Dots[3]
	assert.True(t, strings.HasSuffix(svg.Path, formatPoint(last.X, last.Y)))
}

func TestPlot_CollinearPointsStayOnTheLine(t *testing.T) {
	svg := chartOf(0.5, 0.5, 0.5).Plot(100, 100)

	for _, seg := range strings.Split(svg.Path, " ") {
		seg = strings.TrimLeft(seg, "MC")
		assert.True(t, strings.HasSuffix(seg, ",50.0"), seg)
	}
}

func TestPlot_SinglePointAndEmpty(t *testing.T) {
	svg := chartOf(0.7).Plot(100, 100)
	require.Len(t, svg.Dots, 1)
	assert.InDelta(t, 50, svg.Dots[0].X, 1e-9)
	assert.Empty(t, svg.Path)

	assert.Empty(t, chartOf().Plot(100, 100).Dots)

	var nilChart *PrecipitationChart
	assert.Empty(t, nilChart.Plot(100, 100).Dots)
}

func TestPlot_ClampsOutOfDomain(t *testing.T) {
	svg := chartOf(-0.5, 1.5).Plot(100, 100)

	assert.InDelta(t, 100-chartPadding, svg.Dots[0].Y, 1e-9)
	assert.InDelta(t, chartPadding, svg.Dots[1].Y, 1e-9)
}

func formatPoint(x, y float64) string {
	var b strings.Builder
	writePoint(&b, x, y)
	return b.String()
}
