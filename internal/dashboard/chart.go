package dashboard

import (
	"strconv"
	"strings"
)

const (
	chartWidth   = 320.0
	chartHeight  = 100.0
	chartPadding = 6.0
)

// ChartSVG is the drawable form of a precipitation chart.
type ChartSVG struct {
	Width  float64
	Height float64
	Path   string
	Dots   []Dot
}

type Dot struct {
	X, Y   float64
	Chance float64
}

// Plot maps the chart points into a width x height box, with time along X and
// the fixed [0,1] domain along Y, and joins them with a Catmull-Rom spline.
func (c *PrecipitationChart) Plot(width, height float64) ChartSVG {
	out := ChartSVG{Width: width, Height: height}
	if c == nil || len(c.Points) == 0 {
		return out
	}

	lo, hi := c.YDomain[0], c.YDomain[1]
	if hi <= lo {
		lo, hi = 0, 1
	}

	first, last := c.Points[0].Time, c.Points[len(c.Points)-1].Time
	span := last.Sub(first).Seconds()
	innerW := width - 2*chartPadding
	innerH := height - 2*chartPadding

	out.Dots = make([]Dot, 0, len(c.Points))
	for _, p := range c.Points {
		x := chartPadding + innerW/2
		if span > 0 {
			x = chartPadding + p.Time.Sub(first).Seconds()/span*innerW
		}
		v := min(max(p.Chance, lo), hi)
		y := chartPadding + (1-(v-lo)/(hi-lo))*innerH
		out.Dots = append(out.Dots, Dot{X: x, Y: y, Chance: p.Chance})
	}

	out.Path = catmullRomPath(out.Dots)
	return out
}

// catmullRomPath converts a uniform Catmull-Rom spline through the dots into
// cubic Bézier segments. End points are duplicated as their own neighbours.
func catmullRomPath(dots []Dot) string {
	if len(dots) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M")
	writePoint(&b, dots[0].X, dots[0].Y)

	for i := 0; i < len(dots)-1; i++ {
		p0 := dots[max(i-1, 0)]
		p1 := dots[i]
		p2 := dots[i+1]
		p3 := dots[min(i+2, len(dots)-1)]

		b.WriteString(" C")
		writePoint(&b, p1.X+(p2.X-p0.X)/6, p1.Y+(p2.Y-p0.Y)/6)
		b.WriteString(" ")
		writePoint(&b, p2.X-(p3.X-p1.X)/6, p2.Y-(p3.Y-p1.Y)/6)
		b.WriteString(" ")
		writePoint(&b, p2.X, p2.Y)
	}

	return b.String()
}

func writePoint(b *strings.Builder, x, y float64) {
	b.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
	b.WriteString(",")
	b.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
}
