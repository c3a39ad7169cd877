package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosbeam/internal/load"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

// ChartOptions controls the size of ASCII charts
type ChartOptions struct {
	Width     int    // plot columns, 0 = one column per station
	Height    int    // plot rows
	Precision uint   // decimals on the axis labels
	Unit      string // appended to the caption
}

// DefaultChartOptions fit an 80-column terminal
var DefaultChartOptions = ChartOptions{Width: 60, Height: 12, Precision: 2}

// DrawShearDiagram plots the shear force of the sampled stations
func DrawShearDiagram(stations []statics.Station, opts ChartOptions) string {
	values := make([]float64, len(stations))
	for i, s := range stations {
		values[i] = s.Shear
	}
	return drawChart("SHEAR FORCE DIAGRAM", values, stations, opts)
}

// DrawMomentDiagram plots the bending moment of the sampled stations
func DrawMomentDiagram(stations []statics.Station, opts ChartOptions) string {
	values := make([]float64, len(stations))
	for i, s := range stations {
		values[i] = s.Moment
	}
	return drawChart("BENDING MOMENT DIAGRAM", values, stations, opts)
}

func drawChart(title string, values []float64, stations []statics.Station, opts ChartOptions) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len([]rune(title))) + "\n\n")

	if len(values) == 0 {
		sb.WriteString("  (no stations)\n")
		return sb.String()
	}

	// asciigraph needs a non-degenerate range to draw a flat line
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	plotOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Precision(opts.Precision),
		asciigraph.Offset(4),
	}
	if opts.Width > 0 {
		plotOpts = append(plotOpts, asciigraph.Width(opts.Width))
	}
	if hi == lo {
		plotOpts = append(plotOpts, asciigraph.LowerBound(lo-1), asciigraph.UpperBound(hi+1))
	}

	caption := fmt.Sprintf("x = %.4g .. %.4g", stations[0].X, stations[len(stations)-1].X)
	if opts.Unit != "" {
		caption += "   (" + opts.Unit + ")"
	}
	plotOpts = append(plotOpts, asciigraph.Caption(caption))

	sb.WriteString(asciigraph.Plot(values, plotOpts...))
	sb.WriteString("\n")
	return sb.String()
}

// DrawBeamSketch draws the beam, its supports and loads on a single span
// of the given width in columns.
//
//	    ↓        ▼▼▼▼▼▼▼▼▼
//	  ══════════════════════
//	  △                    ○
//	  A                    B
func DrawBeamSketch(length float64, supports []statics.Support, loads []load.Load, width int) string {
	if width < 10 {
		width = 10
	}
	col := func(x float64) int {
		c := int(math.Round(x / length * float64(width-1)))
		return max(0, min(width-1, c))
	}
	blank := func() []rune { return []rune(strings.Repeat(" ", width)) }

	loadRow := blank()
	for _, l := range loads {
		switch v := l.(type) {
		case load.UDL:
			mark := '▼'
			if v.Direction == load.Up {
				mark = '▲'
			}
			for c := col(v.Start); c <= col(v.End); c++ {
				loadRow[c] = mark
			}
		case load.Trapezoidal:
			mark := '▾'
			if v.Direction == load.Up {
				mark = '▴'
			}
			for c := col(v.Start); c <= col(v.End); c++ {
				loadRow[c] = mark
			}
		}
	}
	// concentrated actions are drawn over distributed ones
	for _, l := range loads {
		switch v := l.(type) {
		case load.Point:
			mark := '↓'
			if v.Direction == load.Up {
				mark = '↑'
			}
			loadRow[col(v.Position)] = mark
		case load.Moment:
			mark := '↻'
			if v.Direction == load.Anticlockwise {
				mark = '↺'
			}
			loadRow[col(v.Position)] = mark
		}
	}

	supportRow, labelRow := blank(), blank()
	for i, s := range supports {
		c := col(s.Position)
		switch s.Kind {
		case statics.Roller:
			supportRow[c] = '○'
		case statics.Fixed:
			supportRow[c] = '▮'
		case statics.InternalHinge:
			supportRow[c] = '◦'
		default:
			supportRow[c] = '△'
		}
		if i < 2 {
			labelRow[c] = rune('A' + i)
		}
	}

	axis := fmt.Sprintf("0%*s", width-1, fmt.Sprintf("%.4g", length))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  BEAM\n")
	sb.WriteString("  ────\n\n")
	sb.WriteString("  " + strings.TrimRight(string(loadRow), " ") + "\n")
	sb.WriteString("  " + strings.Repeat("═", width) + "\n")
	sb.WriteString("  " + strings.TrimRight(string(supportRow), " ") + "\n")
	sb.WriteString("  " + strings.TrimRight(string(labelRow), " ") + "\n")
	sb.WriteString("  " + axis + "\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes and misaligns unicode
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
