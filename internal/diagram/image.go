package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosbeam/internal/statics"
)

// ForceDiagramData holds everything needed to draw the shear and moment
// diagrams of one solved beam
type ForceDiagramData struct {
	Title      string
	ForceUnit  string // e.g. kN
	LengthUnit string // e.g. m

	Stations []statics.Station
	Extremes statics.Extremes

	SupportA float64
	SupportB float64
}

var (
	shearFill   = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	shearLine   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	momentFill  = color.RGBA{R: 240, G: 128, B: 128, A: 150}
	momentLine  = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	supportMark = color.RGBA{R: 34, G: 139, B: 34, A: 255}
)

// ExportForceDiagrams writes the shear diagram above the moment diagram to
// filename. The format follows the extension (png, svg, pdf, jpg, tiff,
// eps); a name without one gets ".png" appended.
func ExportForceDiagrams(data ForceDiagramData, filename string) error {
	if len(data.Stations) < 2 {
		return fmt.Errorf("need at least two stations to draw a diagram, got %d", len(data.Stations))
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch format {
	case "png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps":
	default:
		format = "png"
		filename += ".png"
	}

	shear, err := forcePlot(data, "Shear Force", data.ForceUnit,
		func(s statics.Station) float64 { return s.Shear }, shearFill, shearLine,
		data.Extremes.MaxShear, data.Extremes.MinShear)
	if err != nil {
		return err
	}
	if data.Title != "" {
		shear.Title.Text = data.Title + " - Shear Force"
	}

	momentUnit := data.ForceUnit
	if data.LengthUnit != "" {
		momentUnit += "-" + data.LengthUnit
	}
	moment, err := forcePlot(data, "Bending Moment", momentUnit,
		func(s statics.Station) float64 { return s.Moment }, momentFill, momentLine,
		data.Extremes.MaxMoment, data.Extremes.MinMoment)
	if err != nil {
		return err
	}

	width := 8 * vg.Inch
	height := 8 * vg.Inch
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
		PadY:      vg.Millimeter * 8,
	}
	plots := [][]*plot.Plot{{shear}, {moment}}
	canvases := plot.Align(plots, tiles, draw.New(c))
	shear.Draw(canvases[0][0])
	moment.Draw(canvases[1][0])

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func forcePlot(data ForceDiagramData, name, unit string, value func(statics.Station) float64,
	fill, line color.Color, hi, lo statics.Extreme) (*plot.Plot, error) {

	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = axisLabel("Position", data.LengthUnit)
	p.Y.Label.Text = axisLabel(name, unit)

	// Filled area between the curve and the axis
	n := len(data.Stations)
	area := make(plotter.XYs, 0, n+2)
	area = append(area, plotter.XY{X: data.Stations[0].X, Y: 0})
	curve := make(plotter.XYs, n)
	for i, s := range data.Stations {
		curve[i] = plotter.XY{X: s.X, Y: value(s)}
		area = append(area, curve[i])
	}
	area = append(area, plotter.XY{X: data.Stations[n-1].X, Y: 0})

	poly, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	p.Add(poly)

	l, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = line
	p.Add(l)

	// Zero reference line
	zero, err := plotter.NewLine(plotter.XYs{
		{X: data.Stations[0].X, Y: 0},
		{X: data.Stations[n-1].X, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 96}
	p.Add(zero)

	// Support positions
	supports, err := plotter.NewScatter(plotter.XYs{
		{X: data.SupportA, Y: 0},
		{X: data.SupportB, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	supports.GlyphStyle.Color = supportMark
	supports.GlyphStyle.Radius = vg.Points(5)
	supports.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(supports)

	// Annotate the extremes
	labels := plotter.XYLabels{}
	for _, e := range []statics.Extreme{hi, lo} {
		if e.Value == 0 {
			continue
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: e.X, Y: e.Value})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%.2f @ %.2f", e.Value, e.X))
	}
	if len(labels.XYs) > 0 {
		lbl, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		p.Add(lbl)
	}

	p.Add(plotter.NewGrid())
	return p, nil
}

func axisLabel(name, unit string) string {
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, unit)
}
