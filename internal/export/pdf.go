package export

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gosbeam/internal/beam"
)

// WritePDF writes an A4 calculation report: beam data, reactions,
// extremes, the equilibrium check, the diagram image when given, and the
// station table.
func WritePDF(path string, rep Report) error {
	b, r, e, u := rep.Beam, rep.Result, rep.Extremes, rep.Beam.Units

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title(b)))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if b.Description != "" {
		pdf.MultiCell(0, 6, tr(b.Description), "", "L", false)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Span length: %.3f %s", b.Length, tr(u.Length)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(s string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, s)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	table := func(widths []float64, header []string, rows [][]string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range rows {
			for i, c := range row {
				pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	heading("Supports")
	var rows [][]string
	for i, s := range b.Supports {
		rows = append(rows, []string{fmt.Sprint(i + 1), s.Kind.String(), fmt.Sprintf("%.3f", s.Position), role(i)})
	}
	table([]float64{12, 40, 40, 30}, []string{"#", "Type", "Position (" + u.Length + ")", "Role"}, rows)

	heading("Loads")
	rows = rows[:0]
	for i, en := range b.Loads {
		kind, where, mag := beam.Describe(en.Load, u)
		rows = append(rows, []string{fmt.Sprint(i + 1), string(en.Case), kind, where, mag})
	}
	table([]float64{12, 16, 30, 40, 72}, []string{"#", "Case", "Type", "Location (" + u.Length + ")", "Magnitude"}, rows)

	heading("Support Reactions")
	a, bb := r.Supports()
	table([]float64{30, 40, 40}, []string{"Reaction", "Value (" + u.Force + ")", "x (" + u.Length + ")"}, [][]string{
		{"Ra", fmt.Sprintf("%.3f", r.Ra()), fmt.Sprintf("%.3f", a)},
		{"Rb", fmt.Sprintf("%.3f", r.Rb()), fmt.Sprintf("%.3f", bb)},
	})

	heading("Internal Force Extremes")
	table([]float64{40, 40, 30, 30}, []string{"", "Value", "Unit", "x (" + u.Length + ")"}, [][]string{
		{"Maximum shear", fmt.Sprintf("%.3f", e.MaxShear.Value), u.Force, fmt.Sprintf("%.3f", e.MaxShear.X)},
		{"Minimum shear", fmt.Sprintf("%.3f", e.MinShear.Value), u.Force, fmt.Sprintf("%.3f", e.MinShear.X)},
		{"Maximum moment", fmt.Sprintf("%.3f", e.MaxMoment.Value), u.Moment(), fmt.Sprintf("%.3f", e.MaxMoment.X)},
		{"Minimum moment", fmt.Sprintf("%.3f", e.MinMoment.Value), u.Moment(), fmt.Sprintf("%.3f", e.MinMoment.X)},
	})

	heading("Equilibrium Check")
	res := r.Residual()
	status := "OK"
	if !r.Balanced(1e-6) {
		status = "NOT BALANCED"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total applied load: %.3f %s", r.TotalLoad(), tr(u.Force)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Force residual: %.3e %s   Moment residual about A: %.3e %s",
		res.Force, tr(u.Force), res.Moment, tr(u.Moment())))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Equilibrium: "+status)
	pdf.Ln(8)

	if rep.Diagram != "" {
		pdf.AddPage()
		heading("Shear and Moment Diagrams")
		pdf.ImageOptions(rep.Diagram, 10, pdf.GetY(), 190, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if len(rep.Stations) > 0 {
		pdf.AddPage()
		heading("Shear and Moment at Sections")
		rows = rows[:0]
		for _, s := range rep.Stations {
			rows = append(rows, []string{
				fmt.Sprintf("%.3f", s.X), fmt.Sprintf("%.3f", s.Shear), fmt.Sprintf("%.3f", s.Moment),
			})
		}
		table([]float64{40, 50, 50}, []string{"x (" + u.Length + ")", "V (" + u.Force + ")", "M (" + u.Moment() + ")"}, rows)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
