package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosbeam/internal/beam"
)

const (
	summarySheet  = "Summary"
	loadsSheet    = "Loads"
	stationsSheet = "Stations"
)

// WriteXLSX writes a workbook with a summary sheet, the load list and the
// station table. The station sheet carries line charts of shear and moment.
func WriteXLSX(path string, rep Report) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	for _, s := range []string{loadsSheet, stationsSheet} {
		if _, err := f.NewSheet(s); err != nil {
			return err
		}
	}

	if err := writeSummary(f, rep, bold); err != nil {
		return err
	}
	if err := writeLoads(f, rep.Beam, bold); err != nil {
		return err
	}
	if err := writeStations(f, rep, bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, rep Report, bold int) error {
	b, r, e, u := rep.Beam, rep.Result, rep.Extremes, rep.Beam.Units
	a, bb := r.Supports()
	res := r.Residual()

	rows := [][]any{
		{title(b)},
		{"Description", b.Description},
		{"Span length", b.Length, u.Length},
		{},
		{"Reaction", "Value", "Unit", "Position"},
		{"Ra", r.Ra(), u.Force, a},
		{"Rb", r.Rb(), u.Force, bb},
		{},
		{"Extreme", "Value", "Unit", "Position"},
		{"Maximum shear", e.MaxShear.Value, u.Force, e.MaxShear.X},
		{"Minimum shear", e.MinShear.Value, u.Force, e.MinShear.X},
		{"Maximum moment", e.MaxMoment.Value, u.Moment(), e.MaxMoment.X},
		{"Minimum moment", e.MinMoment.Value, u.Moment(), e.MinMoment.X},
		{},
		{"Total applied load", r.TotalLoad(), u.Force},
		{"Force residual", res.Force, u.Force},
		{"Moment residual", res.Moment, u.Moment()},
	}
	if err := setRows(f, summarySheet, rows); err != nil {
		return err
	}
	for _, r := range [][2]string{{"A1", "A1"}, {"A5", "D5"}, {"A9", "D9"}} {
		if err := f.SetCellStyle(summarySheet, r[0], r[1], bold); err != nil {
			return err
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 22)
}

func writeLoads(f *excelize.File, b *beam.Beam, bold int) error {
	rows := [][]any{{"#", "Case", "Type", "Location (" + b.Units.Length + ")", "Magnitude"}}
	for i, e := range b.Loads {
		kind, where, mag := beam.Describe(e.Load, b.Units)
		rows = append(rows, []any{i + 1, string(e.Case), kind, where, mag})
	}
	rows = append(rows, []any{}, []any{"Support", "Type", "Position (" + b.Units.Length + ")", "Role"})
	for i, s := range b.Supports {
		rows = append(rows, []any{i + 1, s.Kind.String(), s.Position, role(i)})
	}
	if err := setRows(f, loadsSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(loadsSheet, "A1", "E1", bold); err != nil {
		return err
	}
	return f.SetColWidth(loadsSheet, "C", "E", 20)
}

func writeStations(f *excelize.File, rep Report, bold int) error {
	u := rep.Beam.Units
	rows := [][]any{{"x (" + u.Length + ")", "V (" + u.Force + ")", "M (" + u.Moment() + ")"}}
	for _, s := range rep.Stations {
		rows = append(rows, []any{s.X, s.Shear, s.Moment})
	}
	if err := setRows(f, stationsSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(stationsSheet, "A1", "C1", bold); err != nil {
		return err
	}
	if len(rep.Stations) < 2 {
		return nil
	}

	last := len(rep.Stations) + 1
	for i, c := range []struct{ col, name, anchor string }{
		{"B", "Shear Force", "E2"},
		{"C", "Bending Moment", "E20"},
	} {
		chart := &excelize.Chart{
			Type: excelize.Line,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$%s$1", stationsSheet, c.col),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", stationsSheet, last),
				Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", stationsSheet, c.col, c.col, last),
			}},
			Title: []excelize.RichTextRun{{Text: c.name}},
		}
		if err := f.AddChart(stationsSheet, c.anchor, chart); err != nil {
			return fmt.Errorf("chart %d: %w", i+1, err)
		}
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
