package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosbeam/internal/beam"
	"github.com/alexiusacademia/gosbeam/internal/diagram"
	"github.com/alexiusacademia/gosbeam/internal/load"
	"github.com/alexiusacademia/gosbeam/internal/nscp"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	b := &beam.Beam{
		Name:   "B-1",
		Units:  beam.DefaultUnits,
		Length: 10,
		Supports: []statics.Support{
			{Kind: statics.Pinned, Position: 0},
			{Kind: statics.Roller, Position: 10},
		},
		Loads: []beam.Entry{
			{Case: nscp.Dead, Load: load.Point{Position: 4, Magnitude: 10}},
			{Case: nscp.Live, Load: load.UDL{Start: 6, End: 10, Magnitude: 5}},
		},
	}
	r, err := b.Solve()
	require.NoError(t, err)
	return Report{
		Beam:     b,
		Result:   r,
		Stations: r.Sample(1),
		Extremes: r.Extremes(),
	}
}

func TestWriteXLSX(t *testing.T) {
	rep := sampleReport(t)
	path := filepath.Join(t.TempDir(), "beam.xlsx")
	require.NoError(t, Write(path, rep))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, loadsSheet, stationsSheet}, f.GetSheetList())

	v, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "B-1", v)

	// Ra = 10*6/10 + 20*2/10 = 10, Rb = 4 + 16 = 20
	v, err = f.GetCellValue(summarySheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "10", v)
	v, err = f.GetCellValue(summarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "20", v)

	rows, err := f.GetRows(stationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 12)
	assert.Equal(t, []string{"x (m)", "V (kN)", "M (kN-m)"}, rows[0])
	assert.Equal(t, []string{"4", "10", "40"}, rows[5])

	rows, err = f.GetRows(loadsSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "D", "Point", "4.000", "10.00 kN down"}, rows[1])
	assert.Equal(t, "L", rows[2][1])
}

func TestWritePDF(t *testing.T) {
	rep := sampleReport(t)
	dir := t.TempDir()

	png := filepath.Join(dir, "diagram.png")
	a, b := rep.Result.Supports()
	require.NoError(t, diagram.ExportForceDiagrams(diagram.ForceDiagramData{
		ForceUnit: "kN", LengthUnit: "m",
		Stations: rep.Stations, Extremes: rep.Extremes,
		SupportA: a, SupportB: b,
	}, png))
	rep.Diagram = png

	path := filepath.Join(dir, "out", "beam.pdf")
	require.NoError(t, Write(path, rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestWritePDF_BadImage(t *testing.T) {
	rep := sampleReport(t)
	rep.Diagram = filepath.Join(t.TempDir(), "missing.png")
	assert.Error(t, Write(filepath.Join(t.TempDir(), "beam.pdf"), rep))
}

func TestWrite_Errors(t *testing.T) {
	rep := sampleReport(t)
	dir := t.TempDir()

	assert.ErrorContains(t, Write(filepath.Join(dir, "beam.docx"), rep), "unsupported format")
	assert.ErrorContains(t, Write(filepath.Join(dir, "beam.pdf"), Report{}), "no solved beam")
}
