// Package export writes solved beams to spreadsheet and PDF calculation
// reports.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosbeam/internal/beam"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

// Report is one solved beam ready for export
type Report struct {
	Beam     *beam.Beam
	Result   *statics.Result
	Stations []statics.Station
	Extremes statics.Extremes

	// Diagram is an optional PNG embedded in PDF reports
	Diagram string
}

// Write picks the exporter from the file extension: .pdf or .xlsx
func Write(path string, rep Report) error {
	if rep.Beam == nil || rep.Result == nil {
		return fmt.Errorf("export %s: report has no solved beam", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return WritePDF(path, rep)
	case ".xlsx":
		return WriteXLSX(path, rep)
	}
	return fmt.Errorf("export %s: unsupported format, use .pdf or .xlsx", path)
}

func title(b *beam.Beam) string {
	if b.Name != "" {
		return b.Name
	}
	return "Simple Beam Analysis"
}

func role(i int) string {
	switch i {
	case 0:
		return "A"
	case 1:
		return "B"
	}
	return "not used"
}
