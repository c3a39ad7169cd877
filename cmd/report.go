package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosbeam/internal/diagram"
	"github.com/alexiusacademia/gosbeam/internal/export"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

var (
	reportFilePath  string
	reportOutput    string
	reportStep      float64
	reportNoDiagram bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF calculation report or an XLSX workbook",
	Long: `Solve a beam and write the results to a file.

The format follows the output extension:
  .pdf   calculation report with tables and the shear/moment diagrams
  .xlsx  workbook with summary, loads and station sheets, and charts

Examples:
  gosbeam report -f beam.yaml -o calc/beam.pdf
  gosbeam report -f beam.yaml -o beam.xlsx --step 0.25`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFilePath, "file", "f", "", "Beam file (.json, .yaml, .yml)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file (.pdf or .xlsx)")
	reportCmd.Flags().Float64Var(&reportStep, "step", 0, "Station spacing, 0 = length/100")
	reportCmd.Flags().BoolVar(&reportNoDiagram, "no-diagram", false, "Leave the diagrams out of PDF reports")

	_ = reportCmd.MarkFlagRequired("file")
	_ = reportCmd.MarkFlagRequired("output")
}

func runReport(cmd *cobra.Command, args []string) error {
	defaultFloat(cmd.Flags(), "step", &reportStep, cfg.Step)

	b, r, err := solveFile(reportFilePath)
	if err != nil {
		return err
	}
	stations, err := r.SampleConcurrent(cmd.Context(), statics.Stations(r.Length(), reportStep), cfg.Workers)
	if err != nil {
		return err
	}

	rep := export.Report{
		Beam:     b,
		Result:   r,
		Stations: stations,
		Extremes: r.Extremes(),
	}

	if strings.EqualFold(filepath.Ext(reportOutput), ".pdf") && !reportNoDiagram {
		tmp, err := os.MkdirTemp("", "gosbeam-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)

		a, bb := r.Supports()
		png := filepath.Join(tmp, "diagram.png")
		err = diagram.ExportForceDiagrams(diagram.ForceDiagramData{
			Title:      b.Name,
			ForceUnit:  b.Units.Force,
			LengthUnit: b.Units.Length,
			Stations:   stations,
			Extremes:   rep.Extremes,
			SupportA:   a,
			SupportB:   bb,
		}, png)
		if err != nil {
			return fmt.Errorf("export diagrams: %w", err)
		}
		rep.Diagram = png
	}

	if err := export.Write(reportOutput, rep); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Report written to %s\n", reportOutput)
	return nil
}
