package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosbeam/internal/diagram"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

var (
	diagramFilePath string
	diagramStep     float64
	diagramInteger  bool
	diagramWidth    int
	diagramHeight   int
	diagramOutput   string
	diagramWatch    bool
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Draw shear and moment diagrams of a beam",
	Long: `Draw the beam, its shear force diagram and its bending moment diagram.

Diagrams are printed to the terminal. With --output they are also written
to an image file whose format follows the extension (png, svg, pdf, jpg).

Examples:
  # Terminal diagrams
  gosbeam diagram -f beam.yaml

  # Stations at every whole metre, wider chart
  gosbeam diagram -f beam.yaml --integer --width 100

  # Export to PNG
  gosbeam diagram -f beam.yaml -o out/beam.png`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramFilePath, "file", "f", "", "Beam file (.json, .yaml, .yml)")
	diagramCmd.Flags().Float64Var(&diagramStep, "step", 0, "Station spacing, 0 = length/100")
	diagramCmd.Flags().BoolVar(&diagramInteger, "integer", false, "Sample at whole-number positions 0, 1, 2, ...")
	diagramCmd.Flags().IntVar(&diagramWidth, "width", 60, "Chart width in columns")
	diagramCmd.Flags().IntVar(&diagramHeight, "height", 12, "Chart height in rows")
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Export diagrams to an image file")
	diagramCmd.Flags().BoolVarP(&diagramWatch, "watch", "w", false, "Redraw whenever the beam file changes")

	_ = diagramCmd.MarkFlagRequired("file")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	defaultFloat(flags, "step", &diagramStep, cfg.Step)
	defaultInt(flags, "width", &diagramWidth, cfg.ChartWidth)
	defaultInt(flags, "height", &diagramHeight, cfg.ChartHeight)
	return runWatched(cmd, diagramFilePath, diagramWatch, func() error { return drawOnce(cmd) })
}

func drawOnce(cmd *cobra.Command) error {
	b, r, err := solveFile(diagramFilePath)
	if err != nil {
		return err
	}

	xs := statics.Stations(r.Length(), diagramStep)
	if diagramInteger {
		xs = statics.IntegerStations(r.Length())
	}
	stations, err := r.SampleConcurrent(cmd.Context(), xs, cfg.Workers)
	if err != nil {
		return err
	}
	slog.Debug("beam sampled", "stations", len(stations))

	out := cmd.OutOrStdout()
	printHeader(out, "SHEAR AND MOMENT DIAGRAMS")

	printSection(out, "BEAM:")
	fmt.Fprintln(out, diagram.DrawBeamSketch(b.Length, b.Supports, r.Loads(), diagramWidth))
	fmt.Fprintln(out)

	opts := diagram.ChartOptions{
		Width:     diagramWidth,
		Height:    diagramHeight,
		Precision: diagram.DefaultChartOptions.Precision,
	}

	printSection(out, "SHEAR FORCE DIAGRAM:")
	opts.Unit = b.Units.Force
	fmt.Fprintln(out, diagram.DrawShearDiagram(stations, opts))
	fmt.Fprintln(out)

	printSection(out, "BENDING MOMENT DIAGRAM:")
	opts.Unit = b.Units.Moment()
	fmt.Fprintln(out, diagram.DrawMomentDiagram(stations, opts))
	fmt.Fprintln(out)

	if diagramOutput == "" {
		return nil
	}

	a, bb := r.Supports()
	data := diagram.ForceDiagramData{
		Title:      b.Name,
		ForceUnit:  b.Units.Force,
		LengthUnit: b.Units.Length,
		Stations:   stations,
		Extremes:   r.Extremes(),
		SupportA:   a,
		SupportB:   bb,
	}
	if err := diagram.ExportForceDiagrams(data, diagramOutput); err != nil {
		return fmt.Errorf("export diagrams: %w", err)
	}
	fmt.Fprintf(out, "  Diagrams exported to %s\n", diagramOutput)
	fmt.Fprintln(out)
	return nil
}
