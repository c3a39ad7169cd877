package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosbeam/internal/statics"
)

var (
	solveFilePath string
	solveStep     float64
	solveTable    bool
	solveAt       []float64
	solveWatch    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute support reactions and internal forces of a beam",
	Long: `Solve a beam described in a JSON or YAML file.

The beam is solved under the sum of all its loads (no load factors).
The report lists the support reactions, the extreme shear and moment
with their locations, and an equilibrium check.

Sign conventions:
  - Downward loads and upward reactions are positive
  - Sagging moment is positive
  - A clockwise couple lowers the moment to its right

Examples:
  # Reactions and extremes
  gosbeam solve -f beam.yaml

  # Add a shear/moment table every 0.5 m
  gosbeam solve -f beam.yaml --table --step 0.5

  # Shear and moment at chosen sections
  gosbeam solve -f beam.json --at 2.5 --at 4

  # Re-solve on every save
  gosbeam solve -f beam.yaml --watch`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFilePath, "file", "f", "", "Beam file (.json, .yaml, .yml)")
	solveCmd.Flags().Float64Var(&solveStep, "step", 0, "Station spacing for the table, 0 = length/100")
	solveCmd.Flags().BoolVarP(&solveTable, "table", "t", false, "Print shear and moment at every station")
	solveCmd.Flags().Float64SliceVar(&solveAt, "at", nil, "Sections to report shear and moment at")
	solveCmd.Flags().BoolVarP(&solveWatch, "watch", "w", false, "Solve again whenever the beam file changes")

	_ = solveCmd.MarkFlagRequired("file")
}

func runSolve(cmd *cobra.Command, args []string) error {
	defaultFloat(cmd.Flags(), "step", &solveStep, cfg.Step)
	return runWatched(cmd, solveFilePath, solveWatch, func() error { return solveOnce(cmd) })
}

func solveOnce(cmd *cobra.Command) error {
	b, r, err := solveFile(solveFilePath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "SIMPLE BEAM ANALYSIS")
	printBeam(out, b)
	printReactions(out, r, b.Units)
	printExtremes(out, r.Extremes(), b.Units)
	printEquilibrium(out, r, b.Units)

	if len(solveAt) > 0 {
		printStations(out, r.SampleAt(solveAt), b.Units)
	}

	if solveTable {
		stations, err := r.SampleConcurrent(cmd.Context(), statics.Stations(r.Length(), solveStep), cfg.Workers)
		if err != nil {
			return err
		}
		printStations(out, stations, b.Units)
	}
	return nil
}
