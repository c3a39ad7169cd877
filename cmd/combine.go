package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosbeam/internal/beam"
	"github.com/alexiusacademia/gosbeam/internal/diagram"
	"github.com/alexiusacademia/gosbeam/internal/nscp"
)

var (
	combineFilePath   string
	combineShowAll    bool
	combineSimplified bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Find the governing NSCP load combination of a beam",
	Long: `Solve a beam under every NSCP 2015 load combination.

Each load in the beam file belongs to a load case:
  D  - Dead load (default)
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Every combination scales the loads by its factors and solves the beam.
The governing combination is the one with the largest absolute moment.

Examples:
  # Governing combination only
  gosbeam combine -f beam.yaml

  # Show all combinations
  gosbeam combine -f beam.yaml --all

  # Gravity only: 1.4D and 1.2D + 1.6L
  gosbeam combine -f beam.yaml --simplified --all`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().StringVarP(&combineFilePath, "file", "f", "", "Beam file (.json, .yaml, .yml)")
	combineCmd.Flags().BoolVarP(&combineShowAll, "all", "a", false, "Show all load combination results")
	combineCmd.Flags().BoolVarP(&combineSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")

	_ = combineCmd.MarkFlagRequired("file")
}

func runCombine(cmd *cobra.Command, args []string) error {
	b, err := beam.LoadFromFile(combineFilePath)
	if err != nil {
		return err
	}
	if len(b.Loads) == 0 {
		return fmt.Errorf("%s: no loads to combine", combineFilePath)
	}

	combinations := nscp.LoadCombinations
	if combineSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	results, err := b.Combine(combinations)
	if err != nil {
		return fmt.Errorf("not enough information to solve the beam: %w", err)
	}
	governing, _ := beam.Governing(results)

	out := cmd.OutOrStdout()
	u := b.Units
	printHeader(out, "NSCP 2015 LOAD COMBINATIONS")
	printBeam(out, b)

	printSection(out, "LOAD CASES PRESENT:")
	for _, c := range b.Cases() {
		fmt.Fprintf(out, "  %s (%s)\n", c.Name(), c)
	}
	fmt.Fprintln(out)

	if combineShowAll {
		printSection(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  #\tCombination\tRa (%s)\tRb (%s)\t|M|max (%s)\tat x (%s)\n",
			u.Force, u.Force, u.Moment(), u.Length)
		fmt.Fprintf(tw, "  ─\t───────────\t──────\t──────\t─────────\t────────\n")
		for _, cr := range results {
			m := cr.Extremes.AbsMaxMoment()
			marker := ""
			if cr.Combination.ID == governing.Combination.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%.3f%s\n",
				cr.Combination.ID, cr.Combination.Description,
				cr.Result.Ra(), cr.Result.Rb(), math.Abs(m.Value), m.X, marker)
		}
		tw.Flush()
		fmt.Fprintln(out)
	}

	m := governing.Extremes.AbsMaxMoment()
	v := governing.Extremes.AbsMaxShear()
	printSection(out, "RESULT:")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governing.Combination.ID, governing.Combination.Description)
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox("FACTORED FORCES", []string{
		fmt.Sprintf("Mu = %.2f %s at x = %.3f %s", m.Value, u.Moment(), m.X, u.Length),
		fmt.Sprintf("Vu = %.2f %s at x = %.3f %s", v.Value, u.Force, v.X, u.Length),
		fmt.Sprintf("Ra = %.2f %s, Rb = %.2f %s", governing.Result.Ra(), u.Force, governing.Result.Rb(), u.Force),
	}))
	fmt.Fprintln(out)
	return nil
}
