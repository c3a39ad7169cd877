package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbeam/internal/beam"
	"github.com/alexiusacademia/gosbeam/internal/diagram"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

const rule = "───────────────────────────────────────────────────────────────"

// solveFile loads a beam file and solves it under its unfactored loads
func solveFile(path string) (*beam.Beam, *statics.Result, error) {
	b, err := beam.LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := b.Solve()
	if err != nil {
		return b, nil, fmt.Errorf("not enough information to solve the beam: %w", err)
	}
	slog.Info("beam solved", "name", b.Name, "Ra", r.Ra(), "Rb", r.Rb())
	return b, r, nil
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func printBeam(w io.Writer, b *beam.Beam) {
	if b.Name != "" {
		fmt.Fprintf(w, "  Beam: %s\n", b.Name)
	}
	if b.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", b.Description)
	}
	fmt.Fprintf(w, "  Span length: %.3f %s\n", b.Length, b.Units.Length)
	fmt.Fprintln(w)

	printSection(w, "SUPPORTS:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  #\tType\tPosition (%s)\tRole\n", b.Units.Length)
	fmt.Fprintf(tw, "  ─\t────\t────────\t────\n")
	for i, s := range b.Supports {
		role := "not used"
		switch i {
		case 0:
			role = "A"
		case 1:
			role = "B"
		}
		fmt.Fprintf(tw, "  %d\t%s\t%.3f\t%s\n", i+1, s.Kind, s.Position, role)
	}
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "LOADS:")
	if len(b.Loads) == 0 {
		fmt.Fprintln(w, "  (none)")
		fmt.Fprintln(w)
		return
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  #\tCase\tType\tLocation (%s)\tMagnitude\n", b.Units.Length)
	fmt.Fprintf(tw, "  ─\t────\t────\t────────\t─────────\n")
	for i, e := range b.Loads {
		kind, where, mag := beam.Describe(e.Load, b.Units)
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n", i+1, e.Case, kind, where, mag)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printReactions(w io.Writer, r *statics.Result, u beam.Units) {
	a, b := r.Supports()
	fmt.Fprint(w, diagram.DrawSummaryBox("SUPPORT REACTIONS", []string{
		fmt.Sprintf("Ra = %10.3f %s   (x = %.3f %s)", r.Ra(), u.Force, a, u.Length),
		fmt.Sprintf("Rb = %10.3f %s   (x = %.3f %s)", r.Rb(), u.Force, b, u.Length),
	}))
	fmt.Fprintln(w)
}

func printExtremes(w io.Writer, e statics.Extremes, u beam.Units) {
	printSection(w, "INTERNAL FORCE EXTREMES:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Maximum shear:\t%.3f %s\tat x = %.3f %s\n", e.MaxShear.Value, u.Force, e.MaxShear.X, u.Length)
	fmt.Fprintf(tw, "  Minimum shear:\t%.3f %s\tat x = %.3f %s\n", e.MinShear.Value, u.Force, e.MinShear.X, u.Length)
	fmt.Fprintf(tw, "  Maximum moment:\t%.3f %s\tat x = %.3f %s\n", e.MaxMoment.Value, u.Moment(), e.MaxMoment.X, u.Length)
	fmt.Fprintf(tw, "  Minimum moment:\t%.3f %s\tat x = %.3f %s\n", e.MinMoment.Value, u.Moment(), e.MinMoment.X, u.Length)
	tw.Flush()
	fmt.Fprintln(w)
}

func printEquilibrium(w io.Writer, r *statics.Result, u beam.Units) {
	res := r.Residual()
	printSection(w, "EQUILIBRIUM CHECK:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Total applied load:\t%.3f %s\n", r.TotalLoad(), u.Force)
	fmt.Fprintf(tw, "  ΣFy residual:\t%.3e %s\n", res.Force, u.Force)
	fmt.Fprintf(tw, "  ΣM(A) residual:\t%.3e %s\n", res.Moment, u.Moment())
	status := "✓"
	if !r.Balanced(1e-6) {
		status = "⚠"
	}
	fmt.Fprintf(tw, "  Equilibrium:\t%s\n", status)
	tw.Flush()
	fmt.Fprintln(w)
}

func printStations(w io.Writer, stations []statics.Station, u beam.Units) {
	printSection(w, "SHEAR AND MOMENT AT SECTIONS:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  x (%s)\tV (%s)\tM (%s)\t\n", u.Length, u.Force, u.Moment())
	for _, s := range stations {
		fmt.Fprintf(tw, "  %.3f\t%.3f\t%.3f\t\n", s.X, clean(s.Shear), clean(s.Moment))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// clean turns rounding noise such as -0.000 into 0
func clean(v float64) float64 {
	if math.Abs(v) < 5e-10 {
		return 0
	}
	return v
}
