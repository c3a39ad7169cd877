package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosbeam/internal/load"
	"github.com/alexiusacademia/gosbeam/internal/nscp"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

// Units are display labels only; the solver is unit-agnostic.
type Units struct {
	Force  string
	Length string
}

// DefaultUnits are used when a beam file does not name its units
var DefaultUnits = Units{Force: "kN", Length: "m"}

// Moment returns the moment unit label, e.g. "kN-m"
func (u Units) Moment() string { return u.Force + "-" + u.Length }

// Intensity returns the distributed load unit label, e.g. "kN/m"
func (u Units) Intensity() string { return u.Force + "/" + u.Length }

// Entry is one applied load tagged with its load case
type Entry struct {
	Case nscp.LoadCase
	Load load.Load
}

// Beam is a complete single-span beam definition
type Beam struct {
	Name        string
	Description string
	Units       Units

	Length   float64
	Supports []statics.Support
	Loads    []Entry
}

// Validate checks every load against the beam length
func (b *Beam) Validate() error {
	for i, e := range b.Loads {
		if err := load.Validate(e.Load, b.Length); err != nil {
			return fmt.Errorf("load %d: %w", i+1, err)
		}
	}
	return nil
}

// Cases returns the load cases present on the beam, in nscp.Cases order
func (b *Beam) Cases() []nscp.LoadCase {
	present := make(map[nscp.LoadCase]bool)
	for _, e := range b.Loads {
		present[e.Case] = true
	}
	var out []nscp.LoadCase
	for _, c := range nscp.Cases {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// Factored returns the loads scaled for the given combination. Loads whose
// case has a zero factor are left out.
func (b *Beam) Factored(lc nscp.LoadCombination) []load.Load {
	out := make([]load.Load, 0, len(b.Loads))
	for _, e := range b.Loads {
		f := lc.Factor(e.Case)
		if f == 0 {
			continue
		}
		out = append(out, nscp.Scale(e.Load, f))
	}
	return out
}

// Solve solves the beam under its unfactored loads
func (b *Beam) Solve() (*statics.Result, error) {
	return b.SolveCombination(nscp.Service)
}

// SolveCombination solves the beam under one factored combination
func (b *Beam) SolveCombination(lc nscp.LoadCombination) (*statics.Result, error) {
	return statics.Solve(b.Length, b.Supports, b.Factored(lc))
}

// CombinationResult is the solution of one load combination
type CombinationResult struct {
	Combination nscp.LoadCombination
	Result      *statics.Result
	Extremes    statics.Extremes
}

// Combine solves every combination in turn. The first failing combination
// aborts the run.
func (b *Beam) Combine(combinations []nscp.LoadCombination) ([]CombinationResult, error) {
	out := make([]CombinationResult, 0, len(combinations))
	for _, lc := range combinations {
		r, err := b.SolveCombination(lc)
		if err != nil {
			return nil, fmt.Errorf("combination %s (%s): %w", lc.ID, lc.Description, err)
		}
		out = append(out, CombinationResult{Combination: lc, Result: r, Extremes: r.Extremes()})
	}
	return out, nil
}

// Governing returns the combination with the largest absolute moment.
// Ties keep the earlier combination.
func Governing(results []CombinationResult) (CombinationResult, bool) {
	if len(results) == 0 {
		return CombinationResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if math.Abs(r.Extremes.AbsMaxMoment().Value) > math.Abs(best.Extremes.AbsMaxMoment().Value) {
			best = r
		}
	}
	return best, true
}

// Describe returns display strings for a load: its kind, where it acts and
// its magnitude with units and direction.
func Describe(l load.Load, u Units) (kind, where, magnitude string) {
	switch v := l.(type) {
	case load.Point:
		return "Point", fmt.Sprintf("%.3f", v.Position),
			fmt.Sprintf("%.2f %s %s", v.Magnitude, u.Force, v.Direction)
	case load.Moment:
		return "Moment", fmt.Sprintf("%.3f", v.Position),
			fmt.Sprintf("%.2f %s %s", v.Magnitude, u.Moment(), v.Direction)
	case load.UDL:
		return "UDL", fmt.Sprintf("%.3f - %.3f", v.Start, v.End),
			fmt.Sprintf("%.2f %s %s", v.Magnitude, u.Intensity(), v.Direction)
	case load.Trapezoidal:
		return "Trapezoidal", fmt.Sprintf("%.3f - %.3f", v.Start, v.End),
			fmt.Sprintf("%.2f to %.2f %s %s", v.StartMagnitude, v.EndMagnitude, u.Intensity(), v.Direction)
	}
	return fmt.Sprintf("%T", l), "", ""
}
