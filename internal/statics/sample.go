package statics

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gosbeam/internal/load"
)

// DefaultDivisions is the number of intervals used when no step is given
const DefaultDivisions = 100

// Station is one sampled section of the beam
type Station struct {
	X      float64
	Shear  float64
	Moment float64
}

// Extreme is a peak value and the section where it occurs
type Extreme struct {
	Value float64
	X     float64
}

// Extremes holds the peak internal forces over [0, L]
type Extremes struct {
	MaxShear  Extreme
	MinShear  Extreme
	MaxMoment Extreme
	MinMoment Extreme
}

// AbsMaxMoment returns the moment with the largest magnitude
func (e Extremes) AbsMaxMoment() Extreme {
	if math.Abs(e.MinMoment.Value) > math.Abs(e.MaxMoment.Value) {
		return e.MinMoment
	}
	return e.MaxMoment
}

// AbsMaxShear returns the shear with the largest magnitude
func (e Extremes) AbsMaxShear() Extreme {
	if math.Abs(e.MinShear.Value) > math.Abs(e.MaxShear.Value) {
		return e.MinShear
	}
	return e.MaxShear
}

// IntegerStations returns 0, 1, ..., floor(length)
func IntegerStations(length float64) []float64 {
	if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil
	}
	n := int(math.Floor(length))
	xs := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		xs = append(xs, float64(i))
	}
	return xs
}

// Stations returns 0, step, 2*step, ... ending exactly at length. A step
// that is not positive selects length/DefaultDivisions.
func Stations(length, step float64) []float64 {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil
	}
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		step = length / DefaultDivisions
	}

	eps := step * 1e-9
	n := int(math.Floor(length/step + 1e-9))
	xs := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		xs = append(xs, float64(i)*step)
	}
	if last := xs[len(xs)-1]; length-last > eps {
		xs = append(xs, length)
	} else {
		xs[len(xs)-1] = length
	}
	return xs
}

// At evaluates shear and moment at x
func (r *Result) At(x float64) Station {
	return Station{X: x, Shear: r.ShearAt(x), Moment: r.MomentAt(x)}
}

// Sample evaluates the beam at evenly spaced stations (see Stations)
func (r *Result) Sample(step float64) []Station {
	return r.SampleAt(Stations(r.length, step))
}

// SampleAt evaluates the beam at each of xs, in order
func (r *Result) SampleAt(xs []float64) []Station {
	out := make([]Station, len(xs))
	for i, x := range xs {
		out[i] = r.At(x)
	}
	return out
}

// SampleConcurrent evaluates xs using up to workers goroutines. The output
// order matches xs. A workers value below 1 leaves concurrency unbounded.
func (r *Result) SampleConcurrent(ctx context.Context, xs []float64, workers int) ([]Station, error) {
	out := make([]Station, len(xs))
	if len(xs) == 0 {
		return out, nil
	}

	chunks := workers
	if chunks < 1 {
		chunks = len(xs)
	}
	size := (len(xs) + chunks - 1) / chunks

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for lo := 0; lo < len(xs); lo += size {
		hi := min(lo+size, len(xs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = r.At(xs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Extremes finds the peak shear and moment on [0, L]. Besides a fine
// sampling it checks both sides of every support and load edge, and the
// zero-shear sections where the moment has a local extremum.
func (r *Result) Extremes() Extremes {
	eps := r.length * 1e-9
	critical := r.criticalPoints()

	candidates := append([]float64{}, Stations(r.length, 0)...)
	for _, c := range critical {
		candidates = append(candidates, c)
		if c-eps >= 0 {
			candidates = append(candidates, c-eps)
		}
		if c+eps <= r.length {
			candidates = append(candidates, c+eps)
		}
	}
	for i := 0; i+1 < len(critical); i++ {
		lo, hi := critical[i]+eps, critical[i+1]-eps
		if lo >= hi {
			continue
		}
		if x, ok := r.shearRoot(lo, hi); ok {
			candidates = append(candidates, x)
		}
	}

	first := r.At(candidates[0])
	e := Extremes{
		MaxShear:  Extreme{first.Shear, first.X},
		MinShear:  Extreme{first.Shear, first.X},
		MaxMoment: Extreme{first.Moment, first.X},
		MinMoment: Extreme{first.Moment, first.X},
	}
	for _, x := range candidates[1:] {
		s := r.At(x)
		if s.Shear > e.MaxShear.Value {
			e.MaxShear = Extreme{s.Shear, x}
		}
		if s.Shear < e.MinShear.Value {
			e.MinShear = Extreme{s.Shear, x}
		}
		if s.Moment > e.MaxMoment.Value {
			e.MaxMoment = Extreme{s.Moment, x}
		}
		if s.Moment < e.MinMoment.Value {
			e.MinMoment = Extreme{s.Moment, x}
		}
	}
	return e
}

// criticalPoints returns the sorted, de-duplicated positions where the
// shear or its slope may change abruptly.
func (r *Result) criticalPoints() []float64 {
	pts := []float64{0, r.length, r.a, r.b}
	for _, l := range r.loads {
		switch v := l.(type) {
		case load.Point:
			pts = append(pts, v.Position)
		case load.Moment:
			pts = append(pts, v.Position)
		case load.UDL:
			pts = append(pts, v.Start, v.End)
		case load.Trapezoidal:
			pts = append(pts, v.Start, v.End)
		}
	}
	sort.Float64s(pts)

	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// shearRoot bisects for a sign change of the shear on [lo, hi], where the
// shear is continuous.
func (r *Result) shearRoot(lo, hi float64) (float64, bool) {
	vlo, vhi := r.ShearAt(lo), r.ShearAt(hi)
	if vlo == 0 {
		return lo, true
	}
	if vhi == 0 {
		return hi, true
	}
	if (vlo > 0) == (vhi > 0) {
		return 0, false
	}
	for range 100 {
		mid := lo + (hi-lo)/2
		vm := r.ShearAt(mid)
		if vm == 0 || hi-lo < 1e-12*math.Max(1, r.length) {
			return mid, true
		}
		if (vm > 0) == (vlo > 0) {
			lo, vlo = mid, vm
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2, true
}
