package statics

import (
	"math"

	"github.com/alexiusacademia/gosbeam/internal/load"
)

// ShearAt returns the shear force at x. Sections left of the first support
// carry no shear. A point load at exactly x is counted as already passed.
// Past the second support Rb is included, so an overhang carries its own
// load back to zero at the free end.
func (r *Result) ShearAt(x float64) float64 {
	if x < r.a {
		return 0
	}

	shear := r.reactions.Ra
	for _, l := range r.loads {
		switch v := l.(type) {
		case load.Point:
			if v.Position <= x {
				shear -= v.Direction.Sign() * v.Magnitude
			}
		case load.UDL, load.Trapezoidal:
			force, _ := partial(v, x)
			shear -= force
		}
	}

	if x > r.b {
		shear += r.reactions.Rb
	}
	return shear
}

// MomentAt returns the bending moment at x (sagging positive). Sections left
// of the first support carry no moment, and Rb acts on sections past the
// second support.
func (r *Result) MomentAt(x float64) float64 {
	if x < r.a {
		return 0
	}

	moment := r.reactions.Ra * (x - r.a)
	for _, l := range r.loads {
		switch v := l.(type) {
		case load.Point:
			if v.Position <= x {
				moment += v.Direction.Sign() * v.Magnitude * (v.Position - x)
			}
		case load.Moment:
			if v.Position <= x {
				moment += v.Direction.Sign() * v.Magnitude
			}
		case load.UDL, load.Trapezoidal:
			_, m := partial(v, x)
			moment += m
		}
	}

	if x > r.b {
		moment += r.reactions.Rb * (x - r.b)
	}
	return moment
}

// partial integrates the portion of a distributed load lying in
// [start, min(x, end)]. It returns the signed resultant of that portion
// (downward positive) and its moment about x, i.e. force*(centroid - x).
func partial(l load.Load, x float64) (force, moment float64) {
	var start, end, w0, w1, sign float64
	switch v := l.(type) {
	case load.UDL:
		start, end, w0, w1, sign = v.Start, v.End, v.Magnitude, v.Magnitude, v.Direction.Sign()
	case load.Trapezoidal:
		start, end, w0, w1, sign = v.Start, v.End, v.StartMagnitude, v.EndMagnitude, v.Direction.Sign()
	default:
		return 0, 0
	}
	if start > x {
		return 0, 0
	}

	dx := math.Min(x, end) - start
	slope := (w1 - w0) / (end - start)

	// w(s) = w0 + slope*s for s in [0, dx]
	f := w0*dx + slope*dx*dx/2
	firstMoment := w0*dx*dx/2 + slope*dx*dx*dx/3 // about start

	force = sign * f
	moment = sign * (f*(start-x) + firstMoment)
	return force, moment
}
