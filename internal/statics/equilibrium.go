package statics

import "math"

// Residual is the out-of-balance force and moment of a solved beam.
// Both are zero, up to rounding, for a correct solution.
type Residual struct {
	Force  float64 // Ra + Rb - sum of load resultants
	Moment float64 // moment balance about the first support
}

// Residual checks global equilibrium of the reactions against the loads
func (r *Result) Residual() Residual {
	return Residual{
		Force:  r.reactions.Ra + r.reactions.Rb - r.TotalLoad(),
		Moment: r.MomentResidualAbout(r.a),
	}
}

// MomentResidualAbout sums the moments of the reactions, loads and couples
// about p, using the same convention as the reaction solve.
func (r *Result) MomentResidualAbout(p float64) float64 {
	sum := r.reactions.Ra*(r.a-p) + r.reactions.Rb*(r.b-p)
	for _, l := range r.loads {
		res, _ := resultantOf(l)
		sum -= res.Force*(res.Centroid-p) + res.Couple
	}
	return sum
}

// Balanced reports whether both residuals are within tol relative to the
// largest load resultant involved.
func (r *Result) Balanced(tol float64) bool {
	scale := math.Max(1, math.Abs(r.reactions.Ra)+math.Abs(r.reactions.Rb))
	for _, l := range r.loads {
		res, _ := resultantOf(l)
		scale = math.Max(scale, math.Abs(res.Force)+math.Abs(res.Couple))
	}
	res := r.Residual()
	return math.Abs(res.Force) <= tol*scale && math.Abs(res.Moment) <= tol*scale*math.Max(1, r.length)
}
