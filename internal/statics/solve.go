// Package statics computes support reactions and internal forces for a
// beam resting on two vertical supports.
//
// Sign conventions:
//   - downward loads are positive resultants, upward reactions are positive
//   - anticlockwise couples are positive in the moment balance about A
//   - shear is the sum of forces left of the section (reactions up, loads down)
//   - the bending moment satisfies dM/dx = V between discontinuities
package statics

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosbeam/internal/load"
)

// SupportKind describes how a support restrains the beam. It does not change
// the two-reaction solution computed here.
type SupportKind int

const (
	Pinned SupportKind = iota
	Roller
	Fixed
	InternalHinge
)

func (k SupportKind) String() string {
	switch k {
	case Pinned:
		return "pinned"
	case Roller:
		return "roller"
	case Fixed:
		return "fixed"
	case InternalHinge:
		return "hinge"
	}
	return fmt.Sprintf("SupportKind(%d)", int(k))
}

// ParseSupportKind parses a support kind name. An empty string means pinned.
func ParseSupportKind(s string) (SupportKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pinned", "pin":
		return Pinned, nil
	case "roller":
		return Roller, nil
	case "fixed":
		return Fixed, nil
	case "hinge", "internalhinge", "internal_hinge":
		return InternalHinge, nil
	}
	return Pinned, fmt.Errorf("unknown support kind %q", s)
}

// Support is a vertical reaction point on the beam
type Support struct {
	Kind     SupportKind
	Position float64
}

// Reactions holds the two upward support forces
type Reactions struct {
	Ra float64 // at the first support (A)
	Rb float64 // at the second support (B)
}

// Result is the outcome of one Solve call. It owns a private copy of the
// inputs, so its evaluators never observe later changes to the caller's
// load collection. A Result is safe for concurrent use.
type Result struct {
	length    float64
	a, b      float64
	reactions Reactions
	loads     []load.Load
}

// Solve validates the inputs and computes the reactions at the first two
// supports. Supports beyond the second are accepted but ignored.
func Solve(length float64, supports []Support, loads []load.Load) (*Result, error) {
	if math.IsNaN(length) || math.IsInf(length, 0) || length <= 0 {
		return nil, &load.ValidationError{Field: "length", Msg: fmt.Sprintf("beam length must be a positive number, got %v", length)}
	}
	if len(supports) < 2 {
		return nil, fmt.Errorf("got %d support(s): %w", len(supports), ErrInsufficientSupports)
	}
	for i, s := range supports {
		x := s.Position
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > length {
			return nil, &load.ValidationError{
				Field: fmt.Sprintf("supports[%d].position", i),
				Msg:   fmt.Sprintf("%v is outside the beam [0, %.4g]", x, length),
			}
		}
	}

	a, b := supports[0].Position, supports[1].Position
	if a == b {
		return nil, fmt.Errorf("supports A and B coincide at %.4g: %w", a, ErrDegenerateSpan)
	}

	owned := make([]load.Load, 0, len(loads))
	for i, l := range loads {
		l = normalize(l)
		if err := load.Validate(l, length); err != nil {
			return nil, fmt.Errorf("load %d: %w", i, err)
		}
		owned = append(owned, l)
	}

	r, err := solveReactions(a, b, owned)
	if err != nil {
		return nil, err
	}

	return &Result{
		length:    length,
		a:         a,
		b:         b,
		reactions: r,
		loads:     owned,
	}, nil
}

// resultant is the statically equivalent action of one load
type resultant struct {
	Force    float64 // signed, downward positive
	Centroid float64 // line of action of Force
	Couple   float64 // signed, anticlockwise positive
}

func resultantOf(l load.Load) (resultant, error) {
	switch v := l.(type) {
	case load.Point:
		return resultant{Force: v.Direction.Sign() * v.Magnitude, Centroid: v.Position}, nil

	case load.Moment:
		return resultant{Couple: v.Direction.Sign() * v.Magnitude, Centroid: v.Position}, nil

	case load.UDL:
		length := v.Length()
		return resultant{
			Force:    v.Direction.Sign() * v.Magnitude * length,
			Centroid: v.Start + length/2,
		}, nil

	case load.Trapezoidal:
		sum := v.StartMagnitude + v.EndMagnitude
		if sum == 0 {
			return resultant{}, ErrDegenerateLoad
		}
		length := v.Length()
		// centroid of a trapezoid measured from the w0 side
		centroid := v.Start + length*(v.StartMagnitude+2*v.EndMagnitude)/(3*sum)
		return resultant{
			Force:    v.Direction.Sign() * sum * length / 2,
			Centroid: centroid,
		}, nil
	}
	return resultant{}, fmt.Errorf("unsupported load type %T", l)
}

func solveReactions(a, b float64, loads []load.Load) (Reactions, error) {
	var totalVerticalLoad, momentAboutA float64

	for i, l := range loads {
		res, err := resultantOf(l)
		if err != nil {
			return Reactions{}, fmt.Errorf("load %d: %w", i, err)
		}
		totalVerticalLoad += res.Force
		momentAboutA += res.Force*(res.Centroid-a) + res.Couple
	}

	rb := momentAboutA / (b - a)
	ra := totalVerticalLoad - rb

	if math.IsNaN(ra) || math.IsInf(ra, 0) || math.IsNaN(rb) || math.IsInf(rb, 0) {
		return Reactions{}, fmt.Errorf("reactions are not finite (Ra=%v, Rb=%v): %w", ra, rb, ErrDegenerateSpan)
	}
	return Reactions{Ra: ra, Rb: rb}, nil
}

// normalize turns pointer variants into values so the Result cannot be
// mutated through an alias held by the caller.
func normalize(l load.Load) load.Load {
	switch v := l.(type) {
	case *load.Point:
		if v != nil {
			return *v
		}
	case *load.Moment:
		if v != nil {
			return *v
		}
	case *load.UDL:
		if v != nil {
			return *v
		}
	case *load.Trapezoidal:
		if v != nil {
			return *v
		}
	default:
		return l
	}
	return nil
}

// Reactions returns the support reactions
func (r *Result) Reactions() Reactions { return r.reactions }

// Ra returns the reaction at the first support
func (r *Result) Ra() float64 { return r.reactions.Ra }

// Rb returns the reaction at the second support
func (r *Result) Rb() float64 { return r.reactions.Rb }

// Length returns the beam length the result was computed for
func (r *Result) Length() float64 { return r.length }

// Supports returns the positions of the two reaction supports
func (r *Result) Supports() (a, b float64) { return r.a, r.b }

// Loads returns a copy of the loads the result was computed from
func (r *Result) Loads() []load.Load {
	out := make([]load.Load, len(r.loads))
	copy(out, r.loads)
	return out
}

// TotalLoad returns the algebraic sum of the load resultants (downward positive)
func (r *Result) TotalLoad() float64 {
	var total float64
	for _, l := range r.loads {
		res, _ := resultantOf(l)
		total += res.Force
	}
	return total
}
