package load

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four load shapes
type Kind string

const (
	KindPoint       Kind = "point"
	KindMoment      Kind = "moment"
	KindUDL         Kind = "udl"
	KindTrapezoidal Kind = "trapezoidal"
)

// Direction is the sense of a transverse force
type Direction int

const (
	Down Direction = iota
	Up
)

// Sign returns +1 for Down and -1 for Up (downward loads are positive)
func (d Direction) Sign() float64 {
	if d == Up {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MomentDirection is the sense of a concentrated couple
type MomentDirection int

const (
	Clockwise MomentDirection = iota
	Anticlockwise
)

// Sign returns -1 for Clockwise and +1 for Anticlockwise
func (d MomentDirection) Sign() float64 {
	if d == Anticlockwise {
		return 1
	}
	return -1
}

func (d MomentDirection) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case Anticlockwise:
		return "anticlockwise"
	}
	return fmt.Sprintf("MomentDirection(%d)", int(d))
}

// Load is implemented by Point, Moment, UDL and Trapezoidal only.
type Load interface {
	Kind() Kind
	// Validate checks the load geometry against a beam of the given length
	Validate(length float64) error
	isLoad()
}

// Point is a concentrated force
type Point struct {
	Position  float64
	Magnitude float64
	Direction Direction
}

// Moment is a concentrated couple
type Moment struct {
	Position  float64
	Magnitude float64
	Direction MomentDirection
}

// UDL is a uniformly distributed load over [Start, End]
type UDL struct {
	Start     float64
	End       float64
	Magnitude float64 // force per unit length
	Direction Direction
}

// Trapezoidal is a distributed load whose intensity varies linearly from
// StartMagnitude at Start to EndMagnitude at End
type Trapezoidal struct {
	Start          float64
	End            float64
	StartMagnitude float64
	EndMagnitude   float64
	Direction      Direction
}

func (Point) Kind() Kind       { return KindPoint }
func (Moment) Kind() Kind      { return KindMoment }
func (UDL) Kind() Kind         { return KindUDL }
func (Trapezoidal) Kind() Kind { return KindTrapezoidal }

func (Point) isLoad()       {}
func (Moment) isLoad()      {}
func (UDL) isLoad()         {}
func (Trapezoidal) isLoad() {}

// Length returns the loaded length End - Start
func (u UDL) Length() float64 { return u.End - u.Start }

// Length returns the loaded length End - Start
func (t Trapezoidal) Length() float64 { return t.End - t.Start }

// IntensityAt returns the unsigned intensity at distance s from Start
func (t Trapezoidal) IntensityAt(s float64) float64 {
	return t.StartMagnitude + (t.EndMagnitude-t.StartMagnitude)*s/t.Length()
}

// ParseKind parses a load kind name, case-insensitively
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point":
		return KindPoint, nil
	case "moment", "couple":
		return KindMoment, nil
	case "udl", "uniform":
		return KindUDL, nil
	case "trapezoidal", "triangular", "trapezoid":
		return KindTrapezoidal, nil
	}
	return "", &ValidationError{Field: "type", Msg: fmt.Sprintf("unknown load type %q", s)}
}

// ParseDirection parses "up" or "down". An empty string means down.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "down":
		return Down, nil
	case "up":
		return Up, nil
	}
	return Down, &ValidationError{Field: "direction", Msg: fmt.Sprintf("unknown direction %q", s)}
}

// ParseMomentDirection parses a couple sense. An empty string means clockwise.
func ParseMomentDirection(s string) (MomentDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clockwise", "cw":
		return Clockwise, nil
	case "anticlockwise", "counterclockwise", "ccw", "acw":
		return Anticlockwise, nil
	}
	return Clockwise, &ValidationError{Field: "momentDirection", Msg: fmt.Sprintf("unknown moment direction %q", s)}
}
