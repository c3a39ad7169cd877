package load

import (
	"fmt"
	"math"
)

// ValidationError reports a load whose geometry or values are unusable
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid load: " + e.Msg
	}
	return fmt.Sprintf("invalid load: %s: %s", e.Field, e.Msg)
}

// Validate checks a load of any kind against a beam of the given length
func Validate(l Load, length float64) error {
	if l == nil {
		return &ValidationError{Msg: "load is nil"}
	}
	return l.Validate(length)
}

func (p Point) Validate(length float64) error {
	if err := finite("magnitude", p.Magnitude); err != nil {
		return err
	}
	if err := checkDirection(p.Direction); err != nil {
		return err
	}
	return within("position", p.Position, length)
}

func (m Moment) Validate(length float64) error {
	if err := finite("magnitude", m.Magnitude); err != nil {
		return err
	}
	if m.Direction != Clockwise && m.Direction != Anticlockwise {
		return &ValidationError{Field: "momentDirection", Msg: m.Direction.String()}
	}
	return within("position", m.Position, length)
}

func (u UDL) Validate(length float64) error {
	if err := finite("magnitude", u.Magnitude); err != nil {
		return err
	}
	if err := checkDirection(u.Direction); err != nil {
		return err
	}
	return span(u.Start, u.End, length)
}

func (t Trapezoidal) Validate(length float64) error {
	if err := finite("startMagnitude", t.StartMagnitude); err != nil {
		return err
	}
	if err := finite("endMagnitude", t.EndMagnitude); err != nil {
		return err
	}
	if err := checkDirection(t.Direction); err != nil {
		return err
	}
	return span(t.Start, t.End, length)
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Msg: fmt.Sprintf("must be a finite number, got %v", v)}
	}
	return nil
}

func within(field string, x, length float64) error {
	if err := finite(field, x); err != nil {
		return err
	}
	if x < 0 || x > length {
		return &ValidationError{Field: field, Msg: fmt.Sprintf("%.4g is outside the beam [0, %.4g]", x, length)}
	}
	return nil
}

func span(start, end, length float64) error {
	if err := within("start", start, length); err != nil {
		return err
	}
	if err := within("end", end, length); err != nil {
		return err
	}
	if start >= end {
		return &ValidationError{Field: "end", Msg: fmt.Sprintf("start %.4g must be less than end %.4g", start, end)}
	}
	return nil
}

func checkDirection(d Direction) error {
	if d != Down && d != Up {
		return &ValidationError{Field: "direction", Msg: d.String()}
	}
	return nil
}
