package load

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		load    Load
		wantErr bool
		field   string
	}{
		{"point inside", Point{Position: 5, Magnitude: 10}, false, ""},
		{"point at left end", Point{Position: 0, Magnitude: 10}, false, ""},
		{"point at right end", Point{Position: 10, Magnitude: 10}, false, ""},
		{"point beyond end", Point{Position: 10.5, Magnitude: 10}, true, "position"},
		{"point negative", Point{Position: -1, Magnitude: 10}, true, "position"},
		{"point NaN magnitude", Point{Position: 1, Magnitude: math.NaN()}, true, "magnitude"},
		{"point NaN position", Point{Position: math.NaN(), Magnitude: 1}, true, "position"},
		{"moment inside", Moment{Position: 3, Magnitude: 4, Direction: Anticlockwise}, false, ""},
		{"moment infinite", Moment{Position: 3, Magnitude: math.Inf(1)}, true, "magnitude"},
		{"udl full span", UDL{Start: 0, End: 10, Magnitude: 2}, false, ""},
		{"udl reversed", UDL{Start: 6, End: 4, Magnitude: 2}, true, "end"},
		{"udl zero length", UDL{Start: 4, End: 4, Magnitude: 2}, true, "end"},
		{"udl past end", UDL{Start: 4, End: 11, Magnitude: 2}, true, "end"},
		{"trapezoid ok", Trapezoidal{Start: 2, End: 8, StartMagnitude: 0, EndMagnitude: 6}, false, ""},
		{"trapezoid NaN end magnitude", Trapezoidal{Start: 2, End: 8, EndMagnitude: math.NaN()}, true, "endMagnitude"},
		{"trapezoid start before beam", Trapezoidal{Start: -2, End: 8, StartMagnitude: 1}, true, "start"},
		{"bad direction", Point{Position: 1, Magnitude: 1, Direction: Direction(7)}, true, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.load, 10)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	var verr *ValidationError
	assert.ErrorAs(t, Validate(nil, 10), &verr)
}

func TestSigns(t *testing.T) {
	assert.Equal(t, 1.0, Down.Sign())
	assert.Equal(t, -1.0, Up.Sign())
	assert.Equal(t, -1.0, Clockwise.Sign())
	assert.Equal(t, 1.0, Anticlockwise.Sign())
}

func TestParse(t *testing.T) {
	k, err := ParseKind(" UDL ")
	require.NoError(t, err)
	assert.Equal(t, KindUDL, k)

	k, err = ParseKind("triangular")
	require.NoError(t, err)
	assert.Equal(t, KindTrapezoidal, k)

	_, err = ParseKind("wind")
	assert.Error(t, err)

	d, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Down, d)

	d, err = ParseDirection("Up")
	require.NoError(t, err)
	assert.Equal(t, Up, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)

	md, err := ParseMomentDirection("counterclockwise")
	require.NoError(t, err)
	assert.Equal(t, Anticlockwise, md)

	md, err = ParseMomentDirection("cw")
	require.NoError(t, err)
	assert.Equal(t, Clockwise, md)
}

func TestTrapezoidalIntensity(t *testing.T) {
	tr := Trapezoidal{Start: 2, End: 6, StartMagnitude: 1, EndMagnitude: 5}
	assert.InDelta(t, 4.0, tr.Length(), 1e-12)
	assert.InDelta(t, 1.0, tr.IntensityAt(0), 1e-12)
	assert.InDelta(t, 3.0, tr.IntensityAt(2), 1e-12)
	assert.InDelta(t, 5.0, tr.IntensityAt(4), 1e-12)
}
