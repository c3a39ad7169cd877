package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosbeam/internal/load"
)

func TestParseLoadCase(t *testing.T) {
	tests := map[string]LoadCase{
		"":           Dead,
		"D":          Dead,
		"live":       Live,
		"Lr":         Roof,
		"wind":       Wind,
		"seismic":    Earthquake,
		" R ":        Rain,
		"Earthquake": Earthquake,
	}
	for in, want := range tests {
		got, err := ParseLoadCase(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLoadCase("snow")
	assert.Error(t, err)
}

func TestFactor(t *testing.T) {
	combo := LoadCombinations[1] // 1.2D + 1.6L + 0.5(Lr or R)
	assert.Equal(t, 1.2, combo.Factor(Dead))
	assert.Equal(t, 1.6, combo.Factor(Live))
	assert.Equal(t, 0.5, combo.Factor(Roof))
	assert.Equal(t, 0.5, combo.Factor(Rain))
	assert.Zero(t, combo.Factor(Wind))
	assert.Zero(t, combo.Factor(LoadCase("X")))

	for _, c := range Cases {
		assert.Equal(t, 1.0, Service.Factor(c), c.Name())
	}
}

func TestScale(t *testing.T) {
	assert.Equal(t,
		load.Point{Position: 2, Magnitude: 15, Direction: load.Up},
		Scale(load.Point{Position: 2, Magnitude: 10, Direction: load.Up}, 1.5))
	assert.Equal(t,
		load.Moment{Position: 2, Magnitude: 5, Direction: load.Anticlockwise},
		Scale(load.Moment{Position: 2, Magnitude: 10, Direction: load.Anticlockwise}, 0.5))
	assert.Equal(t,
		load.UDL{Start: 1, End: 3, Magnitude: 2.8},
		Scale(load.UDL{Start: 1, End: 3, Magnitude: 2}, 1.4))
	assert.Equal(t,
		load.Trapezoidal{Start: 1, End: 3, StartMagnitude: 2, EndMagnitude: 4},
		Scale(load.Trapezoidal{Start: 1, End: 3, StartMagnitude: 1, EndMagnitude: 2}, 2))
}

func TestCombinationTables(t *testing.T) {
	require.Len(t, LoadCombinations, 7)
	require.Len(t, SimplifiedCombinations, 2)
	for _, lc := range LoadCombinations {
		assert.NotZero(t, lc.Dead, lc.Description)
	}
}
