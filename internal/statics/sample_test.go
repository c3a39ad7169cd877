package statics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosbeam/internal/load"
)

func TestStations(t *testing.T) {
	assert.Equal(t, []float64{0, 3, 6, 9, 10}, Stations(10, 3))
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, Stations(10, 2.5))
	assert.Len(t, Stations(10, 0), DefaultDivisions+1)
	assert.Nil(t, Stations(0, 1))

	xs := Stations(1, 0.1)
	require.Len(t, xs, 11)
	assert.Equal(t, 1.0, xs[10])
}

func TestIntegerStations(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, IntegerStations(3.7))
	assert.Equal(t, []float64{0}, IntegerStations(0.5))
	assert.Nil(t, IntegerStations(-1))
}

func TestSample(t *testing.T) {
	r := mustSolve(t, 10, simple(10), load.Point{Position: 5, Magnitude: 10})

	st := r.SampleAt(IntegerStations(10))
	require.Len(t, st, 11)
	assert.Equal(t, Station{X: 0, Shear: 5, Moment: 0}, st[0])
	assert.InDelta(t, 25, st[5].Moment, tol)
	assert.InDelta(t, -5, st[5].Shear, tol)
	assert.InDelta(t, -5, st[10].Shear, tol)
}

func TestSampleConcurrent(t *testing.T) {
	r := mustSolve(t, 20, []Support{{Position: 2}, {Position: 18}},
		load.UDL{Start: 0, End: 20, Magnitude: 1.5},
		load.Trapezoidal{Start: 4, End: 16, StartMagnitude: 2, EndMagnitude: 8},
		load.Point{Position: 11, Magnitude: 25},
		load.Moment{Position: 7, Magnitude: 40, Direction: load.Anticlockwise},
	)
	xs := Stations(20, 0.05)
	want := r.SampleAt(xs)

	for _, workers := range []int{0, 1, 3, 8, 1000} {
		got, err := r.SampleConcurrent(context.Background(), xs, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}

	got, err := r.SampleConcurrent(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSampleConcurrent_Cancelled(t *testing.T) {
	r := mustSolve(t, 10, simple(10), load.Point{Position: 5, Magnitude: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.SampleConcurrent(ctx, Stations(10, 0.1), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtremes(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		loads     []load.Load
		maxMoment float64
		atX       float64
		maxShear  float64
		minShear  float64
	}{
		{
			name:      "central point load PL/4",
			length:    10,
			loads:     []load.Load{load.Point{Position: 5, Magnitude: 10}},
			maxMoment: 25, atX: 5, maxShear: 5, minShear: -5,
		},
		{
			name:      "uniform load wL^2/8",
			length:    8,
			loads:     []load.Load{load.UDL{Start: 0, End: 8, Magnitude: 3}},
			maxMoment: 24, atX: 4, maxShear: 12, minShear: -12,
		},
		{
			name:      "off-centre point load Pab/L",
			length:    10,
			loads:     []load.Load{load.Point{Position: 3, Magnitude: 20}},
			maxMoment: 42, atX: 3, maxShear: 14, minShear: -6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustSolve(t, tt.length, simple(tt.length), tt.loads...)
			e := r.Extremes()
			assert.InDelta(t, tt.maxMoment, e.MaxMoment.Value, 1e-6)
			assert.InDelta(t, tt.atX, e.MaxMoment.X, 1e-6)
			assert.InDelta(t, tt.maxShear, e.MaxShear.Value, 1e-6)
			assert.InDelta(t, tt.minShear, e.MinShear.Value, 1e-6)
			assert.Equal(t, e.MaxMoment, e.AbsMaxMoment())
		})
	}
}

func TestExtremes_Hogging(t *testing.T) {
	r := mustSolve(t, 10, []Support{{Position: 0}, {Position: 8}}, load.Point{Position: 10, Magnitude: 10})
	e := r.Extremes()

	assert.InDelta(t, -20, e.MinMoment.Value, 1e-6)
	assert.InDelta(t, 8, e.MinMoment.X, 1e-6)
	assert.Equal(t, e.MinMoment, e.AbsMaxMoment())
	assert.InDelta(t, 10, e.AbsMaxShear().Value, 1e-6)
}

func TestExtremes_ShearRightOfInteriorSupport(t *testing.T) {
	// B falls between stations: the jump in shear at B must still be found
	r := mustSolve(t, 10, []Support{{Position: 0}, {Position: 6.95}}, load.UDL{Start: 0, End: 10, Magnitude: 10})
	e := r.Extremes()

	right := r.ShearAt(6.95 + 1e-9)
	assert.InDelta(t, 30.5, right, 1e-6)
	assert.InDelta(t, right, e.MaxShear.Value, 1e-6)
	assert.InDelta(t, 6.95, e.MaxShear.X, 1e-6)
}
