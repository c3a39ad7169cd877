package nscp

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosbeam/internal/load"
)

// LoadCase is the origin category of an applied load
type LoadCase string

const (
	Dead       LoadCase = "D"
	Live       LoadCase = "L"
	Roof       LoadCase = "Lr"
	Wind       LoadCase = "W"
	Earthquake LoadCase = "E"
	Rain       LoadCase = "R"
)

// Cases lists every load case in display order
var Cases = []LoadCase{Dead, Live, Roof, Wind, Earthquake, Rain}

// ParseLoadCase accepts the NSCP symbol or the spelled-out name. An empty
// string is treated as dead load.
func ParseLoadCase(s string) (LoadCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "d", "dead":
		return Dead, nil
	case "l", "live":
		return Live, nil
	case "lr", "roof", "roof live":
		return Roof, nil
	case "w", "wind":
		return Wind, nil
	case "e", "earthquake", "seismic":
		return Earthquake, nil
	case "r", "rain":
		return Rain, nil
	}
	return "", fmt.Errorf("unknown load case %q", s)
}

// Name returns the long name of the load case
func (c LoadCase) Name() string {
	switch c {
	case Dead:
		return "Dead Load"
	case Live:
		return "Live Load"
	case Roof:
		return "Roof Live Load"
	case Wind:
		return "Wind Load"
	case Earthquake:
		return "Earthquake Load"
	case Rain:
		return "Rain Load"
	}
	return string(c)
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load case
	Dead       float64 // D
	Live       float64 // L
	Roof       float64 // Lr
	Wind       float64 // W
	Earthquake float64 // E
	Rain       float64 // R
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations covers the usual gravity-only case
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// Service is the unfactored combination of every case
var Service = LoadCombination{
	ID: "S", Description: "D + L + Lr + W + E + R",
	Dead: 1, Live: 1, Roof: 1, Wind: 1, Earthquake: 1, Rain: 1,
}

// Factor returns the load factor applied to the given case
func (lc LoadCombination) Factor(c LoadCase) float64 {
	switch c {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// Scale returns a copy of l with every magnitude multiplied by factor.
// Positions and directions are unchanged.
func Scale(l load.Load, factor float64) load.Load {
	switch v := l.(type) {
	case load.Point:
		v.Magnitude *= factor
		return v
	case load.Moment:
		v.Magnitude *= factor
		return v
	case load.UDL:
		v.Magnitude *= factor
		return v
	case load.Trapezoidal:
		v.StartMagnitude *= factor
		v.EndMagnitude *= factor
		return v
	}
	return l
}
