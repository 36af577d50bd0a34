package core

import "math"

// Interval is a scalar range [Min, Max]
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every finite value
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// Size returns Max - Min
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether Min <= x <= Max
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds reports whether Min < x < Max.
// Ray parameters are accepted with this strict test so that a root sitting
// exactly on an endpoint is rejected.
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

// Clamp saturates x to [Min, Max]
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}
