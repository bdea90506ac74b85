package core

import "math"

// InRange reports whether value lies in the inclusive range [min, max].
// NaN is never in range.
func InRange(value, min, max float64) bool {
	if min > max {
		min, max = max, min
	}

	return value >= min && value <= max
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
