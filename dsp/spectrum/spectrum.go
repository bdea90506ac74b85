package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// The magnitude kernel is dispatched by algo-vecmath to the fastest
// implementation available on the CPU.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	return out
}

// MagnitudeDB returns 20*log10(|X[k]|) for each bin, with zero bins clamped
// to floorDB.
func MagnitudeDB(in []complex128, floorDB float64) []float64 {
	out := Magnitude(in)
	for i, m := range out {
		out[i] = math.Max(core.LinearToDB(m), floorDB)
	}
	return out
}

// LogFrequencies returns n logarithmically spaced frequencies from lo to hi
// inclusive. It returns nil unless 0 < lo < hi and n >= 2.
func LogFrequencies(lo, hi float64, n int) []float64 {
	if n < 2 || lo <= 0 || hi <= lo {
		return nil
	}

	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	out[n-1] = hi
	return out
}

// ErrAxis is returned for an x axis or value slice the helpers cannot use.
var ErrAxis = errors.New("spectrum: invalid axis")

// checkAxis validates a strictly increasing, non-empty axis with matching
// values.
func checkAxis(x, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("%w: empty", ErrAxis)
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d points, %d values", ErrAxis, len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: not increasing at index %d", ErrAxis, i)
		}
	}
	return nil
}

// InterpolateLinear samples the piecewise-linear curve through (x, y) at
// each query point. Queries outside x hold the edge value.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if err := checkAxis(x, y); err != nil {
		return nil, err
	}

	last := len(x) - 1
	out := make([]float64, len(queryX))
	for i, q := range queryX {
		switch j := sort.SearchFloat64s(x, q); {
		case j == 0:
			out[i] = y[0]
		case j > last:
			out[i] = y[last]
		default:
			t := (q - x[j-1]) / (x[j] - x[j-1])
			out[i] = y[j-1] + t*(y[j]-y[j-1])
		}
	}
	return out, nil
}

// SmoothFractionalOctave replaces each value with the mean of all values
// whose frequency lies within 1/fraction octave centered on it. freqHz must
// be positive and strictly increasing.
func SmoothFractionalOctave(freqHz, values []float64, fraction int) ([]float64, error) {
	if err := checkAxis(freqHz, values); err != nil {
		return nil, err
	}
	if freqHz[0] <= 0 {
		return nil, fmt.Errorf("%w: frequencies must be > 0", ErrAxis)
	}
	if fraction <= 0 {
		return nil, fmt.Errorf("spectrum: octave fraction must be > 0: %d", fraction)
	}

	// prefix[k] is the sum of values[:k].
	prefix := make([]float64, len(values)+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] + v
	}

	half := math.Exp2(0.5 / float64(fraction))
	out := make([]float64, len(values))
	for i, f := range freqHz {
		lo := sort.SearchFloat64s(freqHz, f/half)
		hi := sort.Search(len(freqHz), func(k int) bool { return freqHz[k] > f*half })
		out[i] = (prefix[hi] - prefix[lo]) / float64(hi-lo)
	}
	return out, nil
}
