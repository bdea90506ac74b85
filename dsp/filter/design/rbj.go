package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// cookbook holds the intermediate terms shared by all RBJ designs.
type cookbook struct {
	cos, sin, alpha float64
}

func newCookbook(freq, q, sampleRate float64) (cookbook, bool) {
	if !finitePositive(sampleRate) || !finitePositive(freq) || freq >= sampleRate/2 {
		return cookbook{}, false
	}
	if !finitePositive(q) {
		q = defaultQ
	}

	w0 := 2 * math.Pi * freq / sampleRate
	sin := math.Sin(w0)
	return cookbook{cos: math.Cos(w0), sin: sin, alpha: sin / (2 * q)}, true
}

// unity returns the denominator shared by the gainless designs.
func (c cookbook) unity() (a0, a1, a2 float64) {
	return 1 + c.alpha, -2 * c.cos, 1 - c.alpha
}

// Lowpass designs a second-order lowpass at freq (Hz) with quality q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	c, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	a0, a1, a2 := c.unity()
	b := (1 - c.cos) / 2
	return normalize(b, 2*b, b, a0, a1, a2)
}

// Highpass designs a second-order highpass at freq (Hz) with quality q.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	c, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	a0, a1, a2 := c.unity()
	b := (1 + c.cos) / 2
	return normalize(b, -2*b, b, a0, a1, a2)
}

// Bandpass designs a bandpass with constant skirt gain (peak gain = q).
func Bandpass(freq, q, sampleRate float64) biquad.Coefficients {
	c, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	a0, a1, a2 := c.unity()
	return normalize(c.sin/2, 0, -c.sin/2, a0, a1, a2)
}

// Notch designs a band-reject filter centered at freq (Hz).
func Notch(freq, q, sampleRate float64) biquad.Coefficients {
	c, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	a0, a1, a2 := c.unity()
	return normalize(1, -2*c.cos, 1, a0, a1, a2)
}

// Allpass designs a second-order allpass centered at freq (Hz).
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	c, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	a0, a1, a2 := c.unity()
	return normalize(a2, a1, a0, a0, a1, a2)
}

// Peak designs a peaking (bell) filter with gainDB at freq.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	c, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	a := math.Pow(10, gainDB/40)
	return normalize(
		1+c.alpha*a, -2*c.cos, 1-c.alpha*a,
		1+c.alpha/a, -2*c.cos, 1-c.alpha/a,
	)
}

// LowShelf designs a low shelf with gainDB below freq.
func LowShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	return shelf(freq, gainDB, q, sampleRate, 1)
}

// HighShelf designs a high shelf with gainDB above freq.
func HighShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	return shelf(freq, gainDB, q, sampleRate, -1)
}

// shelf implements both cookbook shelves; the high shelf is the low shelf
// with the sign of every cos(w0) term flipped (sign = -1).
func shelf(freq, gainDB, q, sampleRate, sign float64) biquad.Coefficients {
	c, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	a := math.Pow(10, gainDB/40)
	cw := sign * c.cos
	beta := 2 * math.Sqrt(a) * c.alpha

	return normalize(
		a*((a+1)-(a-1)*cw+beta),
		sign*2*a*((a-1)-(a+1)*cw),
		a*((a+1)-(a-1)*cw-beta),
		(a+1)+(a-1)*cw+beta,
		-sign*2*((a-1)+(a+1)*cw),
		(a+1)+(a-1)*cw-beta,
	)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}
	return biquad.Coefficients{B0: b0 / a0, B1: b1 / a0, B2: b2 / a0, A1: a1 / a0, A2: a2 / a0}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
