package biquad

import "math"

// MagnitudeSquared evaluates |H(e^jw)|^2 at freqHz in closed form.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	// With k = 2cos(w), |b0 + b1 z^-1 + b2 z^-2|^2 expands to
	// (b0-b2)^2 + b1^2 + (b1(b0+b2) + b0 b2 k) k, likewise for the
	// denominator with b0 = 1.
	k := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)

	num := (c.B0-c.B2)*(c.B0-c.B2) + c.B1*c.B1 + (c.B1*(c.B0+c.B2)+c.B0*c.B2*k)*k
	den := (1-c.A2)*(1-c.A2) + c.A1*c.A1 + (c.A1*(1+c.A2)+c.A2*k)*k
	return num / den
}

// MagnitudeDB returns the magnitude response at freqHz in dB.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// MagnitudeDB returns the cascade's magnitude response at freqHz in dB,
// input gain included.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	db := 20 * math.Log10(math.Abs(c.gain))
	for i := range c.sections {
		db += c.sections[i].MagnitudeDB(freqHz, sampleRate)
	}
	return db
}

// ImpulseResponse returns the first n samples of the cascade's impulse
// response. The chain state is left untouched.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	c.Reset()

	out := make([]float64, n)
	out[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		out[i] = c.ProcessSample(0)
	}

	c.SetState(saved)
	return out
}
