package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// Coefficients designs the biquad realizing b at sampleRate. It reports false
// for bands that are off or cannot be realized at that rate, for example a
// frequency at or above Nyquist.
func (b Band) Coefficients(sampleRate float64) (biquad.Coefficients, bool) {
	var c biquad.Coefficients

	switch b.Kind {
	case KindBell:
		c = design.Peak(b.Frequency, b.Gain, b.Q, sampleRate)
	case KindLoPass:
		c = design.Lowpass(b.Frequency, b.Q, sampleRate)
	case KindHiPass:
		c = design.Highpass(b.Frequency, b.Q, sampleRate)
	case KindLoShelf:
		c = design.LowShelf(b.Frequency, b.Gain, b.Q, sampleRate)
	case KindHiShelf:
		c = design.HighShelf(b.Frequency, b.Gain, b.Q, sampleRate)
	case KindNotch:
		c = design.Notch(b.Frequency, b.Q, sampleRate)
	case KindAllpass:
		c = design.Allpass(b.Frequency, b.Q, sampleRate)
	case KindBandpass:
		c = design.Bandpass(b.Frequency, b.Q, sampleRate)
	default:
		return biquad.Coefficients{}, false
	}

	if c.IsZero() {
		return c, false
	}
	return c, true
}

// Coefficients returns one section per realizable band, in band order.
func (s Settings) Coefficients(sampleRate float64) ([]biquad.Coefficients, error) {
	if !validSampleRate(sampleRate) {
		return nil, ErrInvalidSampleRate
	}

	out := make([]biquad.Coefficients, 0, len(s.Bands))
	for _, b := range s.Bands {
		if c, ok := b.Coefficients(sampleRate); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// Chain builds the biquad cascade realizing s. The input gain is applied as
// the chain gain.
func (s Settings) Chain(sampleRate float64) (*biquad.Chain, error) {
	coeffs, err := s.Coefficients(sampleRate)
	if err != nil {
		return nil, err
	}
	return biquad.NewChain(coeffs, biquad.WithGain(core.DBToLinear(s.InputGain))), nil
}

// MagnitudeDB evaluates the analytic magnitude response of s in dB at each
// frequency in freqs.
func (s Settings) MagnitudeDB(freqs []float64, sampleRate float64) ([]float64, error) {
	chain, err := s.Chain(sampleRate)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = chain.MagnitudeDB(f, sampleRate)
	}
	return out, nil
}

// Stable reports whether every section realizing s is stable at sampleRate.
func (s Settings) Stable(sampleRate float64) bool {
	chain, err := s.Chain(sampleRate)
	if err != nil {
		return false
	}
	return chain.Stable()
}

func validSampleRate(sr float64) bool {
	return sr > 0 && !math.IsInf(sr, 0) && !math.IsNaN(sr)
}
