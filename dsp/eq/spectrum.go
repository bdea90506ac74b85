package eq

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

const (
	minSpectrumSize = 16
	spectrumFloorDB = -200.0
)

// Response is a sampled magnitude response: MagnitudeDB[i] is the level at
// Frequencies[i]. Frequencies run from 0 Hz to Nyquist in FFT bin order.
type Response struct {
	Frequencies []float64 `json:"frequencies"`
	MagnitudeDB []float64 `json:"magnitudeDb"`
}

// Spectrum measures the response of s by transforming size samples of the
// realized chain's impulse response. size must be a power of two >= 16.
//
// The result has size/2+1 bins. Levels are floored at -200 dB.
func (s Settings) Spectrum(sampleRate float64, size int) (Response, error) {
	if size < minSpectrumSize || size&(size-1) != 0 {
		return Response{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	chain, err := s.Chain(sampleRate)
	if err != nil {
		return Response{}, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Response{}, fmt.Errorf("eq: spectrum fft plan: %w", err)
	}

	ir := chain.ImpulseResponse(size)
	in := make([]complex128, size)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Response{}, fmt.Errorf("eq: spectrum fft: %w", err)
	}

	bins := size/2 + 1
	resp := Response{
		Frequencies: make([]float64, bins),
		MagnitudeDB: spectrum.MagnitudeDB(out[:bins], spectrumFloorDB),
	}
	binHz := sampleRate / float64(size)
	for k := range resp.Frequencies {
		resp.Frequencies[k] = float64(k) * binHz
	}

	return resp, nil
}

// At resamples the response at freqs by linear interpolation. Frequencies
// outside the measured range hold the edge values.
func (r Response) At(freqs []float64) ([]float64, error) {
	return spectrum.InterpolateLinear(r.Frequencies, r.MagnitudeDB, freqs)
}

// Smooth returns a copy of r with 1/fraction-octave smoothing applied. The
// DC bin is left as is since it has no octave neighbourhood.
func (r Response) Smooth(fraction int) (Response, error) {
	if len(r.Frequencies) != len(r.MagnitudeDB) {
		return Response{}, fmt.Errorf("eq: smooth length mismatch: %d != %d", len(r.Frequencies), len(r.MagnitudeDB))
	}
	if len(r.Frequencies) < 2 {
		return Response{}, fmt.Errorf("eq: smooth needs at least 2 bins, got %d", len(r.Frequencies))
	}

	smoothed, err := spectrum.SmoothFractionalOctave(r.Frequencies[1:], r.MagnitudeDB[1:], fraction)
	if err != nil {
		return Response{}, fmt.Errorf("eq: smooth: %w", err)
	}

	out := Response{
		Frequencies: append([]float64(nil), r.Frequencies...),
		MagnitudeDB: make([]float64, len(r.MagnitudeDB)),
	}
	out.MagnitudeDB[0] = r.MagnitudeDB[0]
	copy(out.MagnitudeDB[1:], smoothed)
	return out, nil
}

// MeasuredDB measures s with an FFT of the given size and samples the result
// at freqs. A positive fraction applies 1/fraction-octave smoothing first.
func (s Settings) MeasuredDB(freqs []float64, sampleRate float64, size, fraction int) ([]float64, error) {
	resp, err := s.Spectrum(sampleRate, size)
	if err != nil {
		return nil, err
	}
	if fraction > 0 {
		if resp, err = resp.Smooth(fraction); err != nil {
			return nil, err
		}
	}
	return resp.At(freqs)
}
