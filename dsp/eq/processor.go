package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Processor runs a mono signal through the chain realizing a Settings value.
// It is not safe for concurrent use.
type Processor struct {
	settings   Settings
	sampleRate float64
	chain      *biquad.Chain
}

// NewProcessor realizes s at sampleRate.
func NewProcessor(s Settings, sampleRate float64) (*Processor, error) {
	chain, err := s.Chain(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("eq: new processor: %w", err)
	}

	return &Processor{
		settings:   cloneSettings(s),
		sampleRate: sampleRate,
		chain:      chain,
	}, nil
}

// Update swaps in new settings. When the number of realized sections is
// unchanged the filter state carries over, so parameter tweaks do not click.
func (p *Processor) Update(s Settings) error {
	coeffs, err := s.Coefficients(p.sampleRate)
	if err != nil {
		return err
	}

	p.chain.UpdateCoefficients(coeffs, core.DBToLinear(s.InputGain))
	p.settings = cloneSettings(s)
	return nil
}

// SetSampleRate re-realizes the current settings at a new rate and clears
// the filter state.
func (p *Processor) SetSampleRate(sampleRate float64) error {
	chain, err := p.settings.Chain(sampleRate)
	if err != nil {
		return fmt.Errorf("eq: set sample rate %f: %w", sampleRate, err)
	}
	p.sampleRate = sampleRate
	p.chain = chain
	return nil
}

// ProcessSample filters one sample.
func (p *Processor) ProcessSample(x float64) float64 {
	return p.chain.ProcessSample(x)
}

// ProcessInPlace filters buf in place.
func (p *Processor) ProcessInPlace(buf []float64) {
	p.chain.ProcessBlock(buf)
}

// Reset clears the filter state.
func (p *Processor) Reset() {
	p.chain.Reset()
}

// Settings returns a copy of the active settings.
func (p *Processor) Settings() Settings { return cloneSettings(p.settings) }

// SampleRate returns the rate the settings are realized at.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// Sections returns the number of biquad sections in use.
func (p *Processor) Sections() int { return p.chain.NumSections() }

func cloneSettings(s Settings) Settings {
	return Settings{
		InputGain: s.InputGain,
		Bands:     append([]Band(nil), s.Bands...),
	}
}
