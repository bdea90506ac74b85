package biquad

// Chain cascades sections in order behind a linear input gain.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures NewChain.
type ChainOption func(*chainConfig)

// WithGain sets the linear gain applied before the first section.
// The default is 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds one section per coefficient set. An empty chain only
// applies the gain.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain{gain: cfg.gain}
	c.setSections(coeffs)
	return c
}

func (c *Chain) setSections(coeffs []Coefficients) {
	c.sections = make([]Section, len(coeffs))
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
}

// ProcessSample filters one sample through the cascade.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place through the cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.gain
		}
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears the state of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int { return len(c.sections) }

// Gain returns the linear input gain.
func (c *Chain) Gain() float64 { return c.gain }

// UpdateCoefficients swaps in new coefficients and gain. With an unchanged
// section count the delay lines are kept, so a running signal does not
// restart from silence; otherwise the sections are rebuilt with cleared
// state.
func (c *Chain) UpdateCoefficients(coeffs []Coefficients, gain float64) {
	c.gain = gain

	if len(coeffs) != len(c.sections) {
		c.setSections(coeffs)
		return
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
}

// State snapshots every section's delay line.
func (c *Chain) State() [][2]float64 {
	out := make([][2]float64, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].State()
	}
	return out
}

// SetState restores a snapshot taken with State. It panics if the snapshot
// is shorter than the chain.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
