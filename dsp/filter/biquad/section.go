package biquad

// Coefficients of one normalized biquad (a0 = 1):
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// IsZero reports whether all coefficients are zero. Designers return the
// zero value for parameters they cannot realize.
func (c Coefficients) IsZero() bool {
	return c == Coefficients{}
}

// Section is one biquad with its delay line, processed in Direct Form II
// Transposed:
//
//	y  = B0*x + s1
//	s1 = B1*x - A1*y + s2
//	s2 = B2*x - A2*y
type Section struct {
	Coefficients

	s1, s2 float64
}

// NewSection returns a section with cleared state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.s1
	s.s1 = s.B1*x - s.A1*y + s.s2
	s.s2 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place without allocating.
func (s *Section) ProcessBlock(buf []float64) {
	c := s.Coefficients
	s1, s2 := s.s1, s.s2

	for i, x := range buf {
		y := c.B0*x + s1
		s1 = c.B1*x - c.A1*y + s2
		s2 = c.B2*x - c.A2*y
		buf[i] = y
	}

	s.s1, s.s2 = s1, s2
}

// Reset clears the delay line.
func (s *Section) Reset() {
	s.s1, s.s2 = 0, 0
}

// State returns the delay line.
func (s *Section) State() [2]float64 {
	return [2]float64{s.s1, s.s2}
}

// SetState restores a delay line saved with State.
func (s *Section) SetState(state [2]float64) {
	s.s1, s.s2 = state[0], state[1]
}
