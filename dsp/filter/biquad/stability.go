package biquad

import "math/cmplx"

// Poles returns the roots of z^2 + A1 z + A2.
func (c Coefficients) Poles() [2]complex128 {
	d := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0))
	a1 := complex(c.A1, 0)
	return [2]complex128{(-a1 + d) / 2, (-a1 - d) / 2}
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}
	return true
}

// Stable reports whether every section is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}
	return true
}
