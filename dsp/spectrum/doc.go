// Package spectrum provides spectrum-domain helpers for frequency response
// analysis: magnitude extraction from complex FFT bins, log-spaced frequency
// grids, interpolation onto such grids and fractional-octave smoothing.
//
// The package does not implement an FFT itself; it operates on bins produced
// by an FFT backend.
package spectrum
