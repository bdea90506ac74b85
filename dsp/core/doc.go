// Package core holds small numeric helpers shared by the DSP packages:
// range checks and dB/linear conversions.
package core
