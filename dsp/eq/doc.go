// Package eq is a parametric equalizer built from imported presets.
//
// Load maps a preset.Result onto equalizer Settings, applying the band count
// and parameter limits of the equalizer. Settings are realized as a cascade
// of RBJ biquads, one per active band, with the preamp as input gain:
//
//	res, _ := preset.Import(preset.FormatAuto, text)
//	s := eq.Load(res)
//	p, err := eq.NewProcessor(s, 48000)
//	if err != nil {
//		return err
//	}
//	p.ProcessInPlace(samples)
//
// The response of a Settings value can be evaluated analytically with
// MagnitudeDB or measured from the impulse response with Spectrum.
package eq
