package eq

import (
	"sort"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq/preset"
)

// Band is one band of the equalizer.
type Band struct {
	Kind      Kind    `json:"kind"`
	Frequency float64 `json:"frequency"`
	Gain      float64 `json:"gain"`
	Q         float64 `json:"q"`
}

// Settings is the full state of the equalizer: the input gain applied before
// the bands, and the bands themselves in processing order.
type Settings struct {
	InputGain float64 `json:"inputGain"`
	Bands     []Band  `json:"bands"`
}

// Limits bounds the parameters the equalizer accepts.
type Limits struct {
	MaxBands     int
	MinFrequency float64
	MaxFrequency float64
	MinGain      float64
	MaxGain      float64
	MinQ         float64
	MaxQ         float64
}

// DefaultLimits returns the limits of the stock equalizer: 32 bands,
// 10 Hz to 24 kHz, +-36 dB and Q in [0, 100].
func DefaultLimits() Limits {
	return Limits{
		MaxBands:     32,
		MinFrequency: 10,
		MaxFrequency: 24000,
		MinGain:      -36,
		MaxGain:      36,
		MinQ:         0,
		MaxQ:         100,
	}
}

// Option adjusts the limits used by Load.
type Option func(*Limits)

// WithMaxBands caps the number of loaded bands. Values < 1 are ignored.
func WithMaxBands(n int) Option {
	return func(l *Limits) {
		if n >= 1 {
			l.MaxBands = n
		}
	}
}

// WithFrequencyRange sets the accepted band frequency range in Hz.
func WithFrequencyRange(lo, hi float64) Option {
	return func(l *Limits) { l.MinFrequency, l.MaxFrequency = lo, hi }
}

// WithGainRange sets the accepted band gain range in dB.
func WithGainRange(lo, hi float64) Option {
	return func(l *Limits) { l.MinGain, l.MaxGain = lo, hi }
}

// WithQRange sets the accepted quality factor range.
func WithQRange(lo, hi float64) Option {
	return func(l *Limits) { l.MinQ, l.MaxQ = lo, hi }
}

// Load applies an imported preset to equalizer settings.
//
// Bands beyond MaxBands are dropped. A band whose frequency is out of range
// is switched off and its frequency reset to the default; an out-of-range
// gain or Q is reset to its default while the band stays active. The preset
// preamp becomes the input gain.
func Load(r preset.Result, opts ...Option) Settings {
	lim := DefaultLimits()
	for _, o := range opts {
		o(&lim)
	}

	n := min(len(r.Bands), lim.MaxBands)

	s := Settings{
		InputGain: r.Preamp,
		Bands:     make([]Band, 0, n),
	}

	for _, pb := range r.Bands[:n] {
		b := Band{
			Kind:      KindOf(pb.Type),
			Frequency: pb.Frequency,
			Gain:      pb.Gain,
			Q:         pb.Quality,
		}

		if !core.InRange(b.Frequency, lim.MinFrequency, lim.MaxFrequency) {
			b.Kind = KindOff
			b.Frequency = preset.DefaultFrequency
		}
		if !core.InRange(b.Gain, lim.MinGain, lim.MaxGain) {
			b.Gain = preset.DefaultGain
		}
		if !core.InRange(b.Q, lim.MinQ, lim.MaxQ) {
			b.Q = preset.DefaultQuality
		}

		s.Bands = append(s.Bands, b)
	}

	return s
}

// Sorted returns a copy of s with the bands ordered by ascending frequency.
// Bands with equal frequency keep their relative order.
func (s Settings) Sorted() Settings {
	out := Settings{
		InputGain: s.InputGain,
		Bands:     append([]Band(nil), s.Bands...),
	}
	sort.SliceStable(out.Bands, func(i, j int) bool {
		return out.Bands[i].Frequency < out.Bands[j].Frequency
	})
	return out
}

// Active returns the number of bands that are not switched off.
func (s Settings) Active() int {
	n := 0
	for _, b := range s.Bands {
		if b.Kind != KindOff {
			n++
		}
	}
	return n
}

// Preset converts the settings back into an importable preset, mapping each
// kind to the APO filter type used on export.
func (s Settings) Preset() preset.Result {
	res := preset.Result{
		Preamp: s.InputGain,
		Bands:  make([]preset.Band, 0, len(s.Bands)),
	}
	for _, b := range s.Bands {
		res.Bands = append(res.Bands, preset.Band{
			Type:      b.Kind.APO(),
			Frequency: b.Frequency,
			Gain:      b.Gain,
			Quality:   b.Q,
		})
	}
	return res
}
