package eq

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/eq/preset"
)

// Kind is the filter shape of one equalizer band.
type Kind int

const (
	KindOff Kind = iota
	KindBell
	KindLoPass
	KindHiPass
	KindLoShelf
	KindHiShelf
	KindNotch
	KindAllpass
	KindBandpass

	kindCount // sentinel
)

var kindNames = [kindCount]string{
	"Off", "Bell", "Lo-pass", "Hi-pass", "Lo-shelf", "Hi-shelf",
	"Notch", "Allpass", "Bandpass",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// ParseKind resolves a display name case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for k := KindOff; k < kindCount; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return KindOff, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText encodes the kind as its display name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a display name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindOf maps an imported APO filter type to the equalizer kind that
// realizes it. Graphic EQ control points become bells. Types the equalizer
// cannot realize map to KindOff.
func KindOf(t preset.FilterType) Kind {
	switch t.Kind {
	case preset.KindGeneric, preset.KindPK, preset.KindModal, preset.KindPEQ:
		return KindBell
	case preset.KindLP, preset.KindLPQ:
		return KindLoPass
	case preset.KindHP, preset.KindHPQ:
		return KindHiPass
	case preset.KindBP:
		return KindBandpass
	case preset.KindLS, preset.KindLSC, preset.KindLS6dB, preset.KindLS12dB:
		return KindLoShelf
	case preset.KindHS, preset.KindHSC, preset.KindHS6dB, preset.KindHS12dB:
		return KindHiShelf
	case preset.KindNO:
		return KindNotch
	case preset.KindAP:
		return KindAllpass
	default:
		return KindOff
	}
}

// APO returns the APO filter type written when exporting a band of kind k.
func (k Kind) APO() preset.FilterType {
	switch k {
	case KindBell:
		return preset.FilterType{Kind: preset.KindPK}
	case KindLoPass:
		return preset.FilterType{Kind: preset.KindLPQ}
	case KindHiPass:
		return preset.FilterType{Kind: preset.KindHPQ}
	case KindLoShelf:
		return preset.FilterType{Kind: preset.KindLSC}
	case KindHiShelf:
		return preset.FilterType{Kind: preset.KindHSC}
	case KindNotch:
		return preset.FilterType{Kind: preset.KindNO}
	case KindAllpass:
		return preset.FilterType{Kind: preset.KindAP}
	case KindBandpass:
		return preset.FilterType{Kind: preset.KindBP}
	default:
		return preset.FilterType{Kind: preset.KindOff}
	}
}
