package preset

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Default band parameters applied before any clause of a filter line is read.
const (
	DefaultFrequency = 1000.0
	DefaultGain      = 0.0
	DefaultQuality   = 1 / math.Sqrt2
)

// Kind enumerates the filter types known to the importer.
type Kind int

const (
	KindGeneric Kind = iota // graphic EQ control point, no explicit type
	KindOff
	KindPK
	KindModal
	KindPEQ
	KindLP
	KindLPQ
	KindHP
	KindHPQ
	KindBP
	KindLS
	KindLSC
	KindLS6dB
	KindLS12dB
	KindHS
	KindHSC
	KindHS6dB
	KindHS12dB
	KindNO
	KindAP
	KindOther // unrecognized token, kept verbatim in FilterType.Other

	kindCount // sentinel
)

var kindTokens = [kindCount]string{
	"", "OFF", "PK", "MODAL", "PEQ", "LP", "LPQ", "HP", "HPQ", "BP",
	"LS", "LSC", "LS 6DB", "LS 12DB", "HS", "HSC", "HS 6DB", "HS 12DB",
	"NO", "AP", "",
}

// String returns the normalized APO token of the kind. KindGeneric and
// KindOther have no token of their own.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindTokens[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// FilterType is the type tag of a band: one of the known kinds, or
// KindOther together with the literal token read from the preset.
//
// The zero value is the generic type used for graphic EQ bands.
type FilterType struct {
	Kind  Kind
	Other string
}

var reWhitespace = regexp.MustCompile(`\s+`)

// ParseFilterType normalizes token (whitespace collapsed to single spaces,
// upper case) and resolves it to a known kind. Unknown tokens are returned as
// KindOther with the normalized token preserved.
func ParseFilterType(token string) FilterType {
	norm := strings.ToUpper(reWhitespace.ReplaceAllString(strings.TrimSpace(token), " "))
	if norm == "" {
		return FilterType{}
	}

	for k := KindOff; k < KindOther; k++ {
		if kindTokens[k] == norm {
			return FilterType{Kind: k}
		}
	}

	return FilterType{Kind: KindOther, Other: norm}
}

// String returns the normalized token, or "" for the generic type.
func (t FilterType) String() string {
	if t.Kind == KindOther {
		return t.Other
	}
	return t.Kind.String()
}

// IsGeneric reports whether t carries no explicit filter type.
func (t FilterType) IsGeneric() bool { return t.Kind == KindGeneric }

// MarshalText encodes the type as its token.
func (t FilterType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a token produced by MarshalText.
func (t *FilterType) UnmarshalText(text []byte) error {
	*t = ParseFilterType(string(text))
	return nil
}

// Band is one imported filter stage.
type Band struct {
	Type      FilterType `json:"type"`
	Frequency float64    `json:"frequency"`
	Gain      float64    `json:"gain"`
	Quality   float64    `json:"quality"`
}

// DefaultBand returns a generic band carrying the default parameters.
func DefaultBand() Band {
	return Band{
		Frequency: DefaultFrequency,
		Gain:      DefaultGain,
		Quality:   DefaultQuality,
	}
}

// Result is the outcome of one import call. Bands keep the order in which
// their lines appear in the source text.
type Result struct {
	Bands  []Band  `json:"bands"`
	Preamp float64 `json:"preamp"`
}

func newResult() Result {
	return Result{Bands: []Band{}}
}

// Empty reports whether the result holds no bands.
func (r Result) Empty() bool { return len(r.Bands) == 0 }
