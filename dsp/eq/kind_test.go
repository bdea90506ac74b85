package eq

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/eq/preset"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		token string
		want  Kind
	}{
		{"OFF", KindOff},
		{"PK", KindBell},
		{"MODAL", KindBell},
		{"PEQ", KindBell},
		{"LP", KindLoPass},
		{"LPQ", KindLoPass},
		{"HP", KindHiPass},
		{"HPQ", KindHiPass},
		{"BP", KindBandpass},
		{"LS", KindLoShelf},
		{"LSC", KindLoShelf},
		{"LS 6DB", KindLoShelf},
		{"LS 12DB", KindLoShelf},
		{"HS", KindHiShelf},
		{"HSC", KindHiShelf},
		{"HS 6DB", KindHiShelf},
		{"HS 12DB", KindHiShelf},
		{"NO", KindNotch},
		{"AP", KindAllpass},
		{"XYZ", KindOff},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := KindOf(preset.ParseFilterType(tt.token)); got != tt.want {
				t.Fatalf("KindOf(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}

	if got := KindOf(preset.FilterType{Kind: preset.KindGeneric}); got != KindBell {
		t.Fatalf("KindOf(generic) = %v, want Bell", got)
	}
}

func TestKind_APORoundTrip(t *testing.T) {
	for k := KindOff; k < kindCount; k++ {
		if got := KindOf(k.APO()); got != k {
			t.Errorf("KindOf(%v.APO()) = %v", k, got)
		}
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" lo-shelf ")
	if err != nil || k != KindLoShelf {
		t.Fatalf("ParseKind = %v, %v", k, err)
	}

	if _, err := ParseKind("shelf"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestKind_Text(t *testing.T) {
	text, err := KindHiPass.MarshalText()
	if err != nil || string(text) != "Hi-pass" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}

	var k Kind
	if err := k.UnmarshalText([]byte("Notch")); err != nil || k != KindNotch {
		t.Fatalf("UnmarshalText = %v, %v", k, err)
	}

	if _, err := Kind(42).MarshalText(); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	if Kind(42).String() != "Kind(42)" {
		t.Fatalf("String = %q", Kind(42).String())
	}
}
