package preset

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func requireBand(t *testing.T, got, want Band) {
	t.Helper()
	if got.Type != want.Type {
		t.Fatalf("type: got %q, want %q", got.Type, want.Type)
	}
	if !almostEqual(got.Frequency, want.Frequency, 1e-6) {
		t.Fatalf("frequency: got %v, want %v", got.Frequency, want.Frequency)
	}
	if !almostEqual(got.Gain, want.Gain, eps) {
		t.Fatalf("gain: got %v, want %v", got.Gain, want.Gain)
	}
	if !almostEqual(got.Quality, want.Quality, eps) {
		t.Fatalf("quality: got %v, want %v", got.Quality, want.Quality)
	}
}

func TestImportAPO_FilterTypes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Band
	}{
		{
			name: "peak",
			line: "Filter 1: ON PK Fc 1000 Hz Gain 3 dB Q 0.7",
			want: Band{Type: FilterType{Kind: KindPK}, Frequency: 1000, Gain: 3, Quality: 0.7},
		},
		{
			name: "peak without q",
			line: "Filter 1: ON PK Fc 250 Hz Gain -4.5 dB",
			want: Band{Type: FilterType{Kind: KindPK}, Frequency: 250, Gain: -4.5, Quality: DefaultQuality},
		},
		{
			name: "modal",
			line: "Filter 2: ON MODAL Fc 60 Hz Gain +2 dB Q 4",
			want: Band{Type: FilterType{Kind: KindModal}, Frequency: 60, Gain: 2, Quality: 4},
		},
		{
			name: "peq",
			line: "Filter 2: ON PEQ Fc 80 Hz Gain 1 dB Q 1.5",
			want: Band{Type: FilterType{Kind: KindPEQ}, Frequency: 80, Gain: 1, Quality: 1.5},
		},
		{
			name: "off",
			line: "Filter 3: OFF",
			want: Band{Type: FilterType{Kind: KindOff}, Frequency: 1000, Gain: 0, Quality: DefaultQuality},
		},
		{
			name: "off with clauses",
			line: "Filter 3: OFF PK Fc 500 Hz Gain -1 dB Q 2",
			want: Band{Type: FilterType{Kind: KindOff}, Frequency: 500, Gain: -1, Quality: 2},
		},
		{
			name: "lowpass ignores gain",
			line: "Filter 4: ON LP Fc 8000 Hz Gain 5 dB Q 0.5",
			want: Band{Type: FilterType{Kind: KindLP}, Frequency: 8000, Gain: 0, Quality: 0.5},
		},
		{
			name: "highpass with q",
			line: "Filter 4: ON HPQ Fc 30 Hz Q 0.8",
			want: Band{Type: FilterType{Kind: KindHPQ}, Frequency: 30, Gain: 0, Quality: 0.8},
		},
		{
			name: "bandpass default q",
			line: "Filter 4: ON BP Fc 440 Hz",
			want: Band{Type: FilterType{Kind: KindBP}, Frequency: 440, Gain: 0, Quality: DefaultQuality},
		},
		{
			name: "low shelf forces q",
			line: "Filter 5: ON LSC Fc 105 Hz Gain 6 dB Q 0.7",
			want: Band{Type: FilterType{Kind: KindLSC}, Frequency: 105, Gain: 6, Quality: 2.0 / 3.0},
		},
		{
			name: "high shelf forces q",
			line: "Filter 5: ON HS Fc 10000 Hz Gain -3 dB",
			want: Band{Type: FilterType{Kind: KindHS}, Frequency: 10000, Gain: -3, Quality: 2.0 / 3.0},
		},
		{
			name: "low shelf 6dB",
			line: "Filter 6: ON LS 6dB Fc 300 Hz Gain -2 dB",
			want: Band{Type: FilterType{Kind: KindLS6dB}, Frequency: 200, Gain: -2, Quality: math.Sqrt2 / 3},
		},
		{
			name: "low shelf 6dB forced q wins",
			line: "Filter 6: ON LS 6dB Fc 300 Hz Gain -2 dB Q 3",
			want: Band{Type: FilterType{Kind: KindLS6dB}, Frequency: 200, Gain: -2, Quality: math.Sqrt2 / 3},
		},
		{
			name: "low shelf 12dB",
			line: "Filter 7: ON LS 12dB Fc 100 Hz Gain 4 dB",
			want: Band{Type: FilterType{Kind: KindLS12dB}, Frequency: 150, Gain: 4, Quality: DefaultQuality},
		},
		{
			name: "high shelf 6dB",
			line: "Filter 8: ON HS 6dB Fc 1000 Hz Gain 1 dB",
			want: Band{Type: FilterType{Kind: KindHS6dB}, Frequency: 1000 * math.Sqrt2, Gain: 1, Quality: math.Sqrt2 / 3},
		},
		{
			name: "high shelf 12dB",
			line: "Filter 9: ON HS 12dB Fc 3000 Hz Gain 4 dB",
			want: Band{Type: FilterType{Kind: KindHS12dB}, Frequency: 3000 / math.Sqrt2, Gain: 4, Quality: DefaultQuality},
		},
		{
			name: "high shelf 12dB with q",
			line: "Filter 9: ON HS 12dB Fc 3000 Hz Gain 4 dB Q 0.9",
			want: Band{Type: FilterType{Kind: KindHS12dB}, Frequency: 3000 / math.Sqrt2, Gain: 4, Quality: 0.9},
		},
		{
			name: "notch",
			line: "Filter 10: ON NO Fc 50 Hz Gain 5 dB Q 5",
			want: Band{Type: FilterType{Kind: KindNO}, Frequency: 50, Gain: 0, Quality: 100.0 / 3.0},
		},
		{
			name: "allpass",
			line: "Filter 11: ON AP Fc 700 Hz Q 2",
			want: Band{Type: FilterType{Kind: KindAP}, Frequency: 700, Gain: 0, Quality: 0},
		},
		{
			name: "unknown type kept verbatim",
			line: "Filter 12: ON IIR Fc 100 Hz Gain 3 dB Q 2",
			want: Band{Type: FilterType{Kind: KindOther, Other: "IIR"}, Frequency: 100, Gain: 0, Quality: DefaultQuality},
		},
		{
			name: "case and whitespace",
			line: "filter 1 : on  ls   6db fc 300 hz gain -2 db",
			want: Band{Type: FilterType{Kind: KindLS6dB}, Frequency: 200, Gain: -2, Quality: math.Sqrt2 / 3},
		},
		{
			name: "thousands separator",
			line: "Filter 1: ON PK Fc 1,200.5 Hz Gain 1 dB Q 1",
			want: Band{Type: FilterType{Kind: KindPK}, Frequency: 1200.5, Gain: 1, Quality: 1},
		},
		{
			name: "no filter number",
			line: "Filter: ON PK Fc 20 Hz Gain 1 dB Q 1",
			want: Band{Type: FilterType{Kind: KindPK}, Frequency: 20, Gain: 1, Quality: 1},
		},
		{
			name: "carriage return",
			line: "Filter 1: ON PK Fc 100 Hz Gain 1 dB Q 1\r",
			want: Band{Type: FilterType{Kind: KindPK}, Frequency: 100, Gain: 1, Quality: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ImportAPO(tt.line)
			if len(res.Bands) != 1 {
				t.Fatalf("got %d bands, want 1", len(res.Bands))
			}
			requireBand(t, res.Bands[0], tt.want)
		})
	}
}

func TestImportAPO_UnparseableClauseFallsBack(t *testing.T) {
	huge := strings.Repeat("9", 400)

	res := ImportAPO("Filter 1: ON PK Fc " + huge + " Hz Gain 2 dB Q 1")
	if len(res.Bands) != 1 {
		t.Fatalf("got %d bands, want 1", len(res.Bands))
	}
	requireBand(t, res.Bands[0], Band{
		Type: FilterType{Kind: KindPK}, Frequency: DefaultFrequency, Gain: 2, Quality: 1,
	})
}

func TestImportAPO_DerivedFrequencyOverflow(t *testing.T) {
	huge := "15" + strings.Repeat("0", 307) // 1.5e308 parses, scaled it overflows

	for _, typ := range []string{"HS 6DB", "LS 12DB"} {
		res := ImportAPO("Filter 1: ON " + typ + " Fc " + huge + " Hz Gain 2 dB")
		if len(res.Bands) != 1 {
			t.Fatalf("%s: got %d bands, want 1", typ, len(res.Bands))
		}
		if got := res.Bands[0].Frequency; got != DefaultFrequency {
			t.Errorf("%s: frequency = %v, want %v", typ, got, DefaultFrequency)
		}
	}
}

func TestImportAPO_SkipsCommentsAndNoise(t *testing.T) {
	text := strings.Join([]string{
		"# Filter 1: ON PK Fc 100 Hz Gain 3 dB Q 1",
		"   \t# Preamp: 9 dB",
		"Device: all",
		"   ",
		"Filter 1: ON PK Fc 200 Hz Gain 1 dB Q 1",
		"Channel: L",
		"Filter 2: ON HPQ Fc 20 Hz Q 0.7",
		"",
	}, "\n")

	res := ImportAPO(text)
	if len(res.Bands) != 2 {
		t.Fatalf("got %d bands, want 2", len(res.Bands))
	}
	if res.Bands[0].Frequency != 200 || res.Bands[1].Frequency != 20 {
		t.Fatalf("unexpected band order: %+v", res.Bands)
	}
	if res.Preamp != 0 {
		t.Fatalf("preamp: got %v, want 0", res.Preamp)
	}
}

func TestImportAPO_PreampLastWins(t *testing.T) {
	text := "Preamp: -3.5dB\nFilter 1: ON PK Fc 100 Hz Gain 1 dB Q 1\nPreamp: 2dB\nDevice: all\n"

	res := ImportAPO(text)
	if res.Preamp != 2 {
		t.Fatalf("preamp: got %v, want 2", res.Preamp)
	}

	res = ImportAPO("preamp : -3.5 DB")
	if res.Preamp != -3.5 {
		t.Fatalf("preamp: got %v, want -3.5", res.Preamp)
	}
	if !res.Empty() {
		t.Fatalf("expected no bands, got %d", len(res.Bands))
	}
}

func TestImportAPO_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n", "# only a comment\n", "garbage"} {
		res := ImportAPO(text)
		if !res.Empty() || res.Preamp != 0 {
			t.Fatalf("%q: got %+v, want empty result", text, res)
		}
		if res.Bands == nil {
			t.Fatalf("%q: bands should be an empty slice, not nil", text)
		}
	}
}

func TestImportAPO_Idempotent(t *testing.T) {
	text := "Preamp: -6 dB\nFilter 1: ON LS 6dB Fc 300 Hz Gain -2 dB\nFilter 2: ON XYZ Fc 5 Hz\n"

	a := ImportAPO(text)
	b := ImportAPO(text)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ:\n%+v\n%+v", a, b)
	}
	if &a.Bands[0] == &b.Bands[0] {
		t.Fatal("results share band storage")
	}
}

func TestParseFilterType(t *testing.T) {
	tests := []struct {
		in   string
		want FilterType
	}{
		{"pk", FilterType{Kind: KindPK}},
		{" hs  12dB ", FilterType{Kind: KindHS12dB}},
		{"OFF", FilterType{Kind: KindOff}},
		{"", FilterType{}},
		{"lsq", FilterType{Kind: KindOther, Other: "LSQ"}},
	}

	for _, tt := range tests {
		if got := ParseFilterType(tt.in); got != tt.want {
			t.Errorf("ParseFilterType(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFilterType_Text(t *testing.T) {
	for _, typ := range []FilterType{{}, {Kind: KindLS6dB}, {Kind: KindOther, Other: "IIR"}} {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}

		var got FilterType
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("text %q decoded to %+v, want %+v", text, got, typ)
		}
	}
}
