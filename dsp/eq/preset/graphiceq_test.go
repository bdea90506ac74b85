package preset

import (
	"reflect"
	"testing"
)

func graphicPairs(res Result) (freqs, gains []float64) {
	for _, b := range res.Bands {
		freqs = append(freqs, b.Frequency)
		gains = append(gains, b.Gain)
	}
	return freqs, gains
}

func TestImportGraphicEQ(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantFreqs []float64
		wantGains []float64
	}{
		{
			name:      "basic",
			text:      "GraphicEQ: 20 0; 1000 -3.5; 20000 0",
			wantFreqs: []float64{20, 1000, 20000},
			wantGains: []float64{0, -3.5, 0},
		},
		{
			name:      "only first line is read",
			text:      "GraphicEQ: 20 0; 1000 -3.5; 20000 0\nGraphicEQ: 50 1; 60 2",
			wantFreqs: []float64{20, 1000, 20000},
			wantGains: []float64{0, -3.5, 0},
		},
		{
			name:      "malformed line is skipped",
			text:      "GraphicEQ: twenty 0\ngraphiceq:100 +1.25",
			wantFreqs: []float64{100},
			wantGains: []float64{1.25},
		},
		{
			name:      "thousands separator and trailing semicolon",
			text:      "  GraphicEQ: 1,000 +2.5; 10,000 -1;  \r\n",
			wantFreqs: []float64{1000, 10000},
			wantGains: []float64{2.5, -1},
		},
		{
			name:      "preceded by comments and other lines",
			text:      "# GraphicEQ: 1 1\nPreamp: -6 dB\nGraphicEQ: 25 -1;40 -2",
			wantFreqs: []float64{25, 40},
			wantGains: []float64{-1, -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ImportGraphicEQ(tt.text)
			freqs, gains := graphicPairs(res)
			if !reflect.DeepEqual(freqs, tt.wantFreqs) {
				t.Fatalf("frequencies: got %v, want %v", freqs, tt.wantFreqs)
			}
			if !reflect.DeepEqual(gains, tt.wantGains) {
				t.Fatalf("gains: got %v, want %v", gains, tt.wantGains)
			}
			for i, b := range res.Bands {
				if !b.Type.IsGeneric() {
					t.Fatalf("band %d: type %q, want generic", i, b.Type)
				}
				if b.Quality != DefaultQuality {
					t.Fatalf("band %d: quality %v, want default", i, b.Quality)
				}
			}
			if res.Preamp != 0 {
				t.Fatalf("preamp: got %v, want 0", res.Preamp)
			}
		})
	}
}

func TestImportGraphicEQ_NoMatch(t *testing.T) {
	for _, text := range []string{
		"",
		"# GraphicEQ: 20 0; 1000 -3.5",
		"Filter 1: ON PK Fc 100 Hz Gain 1 dB Q 1",
		"GraphicEQ:",
		"GraphicEQ: 20 0; 1000",
	} {
		res := ImportGraphicEQ(text)
		if !res.Empty() {
			t.Errorf("%q: got %d bands, want 0", text, len(res.Bands))
		}
	}
}

func TestImportGraphicEQ_Idempotent(t *testing.T) {
	text := "GraphicEQ: 20 -1; 200 2.5; 2000 0"
	if a, b := ImportGraphicEQ(text), ImportGraphicEQ(text); !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ:\n%+v\n%+v", a, b)
	}
}
