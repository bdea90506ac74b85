package core

import (
	"math"
	"testing"
)

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if math.Abs(db+6) > 1e-10 {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		value, min, max float64
		want            bool
	}{
		{10, 10, 20, true},
		{20, 10, 20, true},
		{9.99, 10, 20, false},
		{15, 20, 10, true},
		{math.NaN(), 0, 1, false},
		{math.Inf(1), 0, 1, false},
	}

	for _, tt := range tests {
		if got := InRange(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("InRange(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}
