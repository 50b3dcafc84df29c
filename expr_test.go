package sunflower

import (
	"math"
	"testing"
)

func TestEvalRotation(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1/3+1/5", 1.0/3 + 1.0/5},
		{"0.618", 0.618},
		{"2", 2},
		{" phi - 1 ", Phi - 1},
		{"pi * 2", math.Pi * 2},
		{"e", math.E},
		{"(1 + 2) * 0.1", 0.3},
	}
	for _, tt := range tests {
		got, err := EvalRotation(tt.in)
		if err != nil {
			t.Errorf("EvalRotation(%q) error: %v", tt.in, err)
			continue
		}
		if !approxEqual(got, tt.want, 1e-12) {
			t.Errorf("EvalRotation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEvalRotationErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "1 +", "foo", `"abc"`, "true"} {
		if v, err := EvalRotation(in); err == nil {
			t.Errorf("EvalRotation(%q) = %v, want error", in, v)
		}
	}
}
