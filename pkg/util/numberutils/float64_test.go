package numberutils

import (
	"math"
	"testing"
)

func TestMinMaxFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		min  float64
		max  float64
	}{
		{name: "single", in: []float64{58}, min: 58, max: 58},
		{name: "ascending", in: []float64{58, 60, 62}, min: 58, max: 62},
		{name: "unordered with negatives", in: []float64{3.5, -1.25, 10, 0}, min: -1.25, max: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinFloat64(tt.in...); got != tt.min {
				t.Errorf("MinFloat64(%v) = %v, want %v", tt.in, got, tt.min)
			}
			if got := MaxFloat64(tt.in...); got != tt.max {
				t.Errorf("MaxFloat64(%v) = %v, want %v", tt.in, got, tt.max)
			}
		})
	}
}

func TestMinMaxFloat64_Empty(t *testing.T) {
	if got := MinFloat64(); !math.IsInf(got, 1) {
		t.Errorf("MinFloat64() = %v, want +Inf", got)
	}
	if got := MaxFloat64(); !math.IsInf(got, -1) {
		t.Errorf("MaxFloat64() = %v, want -Inf", got)
	}
}

func TestAverageFloat64(t *testing.T) {
	if got := AverageFloat64(58, 60, 62); got != 60 {
		t.Errorf("AverageFloat64 = %v, want 60", got)
	}
	if got := AverageFloat64(1, 2); got != 1.5 {
		t.Errorf("AverageFloat64 = %v, want 1.5", got)
	}
	if got := AverageFloat64(); !math.IsNaN(got) {
		t.Errorf("AverageFloat64() = %v, want NaN", got)
	}
}
