package mathutil

import (
	"math"
	"testing"
)

func TestIntHelpers(t *testing.T) {
	if IntMin(3, -2) != -2 || IntMax(3, -2) != 3 {
		t.Error("IntMin/IntMax returned the wrong operand")
	}
	if IntAbs(-7) != 7 {
		t.Errorf("IntAbs(-7) = %d", IntAbs(-7))
	}
	if IntClamp(12, 0, 10) != 10 || IntClamp(-1, 0, 10) != 0 || IntClamp(5, 0, 10) != 5 {
		t.Error("IntClamp did not clamp")
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%f) = %f out of range", tt.in, got)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		name       string
		a, b, want float64
	}{
		{"same", 1, 1, 0},
		{"across zero", 0.1, 2*math.Pi - 0.1, 0.2},
		{"negative across zero", 2*math.Pi - 0.1, 0.1, -0.2},
		{"opposite is positive pi", math.Pi, 0, math.Pi},
		{"minus pi maps to pi", 0, math.Pi, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDiff(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleDiff(%f, %f) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSafeDenominator(t *testing.T) {
	if SafeDenominator(0) != Epsilon || SafeDenominator(-3) != Epsilon {
		t.Error("expected small denominators to clamp to Epsilon")
	}
	if SafeDenominator(5) != 5 {
		t.Error("expected large denominators to pass through")
	}
}
