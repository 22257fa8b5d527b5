package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		eps      float64
		expected bool
	}{
		{name: "exact", a: 1, b: 1, eps: 1e-9, expected: true},
		{name: "within", a: 1, b: 1 + 1e-10, eps: 1e-9, expected: true},
		{name: "outside", a: 1, b: 1.1, eps: 1e-9, expected: false},
		{name: "both zero", a: 0, b: 0, eps: 1e-9, expected: true},
		{name: "default eps", a: 1, b: 1 + 1e-13, eps: 0, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearlyEqual(tt.a, tt.b, tt.eps)
			if got != tt.expected {
				t.Fatalf("NearlyEqual() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Fatal("IsFinite(1.5) = false")
	}

	if IsFinite(math.NaN()) {
		t.Fatal("IsFinite(NaN) = true")
	}

	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite(Inf) = true")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0); got != 2 {
		t.Fatalf("Lerp(w=0) = %v, want 2", got)
	}

	if got := Lerp(2, 6, 1); got != 6 {
		t.Fatalf("Lerp(w=1) = %v, want 6", got)
	}

	if got := Lerp(2, 6, 0.5); got != 4 {
		t.Fatalf("Lerp(w=0.5) = %v, want 4", got)
	}
}
