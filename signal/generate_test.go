package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-oneeuro/core"
)

func TestSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(100))

	out, err := g.Sine(25, 2, 8)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	// 25 Hz at 100 samples/s: 0, 2, 0, -2, ...
	want := []float64{0, 2, 0, -2, 0, 2, 0, -2}
	for i := range want {
		if !core.NearlyEqual(out[i], want[i], 1e-9) {
			t.Fatalf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestSineValidation(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a := NewGeneratorWithOptions(nil, WithSeed(42))
	b := NewGeneratorWithOptions(nil, WithSeed(42))

	na, err := a.WhiteNoise(0.5, 256)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	nb, err := b.WhiteNoise(0.5, 256)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range na {
		if na[i] != nb[i] {
			t.Fatalf("sample %d differs across equal seeds", i)
		}

		if math.Abs(na[i]) > 0.5 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, na[i])
		}
	}
}

func TestMotionBoundedAndSpeedLimited(t *testing.T) {
	g := NewGeneratorWithOptions(
		[]core.StreamOption{core.WithSampleRate(120)},
		WithSeed(7),
	)

	const maxSpeed = 3.0

	out, err := g.Motion(maxSpeed, 1200)
	if err != nil {
		t.Fatalf("Motion() error = %v", err)
	}

	dt := 1.0 / 120
	for i := range out {
		if math.Abs(out[i]) > 1 {
			t.Fatalf("sample %d = %v outside [-1, 1]", i, out[i])
		}

		if i > 0 {
			speed := math.Abs(out[i]-out[i-1]) / dt
			if speed > maxSpeed+1e-9 {
				t.Fatalf("sample %d: speed %v exceeds limit %v", i, speed, maxSpeed)
			}
		}
	}

	// The trajectory actually moves.
	moved := false
	for i := 1; i < len(out); i++ {
		if out[i] != out[0] {
			moved = true
			break
		}
	}

	if !moved {
		t.Fatal("motion trajectory never moved")
	}
}

func TestTimestampsMonotoneWithJitter(t *testing.T) {
	g := NewGeneratorWithOptions(
		[]core.StreamOption{core.WithSampleRate(90)},
		WithSeed(3),
	)

	ts, err := g.Timestamps(0.4, 900)
	if err != nil {
		t.Fatalf("Timestamps() error = %v", err)
	}

	nominal := 1.0 / 90

	prev := 0.0
	for i, now := range ts {
		interval := now - prev
		if interval <= 0 {
			t.Fatalf("sample %d: non-increasing timestamp", i)
		}

		if interval < nominal*0.6-1e-12 || interval > nominal*1.4+1e-12 {
			t.Fatalf("sample %d: interval %v outside jitter range", i, interval)
		}

		prev = now
	}

	if _, err := g.Timestamps(1, 10); err == nil {
		t.Fatal("expected error for jitter fraction 1")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{1, -4, 2}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := []float64{0.25, -1, 0.5}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}
