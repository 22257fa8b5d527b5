package spatial

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-oneeuro/oneeuro"
)

func TestVec3MatchesPerAxisScalarAtZeroBeta(t *testing.T) {
	// With beta 0 the cutoff ignores the rate magnitude, so a vector
	// filter is exactly three independent scalar filters.
	vf := NewVec3(oneeuro.WithMinCutoff(1.5))

	var sf [3]*oneeuro.Filter[float64]
	for i := range sf {
		sf[i] = oneeuro.NewScalar(oneeuro.WithMinCutoff(1.5))
		sf[i].ResetTo(0)
	}

	vf.ResetTo(r3.Vec{})

	now := 0.0
	for i := range 200 {
		now += 1.0 / 90

		v := r3.Vec{
			X: math.Sin(2 * math.Pi * 0.3 * now),
			Y: math.Cos(2 * math.Pi * 0.7 * now),
			Z: 0.25 * float64(i%11),
		}

		got := vf.Step(now, v)
		want := r3.Vec{
			X: sf[0].Step(now, v.X),
			Y: sf[1].Step(now, v.Y),
			Z: sf[2].Step(now, v.Z),
		}

		if d := r3.Norm(r3.Sub(got, want)); d > 1e-12 {
			t.Fatalf("step %d: vector filter diverged from per-axis scalars by %v", i, d)
		}
	}
}

func TestVec3BetaCouplesAxes(t *testing.T) {
	// With beta > 0 the cutoff depends on the Euclidean rate norm, so
	// motion on one axis changes the smoothing applied to another.
	still := NewVec3(oneeuro.WithBeta(1))
	moving := NewVec3(oneeuro.WithBeta(1))

	still.ResetTo(r3.Vec{})
	moving.ResetTo(r3.Vec{})

	now := 0.0
	for i := range 50 {
		now += 1.0 / 60

		x := 0.5 + 0.01*float64(i%3) // same slightly noisy X for both
		still.Step(now, r3.Vec{X: x})
		moving.Step(now, r3.Vec{X: x, Y: 10 * now})
	}

	if math.Abs(still.Value().X-moving.Value().X) < 1e-12 {
		t.Fatal("expected Y motion to change X smoothing via the shared cutoff")
	}
}

func TestVec2Convergence(t *testing.T) {
	f := NewVec2(oneeuro.WithBeta(0.5))
	f.ResetTo(r2.Vec{})

	target := r2.Vec{X: 2, Y: -3}

	now := 0.0
	for range 400 {
		now += 0.05
		f.Step(now, target)
	}

	if d := r2.Norm(r2.Sub(f.Value(), target)); d > 1e-6 {
		t.Fatalf("did not converge: residual %v", d)
	}
}

func TestVec2BelowThresholdIsNoOp(t *testing.T) {
	f := NewVec2(oneeuro.WithBeta(1))
	f.ResetTo(r2.Vec{X: 1})

	prev := f.Step(0.5, r2.Vec{X: 2, Y: 2})

	got := f.Step(0.5+0.9e-5, r2.Vec{X: -50, Y: 50})
	if got != prev {
		t.Fatalf("sub-threshold step = %+v, want %+v", got, prev)
	}

	if f.Time() != 0.5 {
		t.Fatalf("sub-threshold step advanced time to %v", f.Time())
	}
}
