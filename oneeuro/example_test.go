package oneeuro_test

import (
	"fmt"

	"github.com/cwbudde/algo-oneeuro/oneeuro"
)

func ExampleNewScalar() {
	f := oneeuro.NewScalar() // beta 0, minCutoff 1 Hz

	f.ResetTo(0)

	// The sample at the seed time falls under the minimum-delta guard.
	samples := []struct {
		t, v float64
	}{
		{0, 0},
		{1, 10},
		{2, 10},
	}

	for i, s := range samples {
		fmt.Printf("y[%d] = %.4f\n", i, f.Step(s.t, s.v))
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 8.6270
	// y[2] = 9.8115
}

func ExampleFilter_SetParams() {
	f := oneeuro.NewScalar(oneeuro.WithMinCutoff(0.5))

	// Retune at runtime; state is untouched.
	f.SetParams(1.2, 0.5)

	fmt.Printf("beta = %.1f, minCutoff = %.1f\n", f.Beta(), f.MinCutoff())
	// Output:
	// beta = 1.2, minCutoff = 0.5
}
