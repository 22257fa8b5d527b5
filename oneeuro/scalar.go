package oneeuro

import (
	"math"

	"github.com/cwbudde/algo-oneeuro/core"
)

// scalarDomain is the additive float64 domain: linear difference, linear
// interpolation for value and rate, absolute-value magnitude.
type scalarDomain struct{}

func (scalarDomain) Difference(current, previous float64, dt float64) float64 {
	return (current - previous) / dt
}

func (scalarDomain) Blend(from, to float64, w float64) float64 {
	return core.Lerp(from, to, w)
}

func (scalarDomain) BlendRate(from, to float64, w float64) float64 {
	return core.Lerp(from, to, w)
}

func (scalarDomain) Magnitude(rate float64) float64 {
	return math.Abs(rate)
}

func (scalarDomain) Zero() float64 { return 0 }

func (scalarDomain) ZeroRate() float64 { return 0 }

// NewScalar returns a one-euro filter over float64 samples.
func NewScalar(opts ...Option) *Filter[float64] {
	return New[float64](scalarDomain{}, opts...)
}
