package spatial

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-oneeuro/oneeuro"
)

// vec2Domain is the additive planar-vector domain.
type vec2Domain struct{}

func (vec2Domain) Difference(current, previous r2.Vec, dt float64) r2.Vec {
	return r2.Scale(1/dt, r2.Sub(current, previous))
}

func (vec2Domain) Blend(from, to r2.Vec, w float64) r2.Vec {
	return r2.Add(from, r2.Scale(w, r2.Sub(to, from)))
}

func (d vec2Domain) BlendRate(from, to r2.Vec, w float64) r2.Vec {
	return d.Blend(from, to, w)
}

func (vec2Domain) Magnitude(rate r2.Vec) float64 {
	return r2.Norm(rate)
}

func (vec2Domain) Zero() r2.Vec { return r2.Vec{} }

func (vec2Domain) ZeroRate() r2.Vec { return r2.Vec{} }

// vec3Domain is the additive spatial-vector domain.
type vec3Domain struct{}

func (vec3Domain) Difference(current, previous r3.Vec, dt float64) r3.Vec {
	return r3.Scale(1/dt, r3.Sub(current, previous))
}

func (vec3Domain) Blend(from, to r3.Vec, w float64) r3.Vec {
	return r3.Add(from, r3.Scale(w, r3.Sub(to, from)))
}

func (d vec3Domain) BlendRate(from, to r3.Vec, w float64) r3.Vec {
	return d.Blend(from, to, w)
}

func (vec3Domain) Magnitude(rate r3.Vec) float64 {
	return r3.Norm(rate)
}

func (vec3Domain) Zero() r3.Vec { return r3.Vec{} }

func (vec3Domain) ZeroRate() r3.Vec { return r3.Vec{} }

// NewVec2 returns a one-euro filter over planar vectors.
func NewVec2(opts ...oneeuro.Option) *oneeuro.Filter[r2.Vec] {
	return oneeuro.New[r2.Vec](vec2Domain{}, opts...)
}

// NewVec3 returns a one-euro filter over spatial vectors.
func NewVec3(opts ...oneeuro.Option) *oneeuro.Filter[r3.Vec] {
	return oneeuro.New[r3.Vec](vec3Domain{}, opts...)
}
