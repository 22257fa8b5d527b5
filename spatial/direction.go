package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-oneeuro/core"
	"github.com/cwbudde/algo-oneeuro/oneeuro"
)

// slerpEpsilon bounds the arc angle below which Slerp degrades to linear
// interpolation: the great circle is numerically ill-defined for nearly
// parallel or antiparallel vectors.
const slerpEpsilon = 1e-8

// Slerp interpolates from one vector toward another along the shortest
// great-circle arc at weight w in [0,1]. Inputs need not be unit length;
// zero-length endpoints fall back to linear interpolation.
func Slerp(from, to r3.Vec, w float64) r3.Vec {
	normFrom := r3.Norm(from)

	normTo := r3.Norm(to)
	if normFrom == 0 || normTo == 0 {
		return lerp3(from, to, w)
	}

	cos := core.Clamp(r3.Dot(from, to)/(normFrom*normTo), -1, 1)

	theta := math.Acos(cos)
	if theta < slerpEpsilon || math.Pi-theta < slerpEpsilon {
		return lerp3(from, to, w)
	}

	sin := math.Sin(theta)

	return r3.Add(
		r3.Scale(math.Sin((1-w)*theta)/sin, from),
		r3.Scale(math.Sin(w*theta)/sin, to),
	)
}

func lerp3(from, to r3.Vec, w float64) r3.Vec {
	return r3.Add(from, r3.Scale(w, r3.Sub(to, from)))
}

// directionDomain filters unit direction vectors: componentwise rates,
// spherical value interpolation.
type directionDomain struct{}

func (directionDomain) Difference(current, previous r3.Vec, dt float64) r3.Vec {
	return r3.Scale(1/dt, r3.Sub(current, previous))
}

func (directionDomain) Blend(from, to r3.Vec, w float64) r3.Vec {
	return Slerp(from, to, w)
}

func (directionDomain) BlendRate(from, to r3.Vec, w float64) r3.Vec {
	return lerp3(from, to, w)
}

func (directionDomain) Magnitude(rate r3.Vec) float64 {
	return r3.Norm(rate)
}

func (directionDomain) Zero() r3.Vec { return r3.Vec{} }

func (directionDomain) ZeroRate() r3.Vec { return r3.Vec{} }

// NewDirection returns a one-euro filter over unit direction vectors.
// Seed it with [oneeuro.Filter.ResetTo] before use: the zero seed carries
// no direction, so the first steps interpolate linearly until the output
// leaves the origin.
func NewDirection(opts ...oneeuro.Option) *oneeuro.Filter[r3.Vec] {
	return oneeuro.New[r3.Vec](directionDomain{}, opts...)
}
