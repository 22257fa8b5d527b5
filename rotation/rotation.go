package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-oneeuro/core"
	"github.com/cwbudde/algo-oneeuro/oneeuro"
)

// slerpEpsilon bounds the arc below which Slerp degrades to Nlerp.
const slerpEpsilon = 1e-8

// Identity returns the identity rotation.
func Identity() quat.Number {
	return quat.Number{Real: 1}
}

// FromAxisAngle returns the unit quaternion rotating by angle (radians)
// about the given axis. A zero axis yields the identity rotation.
func FromAxisAngle(axis r3.Vec, angle float64) quat.Number {
	n := r3.Norm(axis)
	if n == 0 {
		return Identity()
	}

	s := math.Sin(angle/2) / n

	return quat.Number{
		Real: math.Cos(angle / 2),
		Imag: s * axis.X,
		Jmag: s * axis.Y,
		Kmag: s * axis.Z,
	}
}

// Angle returns the rotation angle of q in radians, in [0, 2*pi].
func Angle(q quat.Number) float64 {
	return 2 * math.Acos(core.Clamp(q.Real, -1, 1))
}

// Normalize rescales q to unit norm. The zero quaternion normalizes to
// the identity rotation.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return Identity()
	}

	return quat.Scale(1/n, q)
}

func dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Slerp interpolates from one rotation toward another along the shortest
// arc at weight w in [0,1]. The result has unit norm.
func Slerp(from, to quat.Number, w float64) quat.Number {
	cos := dot(from, to)
	if cos < 0 {
		to = quat.Scale(-1, to)
		cos = -cos
	}

	// Nearly parallel: the linear blend is indistinguishable and avoids
	// the vanishing-sine division.
	if cos > 1-slerpEpsilon {
		return Normalize(quat.Add(quat.Scale(1-w, from), quat.Scale(w, to)))
	}

	theta := math.Acos(core.Clamp(cos, -1, 1))
	sin := math.Sin(theta)

	return Normalize(quat.Add(
		quat.Scale(math.Sin((1-w)*theta)/sin, from),
		quat.Scale(math.Sin(w*theta)/sin, to),
	))
}

// Nlerp interpolates with a shortest-arc normalized linear combination.
// Cheaper than Slerp and numerically stable for small arcs; the arc speed
// is not constant over w.
func Nlerp(from, to quat.Number, w float64) quat.Number {
	if dot(from, to) < 0 {
		to = quat.Scale(-1, to)
	}

	return Normalize(quat.Add(quat.Scale(1-w, from), quat.Scale(w, to)))
}

// rotationDomain filters unit quaternions.
type rotationDomain struct{}

// Difference expresses the rotation rate as the delta rotation from
// previous to current with its vector part scaled by 1/dt and its scalar
// part re-biased toward identity, renormalized. Valid while inter-sample
// rotations stay small.
func (rotationDomain) Difference(current, previous quat.Number, dt float64) quat.Number {
	delta := quat.Mul(current, quat.Inv(previous))
	if delta.Real < 0 {
		delta = quat.Scale(-1, delta)
	}

	rate := 1 / dt

	d := quat.Scale(rate, delta)
	d.Real += 1 - rate

	return Normalize(d)
}

func (rotationDomain) Blend(from, to quat.Number, w float64) quat.Number {
	return Slerp(from, to, w)
}

func (rotationDomain) BlendRate(from, to quat.Number, w float64) quat.Number {
	return Nlerp(from, to, w)
}

func (rotationDomain) Magnitude(rate quat.Number) float64 {
	return Angle(rate)
}

func (rotationDomain) Zero() quat.Number { return Identity() }

func (rotationDomain) ZeroRate() quat.Number { return Identity() }

// New returns a one-euro filter over unit quaternions, seeded at the
// identity rotation.
func New(opts ...oneeuro.Option) *oneeuro.Filter[quat.Number] {
	return oneeuro.New[quat.Number](rotationDomain{}, opts...)
}
