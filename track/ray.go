package track

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-oneeuro/oneeuro"
	"github.com/cwbudde/algo-oneeuro/spatial"
)

// Ray is a pointing sample: an origin and a unit direction.
type Ray struct {
	Origin    r3.Vec
	Direction r3.Vec
}

// RayFilter smooths a ray stream with two independent one-euro filters
// (linear for the origin, spherical for the direction) behind one shared
// time gate.
type RayFilter struct {
	origin    *oneeuro.Filter[r3.Vec]
	direction *oneeuro.Filter[r3.Vec]

	prevTime float64
	value    Ray
}

// NewRay constructs a ray filter seeded at the zero ray. Seed a real
// direction with ResetTo before use; the zero direction blends linearly
// until the output leaves the origin.
func NewRay(opts ...oneeuro.Option) *RayFilter {
	f := &RayFilter{
		origin:    spatial.NewVec3(opts...),
		direction: spatial.NewDirection(opts...),
	}
	f.Reset()

	return f
}

// Step filters one ray sample taken at the given absolute timestamp.
// Sub-threshold (or backward) time deltas are a shared no-op.
func (f *RayFilter) Step(time float64, value Ray) Ray {
	if time-f.prevTime < oneeuro.MinTimeDelta {
		return f.value
	}

	f.value = Ray{
		Origin:    f.origin.Step(time, value.Origin),
		Direction: f.direction.Step(time, value.Direction),
	}
	f.prevTime = time

	return f.value
}

// StepDelta filters one ray sample given the elapsed time since the
// previous step. Sub-threshold deltas accumulate on the shared clock;
// negative deltas are ignored.
func (f *RayFilter) StepDelta(value Ray, deltaTime float64) Ray {
	if deltaTime < oneeuro.MinTimeDelta {
		if deltaTime > 0 {
			f.prevTime += deltaTime
		}

		return f.value
	}

	return f.Step(f.prevTime+deltaTime, value)
}

// Reset seeds the filter at the zero ray.
func (f *RayFilter) Reset() {
	f.ResetTo(Ray{})
}

// ResetTo seeds the filter at an explicit ray, discarding carried
// velocities.
func (f *RayFilter) ResetTo(seed Ray) {
	f.origin.ResetTo(seed.Origin)
	f.direction.ResetTo(seed.Direction)
	f.prevTime = 0
	f.value = seed
}

// SetParams replaces the tuning parameters on both sub-filters.
func (f *RayFilter) SetParams(beta, minCutoff float64) {
	f.origin.SetParams(beta, minCutoff)
	f.direction.SetParams(beta, minCutoff)
}

// Configure replaces the parameters wholesale on both sub-filters.
func (f *RayFilter) Configure(params oneeuro.Params) {
	f.origin.Configure(params)
	f.direction.Configure(params)
}

// Params returns the shared tuning parameters.
func (f *RayFilter) Params() oneeuro.Params { return f.origin.Params() }

// Beta returns the shared speed coefficient.
func (f *RayFilter) Beta() float64 { return f.origin.Beta() }

// MinCutoff returns the shared baseline cutoff frequency.
func (f *RayFilter) MinCutoff() float64 { return f.origin.MinCutoff() }

// Value returns the most recent filtered ray.
func (f *RayFilter) Value() Ray { return f.value }

// Time returns the timestamp of the most recent processed step.
func (f *RayFilter) Time() float64 { return f.prevTime }
