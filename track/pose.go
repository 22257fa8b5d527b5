package track

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-oneeuro/oneeuro"
	"github.com/cwbudde/algo-oneeuro/rotation"
	"github.com/cwbudde/algo-oneeuro/spatial"
)

// Pose is a rigid transform sample: a position and a unit-quaternion
// orientation.
type Pose struct {
	Position r3.Vec
	Rotation quat.Number
}

// IdentityPose returns the pose at the origin with identity orientation.
func IdentityPose() Pose {
	return Pose{Rotation: rotation.Identity()}
}

// PoseFilter smooths a pose stream with two independent one-euro filters
// (linear for position, quaternion for orientation) behind one shared
// time gate. Both sub-filters carry the same tuning parameters.
type PoseFilter struct {
	position *oneeuro.Filter[r3.Vec]
	rotation *oneeuro.Filter[quat.Number]

	prevTime float64
	value    Pose
}

// NewPose constructs a pose filter seeded at the identity pose.
func NewPose(opts ...oneeuro.Option) *PoseFilter {
	f := &PoseFilter{
		position: spatial.NewVec3(opts...),
		rotation: rotation.New(opts...),
	}
	f.Reset()

	return f
}

// Step filters one pose sample taken at the given absolute timestamp.
// Sub-threshold (or backward) time deltas are a shared no-op: neither
// sub-filter is stepped and the previous filtered pose is returned.
func (f *PoseFilter) Step(time float64, value Pose) Pose {
	if time-f.prevTime < oneeuro.MinTimeDelta {
		return f.value
	}

	f.value = Pose{
		Position: f.position.Step(time, value.Position),
		Rotation: f.rotation.Step(time, value.Rotation),
	}
	f.prevTime = time

	return f.value
}

// StepDelta filters one pose sample given the elapsed time since the
// previous step. Sub-threshold deltas accumulate on the shared clock;
// negative deltas are ignored.
func (f *PoseFilter) StepDelta(value Pose, deltaTime float64) Pose {
	if deltaTime < oneeuro.MinTimeDelta {
		if deltaTime > 0 {
			f.prevTime += deltaTime
		}

		return f.value
	}

	return f.Step(f.prevTime+deltaTime, value)
}

// Reset seeds the filter at the identity pose.
func (f *PoseFilter) Reset() {
	f.ResetTo(IdentityPose())
}

// ResetTo seeds the filter at an explicit pose, discarding carried
// velocities.
func (f *PoseFilter) ResetTo(seed Pose) {
	f.position.ResetTo(seed.Position)
	f.rotation.ResetTo(seed.Rotation)
	f.prevTime = 0
	f.value = seed
}

// SetParams replaces the tuning parameters on both sub-filters.
// Per-field tuning is not supported: the position and rotation fields
// always share one parameter pair.
func (f *PoseFilter) SetParams(beta, minCutoff float64) {
	f.position.SetParams(beta, minCutoff)
	f.rotation.SetParams(beta, minCutoff)
}

// Configure replaces the parameters wholesale on both sub-filters.
func (f *PoseFilter) Configure(params oneeuro.Params) {
	f.position.Configure(params)
	f.rotation.Configure(params)
}

// Params returns the shared tuning parameters.
func (f *PoseFilter) Params() oneeuro.Params { return f.position.Params() }

// Beta returns the shared speed coefficient.
func (f *PoseFilter) Beta() float64 { return f.position.Beta() }

// MinCutoff returns the shared baseline cutoff frequency.
func (f *PoseFilter) MinCutoff() float64 { return f.position.MinCutoff() }

// Value returns the most recent filtered pose.
func (f *PoseFilter) Value() Pose { return f.value }

// Time returns the timestamp of the most recent processed step.
func (f *PoseFilter) Time() float64 { return f.prevTime }
