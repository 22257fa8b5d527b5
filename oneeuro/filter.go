package oneeuro

import "math"

const (
	// MinTimeDelta is the smallest elapsed time a step will process.
	// Steps with a smaller (or negative) delta return the previous value
	// unchanged; this guards division by zero on duplicate timestamps and
	// is not an error condition.
	MinTimeDelta = 1e-5

	// DerivativeCutoff is the fixed cutoff frequency at which the rate
	// estimate itself is smoothed, independent of tuning parameters.
	DerivativeCutoff = 1.0
)

// Domain supplies the per-domain operators the filter state machine needs.
// Difference and Magnitude describe the rate-of-change space; Blend
// interpolates values and BlendRate interpolates rates. The two blends
// differ for rotational domains, where values travel the shortest arc but
// rates use a normalized linear combination for numerical stability.
type Domain[T any] interface {
	// Difference returns the instantaneous rate of change from previous
	// to current over the elapsed time dt. dt is guaranteed > 0.
	Difference(current, previous T, dt float64) T

	// Blend interpolates from one value toward another at weight w in [0,1].
	Blend(from, to T, w float64) T

	// BlendRate interpolates between two rates at weight w in [0,1].
	BlendRate(from, to T, w float64) T

	// Magnitude reduces a rate to a non-negative scalar speed.
	Magnitude(rate T) float64

	// Zero returns the domain's zero or identity value.
	Zero() T

	// ZeroRate returns the domain's zero rate.
	ZeroRate() T
}

// Filter is the one-euro state machine over a single value domain.
// It holds one previous sample worth of state: the last timestamp, the
// last filtered value and the smoothed rate estimate.
//
// A Filter is not safe for concurrent use; one instance owns one logical
// signal stream.
type Filter[T any] struct {
	dom    Domain[T]
	params Params

	prevTime float64
	value    T
	rate     T
}

// New constructs a filter over the given domain, seeded at the domain's
// zero value with zero rate and previous time 0.
func New[T any](dom Domain[T], opts ...Option) *Filter[T] {
	f := &Filter[T]{dom: dom, params: applyOptions(opts)}
	f.Reset()

	return f
}

// Step filters one raw sample taken at the given absolute timestamp and
// returns the filtered value.
//
// If less than MinTimeDelta has elapsed since the previous step the call
// is a no-op and returns the previous filtered value; this also covers
// timestamps that moved backward.
func (f *Filter[T]) Step(time float64, value T) T {
	dt := time - f.prevTime
	if dt < MinTimeDelta {
		return f.value
	}

	rawRate := f.dom.Difference(value, f.value, dt)
	rate := f.dom.BlendRate(f.rate, rawRate, alphaWeight(dt, DerivativeCutoff))

	cutoff := f.params.MinCutoff + f.params.Beta*f.dom.Magnitude(rate)
	out := f.dom.Blend(f.value, value, alphaWeight(dt, cutoff))

	f.prevTime = time
	f.value = out
	f.rate = rate

	return out
}

// StepDelta filters one raw sample given the elapsed time since the
// previous step instead of an absolute timestamp.
//
// Sub-threshold deltas accumulate: the internal clock still advances, so
// a burst of tiny deltas eventually crosses MinTimeDelta instead of being
// dropped every call. Negative deltas are ignored entirely.
func (f *Filter[T]) StepDelta(value T, deltaTime float64) T {
	if deltaTime < MinTimeDelta {
		if deltaTime > 0 {
			f.prevTime += deltaTime
		}

		return f.value
	}

	return f.Step(f.prevTime+deltaTime, value)
}

// Reset seeds the filter at the domain's zero value with zero rate and
// previous time 0.
func (f *Filter[T]) Reset() {
	f.ResetTo(f.dom.Zero())
}

// ResetTo seeds the filter at an explicit value, discarding any carried
// rate. Use after a tracking re-acquisition to snap without stale velocity.
func (f *Filter[T]) ResetTo(seed T) {
	f.prevTime = 0
	f.value = seed
	f.rate = f.dom.ZeroRate()
}

// SetParams replaces both tuning parameters without touching state.
func (f *Filter[T]) SetParams(beta, minCutoff float64) {
	f.params.Beta = beta
	f.params.MinCutoff = minCutoff
}

// Configure replaces the parameters wholesale without touching state.
func (f *Filter[T]) Configure(params Params) {
	f.params = params
}

// Params returns the current tuning parameters.
func (f *Filter[T]) Params() Params { return f.params }

// Beta returns the speed coefficient.
func (f *Filter[T]) Beta() float64 { return f.params.Beta }

// MinCutoff returns the baseline cutoff frequency.
func (f *Filter[T]) MinCutoff() float64 { return f.params.MinCutoff }

// Value returns the most recent filtered value.
func (f *Filter[T]) Value() T { return f.value }

// Time returns the timestamp of the most recent processed step.
func (f *Filter[T]) Time() float64 { return f.prevTime }

// alphaWeight is the exponential-smoothing weight of a single-pole low
// pass with the given cutoff frequency sampled at interval dt. It tends
// to 1 as dt or cutoff grows (track the raw sample) and to 0 as either
// shrinks (keep the previous value).
func alphaWeight(dt, cutoff float64) float64 {
	r := 2 * math.Pi * cutoff * dt
	return r / (r + 1)
}
