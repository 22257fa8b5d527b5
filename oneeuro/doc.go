// Package oneeuro implements the "one euro" adaptive low-pass filter for
// noisy, irregularly-sampled signals.
//
// A one-euro filter is a single-pole low pass whose cutoff frequency adapts
// to the observed speed of the signal: slow motion is smoothed aggressively
// while fast motion tracks the raw samples with little lag. Two parameters
// tune the trade-off ([Params]): MinCutoff sets the baseline smoothing at
// rest and Beta scales how quickly the cutoff rises with speed.
//
// The generic [Filter] runs the same state machine over any value domain
// that supplies the three operators in [Domain]: a rate-of-change between
// two samples, an interpolation, and a scalar rate magnitude. [NewScalar]
// instantiates it for float64 streams; the spatial, rotation and track
// subpackages cover vectors, unit directions, quaternion orientations and
// pose/ray composites.
package oneeuro
