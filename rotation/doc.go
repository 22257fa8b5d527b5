// Package rotation provides a one-euro filter over unit quaternions.
//
// Quaternions have no meaningful componentwise difference, so the rate of
// change between two orientations is expressed as the delta rotation
// current*inverse(previous) rescaled by the inverse time step, with the
// scalar part re-biased toward identity so the result renormalizes to a
// valid small rotation. Values blend along the shortest arc ([Slerp]);
// rates blend with a normalized linear combination ([Nlerp]) for numerical
// stability. The rescaling is a small-angle approximation: it is accurate
// while the rotation between consecutive samples stays small relative to
// the sample interval.
package rotation
