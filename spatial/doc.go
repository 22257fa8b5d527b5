// Package spatial provides one-euro filters over gonum planar and spatial
// vectors.
//
// [NewVec2] and [NewVec3] filter additive vector signals (positions,
// offsets) with componentwise rates and linear interpolation. [NewDirection]
// filters unit direction vectors: rates stay componentwise but values blend
// along the shortest great-circle arc so a filtered direction never cuts
// through the sphere.
package spatial
