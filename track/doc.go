// Package track provides one-euro filters for composite tracking values:
// poses (position plus orientation) and rays (origin plus direction).
//
// A composite filter owns one independent sub-filter per field behind a
// single shared time gate: the composite checks the minimum time delta
// once and either skips or steps both sub-filters together, so the two
// fields can never fall out of sync at the guard boundary. Beyond that
// gate the sub-filters never interact; each field's adaptive cutoff reacts
// only to its own velocity.
package track
