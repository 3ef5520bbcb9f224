// Package run provides immutable bit and byte runs with O(1) bisection.
//
// A run is a power-of-two-length window over a shared, never-mutated
// backing buffer. Bisecting a run yields two half-length runs over the
// same buffer; the buffer lives as long as any run derived from it.
// Bisecting a single-byte Bytes run crosses representations: it returns
// two four-bit Bits runs rather than zero-length byte runs.
//
// Runs are the building blocks of the compacted value representation in
// the extval package, where they stand in for subtrees made entirely of
// sum-tagged units.
package run
