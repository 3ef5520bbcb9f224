// Package dag provides iterative tree traversals shared by the value and
// extval packages.
//
// Value trees can be very deep (a 2^n-bit word is a tree of depth n plus
// the injection chain above it), so all traversals here run on explicit
// heap-allocated stacks instead of the call stack.
package dag
