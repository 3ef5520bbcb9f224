// Package types provides finalized type descriptors for the
// unit/sum/product type system.
//
// A descriptor drives type-directed decoding in the extval package: the
// unit type consumes no bits, a sum consumes one tag bit followed by the
// chosen component, a product consumes both components in order. Word
// types 2^n are built by TwoTwoN and render compactly.
//
// Descriptors are immutable, share children, and are safe for concurrent
// use.
package types
