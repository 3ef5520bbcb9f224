// Package value provides generic value trees for a unit/sum/product type
// system.
//
// A value is a binary tree: the unit value, a left or right injection
// into a sum, or a product of two values. Machine words are encoded as
// balanced trees of sum-tagged units; the word constructors (U8 through
// U64, FromBytes) build them directly.
//
// Values are immutable and share children; they are safe for concurrent
// use. Traversals and equality run on explicit stacks so arbitrarily deep
// values cannot overflow the call stack.
package value
