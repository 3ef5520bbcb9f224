// Package extval provides the compacted value representation and the
// algorithms that move values into and out of it.
//
// # Representations
//
// A compacted value is one of six node shapes: unit, left or right
// injection, product, bit run, byte run. The run shapes stand for
// subtrees that would otherwise be long spans of sum-tagged units; a
// 32-byte hash that would be thousands of explicit nodes is a single
// byte run over one shared buffer. The shape tag is private: consumers
// see only the splitting operations, bit width, bit iteration and
// rendering, which give the same answers for a run and for the explicit
// tree it stands for.
//
// # Entry points
//
//   - FromValue converts a generic value (package value) into compacted
//     form, coalescing adjacent tag bits into runs.
//   - BitsFromValue and BytesFromValue are the strict fast paths for
//     values that are already uniform runs.
//   - FromBits rebuilds a value from a type descriptor (package types)
//     and a bit stream.
//
// # Stack discipline
//
// Both conversion and decoding run on explicit heap-allocated work
// stacks, never on the call stack. Word types are shallow (depth
// logarithmic in width) but injection chains and nested products can
// still stack hundreds of thousands of frames.
package extval
