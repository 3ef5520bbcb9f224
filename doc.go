// Package valuekit provides a compact, structure-sharing representation for
// values of a recursive unit/sum/product type system.
//
// Values of a binary combinator language are binary trees built from the unit
// value, left/right sum injections, and products. Machine words encoded in
// this form (a 32-bit integer is a balanced tree of 32 sum-tagged units)
// explode into thousands of nodes. This library collapses such spans into
// run-length bit and byte sequences while keeping the tree decomposable
// exactly as if it were fully explicit.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	valuekit/            Root package documentation
//	├── value/           Generic value trees: unit, sum injections, products
//	├── types/           Type descriptors: unit, sum, product, word types
//	├── run/             Immutable bit and byte runs with O(1) bisection
//	├── extval/          Compacted values: conversion, splitting, decoding,
//	│                    rendering
//	├── errors/          Structured error types for debugging
//	└── cmd/valuekit/    CLI for decoding bit strings against a type
//
// # Quick Start
//
// Compact a generic value and walk it:
//
//	v := value.Prod(value.U8(0xab), value.U8(0xcd))
//	ev := extval.FromValue(v)
//	fmt.Println(ev)            // 0xabcd
//	l, r, _ := ev.SplitProduct()
//	fmt.Println(l, r)          // 0xab 0xcd
//
// Rebuild a value from a type descriptor and a bit stream:
//
//	ty, _ := types.Parse("2^16")
//	ev, err := extval.FromBits(ty, extval.NewByteReader([]byte{0xab, 0xcd}))
//
// # Representation Equivalence
//
// Every compacted value is bit-for-bit equivalent to the explicit tree it
// stands for: iterating its bits, measuring its bit width, or splitting it
// into sum/product parts gives the same answers whether a subtree is stored
// as explicit nodes or as a run. Which representation backs a given subtree
// is private to the extval package.
//
// # Thread Safety
//
// All structures are immutable after construction and safe for concurrent
// use without synchronization. Runs derived by bisection share one backing
// buffer for their entire lifetime; nothing is copied on split.
package valuekit
