package extval

import (
	"iter"

	"github.com/simfony-tools/valuekit/internal/dag"
	"github.com/simfony-tools/valuekit/run"
)

// kind discriminates value nodes. Whether a subtree is stored as explicit
// nodes or as a run is private to this package; consumers decompose
// values only through SplitLeft, SplitRight, SplitProduct, BitWidth and
// IterBits, which behave identically for both representations.
type kind uint8

const (
	kindUnit kind = iota
	kindLeft
	kindRight
	kindProduct
	kindBitRun
	kindByteRun
)

// Value is a compacted value of the unit/sum/product type system.
// Subtrees consisting entirely of sum-tagged units collapse into bit or
// byte runs; everything else is explicit nodes. Values are immutable and
// share children.
type Value struct {
	kind  kind
	left  *Value
	right *Value
	bits  run.Bits
	bytes run.Bytes
}

var unit = &Value{kind: kindUnit}

// Unit returns the unit value.
func Unit() *Value { return unit }

// Left wraps inner in a left injection.
func Left(inner *Value) *Value {
	return &Value{kind: kindLeft, left: inner}
}

// Right wraps inner in a right injection.
func Right(inner *Value) *Value {
	return &Value{kind: kindRight, left: inner}
}

// Product pairs two values.
func Product(left, right *Value) *Value {
	return &Value{kind: kindProduct, left: left, right: right}
}

// BitRun wraps a bit run standing for a subtree of sum-tagged units.
func BitRun(bits run.Bits) *Value {
	return &Value{kind: kindBitRun, bits: bits}
}

// ByteRun wraps a byte run standing for a byte-aligned subtree of
// sum-tagged units.
func ByteRun(bytes run.Bytes) *Value {
	return &Value{kind: kindByteRun, bytes: bytes}
}

// Children returns the node's children and their count. Runs are leaves.
func (v *Value) Children() (first, second *Value, n int) {
	switch v.kind {
	case kindLeft, kindRight:
		return v.left, nil, 1
	case kindProduct:
		return v.left, v.right, 2
	default:
		return nil, nil, 0
	}
}

// SplitLeft returns the value under a left injection. A single-bit run
// holding a 0 is a left injection of unit. ok is false for anything
// else.
func (v *Value) SplitLeft() (*Value, bool) {
	switch v.kind {
	case kindLeft:
		return v.left, true
	case kindBitRun:
		if bit, ok := v.bits.Bit(); ok && !bit {
			return unit, true
		}
	}
	return nil, false
}

// SplitRight returns the value under a right injection. A single-bit run
// holding a 1 is a right injection of unit.
func (v *Value) SplitRight() (*Value, bool) {
	switch v.kind {
	case kindRight:
		return v.left, true
	case kindBitRun:
		if bit, ok := v.bits.Bit(); ok && bit {
			return unit, true
		}
	}
	return nil, false
}

// SplitProduct returns the two components of a product. Runs longer than
// one element bisect without copying; a single-byte run degrades to two
// bit-run halves. Single-bit runs are atomic; ok is false.
func (v *Value) SplitProduct() (left, right *Value, ok bool) {
	switch v.kind {
	case kindProduct:
		return v.left, v.right, true
	case kindBitRun:
		if l, r, ok := v.bits.Bisect(); ok {
			return BitRun(l), BitRun(r), true
		}
	case kindByteRun:
		res := v.bytes.Bisect()
		if res.Degraded {
			return BitRun(res.LeftBits), BitRun(res.RightBits), true
		}
		return ByteRun(res.Left), ByteRun(res.Right), true
	}
	return nil, nil, false
}

// BitWidth returns the number of bits in the value's encoding.
func (v *Value) BitWidth() int {
	width := 0
	for node := range dag.PreOrder(v) {
		switch node.kind {
		case kindLeft, kindRight:
			width++
		case kindBitRun:
			width += node.bits.BitWidth()
		case kindByteRun:
			width += node.bytes.BitWidth()
		}
	}
	return width
}

// IterBits yields the value's bit sequence in encoding order: one tag
// bit per sum injection followed by the injected value's bits, runs
// verbatim. Each call returns a fresh iterator.
func (v *Value) IterBits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for node := range dag.PreOrder(v) {
			switch node.kind {
			case kindLeft:
				if !yield(false) {
					return
				}
			case kindRight:
				if !yield(true) {
					return
				}
			case kindBitRun:
				for bit := range node.bits.IterBits() {
					if !yield(bit) {
						return
					}
				}
			case kindByteRun:
				for bit := range node.bytes.IterBits() {
					if !yield(bit) {
						return
					}
				}
			}
		}
	}
}

// Equal reports structural equality: the same node shapes with runs
// compared by content. Two values that encode the same bit sequence in
// different representations compare unequal.
func (v *Value) Equal(other *Value) bool {
	type pair struct{ a, b *Value }
	stack := []pair{{v, other}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == p.b {
			continue
		}
		if p.a.kind != p.b.kind {
			return false
		}
		switch p.a.kind {
		case kindLeft, kindRight:
			stack = append(stack, pair{p.a.left, p.b.left})
		case kindProduct:
			stack = append(stack, pair{p.a.left, p.b.left}, pair{p.a.right, p.b.right})
		case kindBitRun:
			if !p.a.bits.Equal(p.b.bits) {
				return false
			}
		case kindByteRun:
			if !p.a.bytes.Equal(p.b.bytes) {
				return false
			}
		}
	}
	return true
}
