package extval

import (
	"math/bits"

	"github.com/simfony-tools/valuekit/errors"
	"github.com/simfony-tools/valuekit/run"
	"github.com/simfony-tools/valuekit/value"
)

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// BitsFromValue views v as a uniform bit run: every left injection of
// unit contributes a 0, every right injection a 1. Fails unless the bit
// width is a power of two and the shape is a pure run.
func BitsFromValue(v *value.Value) (run.Bits, error) {
	if !isPowerOfTwo(v.BitWidth()) {
		return run.Bits{}, errors.InvalidLength(errors.PhaseConvert, v.BitWidth())
	}
	bs := make([]bool, 0, v.BitWidth())
	err := v.EachBitStrict(func(bit bool) {
		bs = append(bs, bit)
	})
	if err != nil {
		return run.Bits{}, err
	}
	return run.MustBools(bs), nil
}

// BytesFromValue views v as a uniform byte run, packing eight bits per
// byte most significant first. Fails unless the bit width is a
// power of two, a multiple of 8, and the shape is a pure run.
func BytesFromValue(v *value.Value) (run.Bytes, error) {
	if !isPowerOfTwo(v.BitWidth()) {
		return run.Bytes{}, errors.InvalidLength(errors.PhaseConvert, v.BitWidth())
	}
	if v.BitWidth()%8 != 0 {
		return run.Bytes{}, errors.MisalignedLength(errors.PhaseConvert, v.BitWidth())
	}
	raw, err := v.TryToBytes()
	if err != nil {
		return run.Bytes{}, err
	}
	return run.MustBytes(raw), nil
}

// Fragment kinds carried on the conversion stack. Runs of tag bits stay
// pending (raw slices) until a sibling forces materialization, so
// adjacent runs coalesce without building intermediate nodes.
type fragKind uint8

const (
	fragValue fragKind = iota
	fragBits
	fragBytes
)

type frag struct {
	kind  fragKind
	val   *Value
	bits  []bool
	bytes []byte
}

func (f frag) finalize() *Value {
	switch f.kind {
	case fragBits:
		return BitRun(run.MustBools(f.bits))
	case fragBytes:
		return ByteRun(run.MustBytes(f.bytes))
	default:
		return f.val
	}
}

func packByte(bs []bool) byte {
	var b byte
	for _, bit := range bs {
		b <<= 1
		if bit {
			b |= 1
		}
	}
	return b
}

// FromValue converts a generic value into its compacted form. Uniform
// runs take a fast path straight into a single run; everything else goes
// through one iterative post-order pass that coalesces adjacent tag bits
// into bit runs and adjacent byte runs into larger byte runs.
//
// Sibling pending runs always have equal lengths on well-formed inputs,
// both sides of a product having the same type. The merge does not
// re-check this; a malformed value surfaces as a panic when the merged
// length is not a power of two.
func FromValue(v *value.Value) *Value {
	if bytes, err := BytesFromValue(v); err == nil {
		debugf("fast path: %d-byte run", bytes.ByteLen())
		return ByteRun(bytes)
	}
	if bits, err := BitsFromValue(v); err == nil {
		debugf("fast path: %d-bit run", bits.BitWidth())
		return BitRun(bits)
	}

	var stack []frag
	for node := range v.PostOrder() {
		switch node.Kind() {
		case value.KindUnit:
			stack = append(stack, frag{kind: fragValue, val: unit})

		case value.KindLeft:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.kind == fragValue && top.val.kind == kindUnit {
				stack = append(stack, frag{kind: fragBits, bits: []bool{false}})
			} else {
				stack = append(stack, frag{kind: fragValue, val: Left(top.finalize())})
			}

		case value.KindRight:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.kind == fragValue && top.val.kind == kindUnit {
				stack = append(stack, frag{kind: fragBits, bits: []bool{true}})
			} else {
				stack = append(stack, frag{kind: fragValue, val: Right(top.finalize())})
			}

		case value.KindProduct:
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			switch {
			case left.kind == fragBits && right.kind == fragBits:
				merged := append(left.bits, right.bits...)
				if len(merged) == 8 {
					stack = append(stack, frag{kind: fragBytes, bytes: []byte{packByte(merged)}})
				} else {
					stack = append(stack, frag{kind: fragBits, bits: merged})
				}
			case left.kind == fragBytes && right.kind == fragBytes:
				stack = append(stack, frag{kind: fragBytes, bytes: append(left.bytes, right.bytes...)})
			default:
				l := left.finalize()
				r := right.finalize()
				stack = append(stack, frag{kind: fragValue, val: Product(l, r)})
			}
		}
	}

	return stack[0].finalize()
}
