package value

import (
	"github.com/simfony-tools/valuekit/errors"
	"github.com/simfony-tools/valuekit/internal/dag"
)

// EachBitStrict walks the value as a uniform run of bits, calling emit
// for each: every left injection of unit contributes a 0, every right
// injection of unit a 1. Injections of anything but unit, and products
// of two units, mean the value is not a uniform run and fail the walk.
// On error no guarantee is made about how many bits were emitted.
func (v *Value) EachBitStrict(emit func(bool)) error {
	for node := range dag.PreOrder(v) {
		switch node.kind {
		case KindUnit:
		case KindLeft:
			if !node.left.IsUnit() {
				return errors.NotUniformRun(errors.PhaseConvert, "illegal left value: "+node.String())
			}
			emit(false)
		case KindRight:
			if !node.left.IsUnit() {
				return errors.NotUniformRun(errors.PhaseConvert, "illegal right value: "+node.String())
			}
			emit(true)
		case KindProduct:
			if node.left.IsUnit() && node.right.IsUnit() {
				return errors.NotUniformRun(errors.PhaseConvert, "illegal product value: "+node.String())
			}
		}
	}
	return nil
}

// TryToBytes renders the value as a raw byte sequence, most significant
// bit first. Fails unless the value is a uniform run whose bit width is
// a multiple of 8.
func (v *Value) TryToBytes() ([]byte, error) {
	if v.width%8 != 0 {
		return nil, errors.MisalignedLength(errors.PhaseConvert, v.width)
	}
	out := make([]byte, 0, v.width/8)
	var acc byte
	var nacc int
	err := v.EachBitStrict(func(bit bool) {
		acc <<= 1
		if bit {
			acc |= 1
		}
		nacc++
		if nacc == 8 {
			out = append(out, acc)
			acc, nacc = 0, 0
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func wordFromBits(bits []bool) *Value {
	nodes := make([]*Value, len(bits))
	for i, b := range bits {
		nodes[i] = Bit(b)
	}
	for len(nodes) > 1 {
		paired := nodes[:len(nodes)/2]
		for i := range paired {
			paired[i] = Prod(nodes[2*i], nodes[2*i+1])
		}
		nodes = paired
	}
	return nodes[0]
}

// U8 builds the balanced 8-bit word value of b.
func U8(b uint8) *Value {
	bits := make([]bool, 8)
	for i := range bits {
		bits[i] = b&(1<<(7-i)) != 0
	}
	return wordFromBits(bits)
}

// U16 builds the balanced 16-bit word value of v, big endian.
func U16(v uint16) *Value {
	return Prod(U8(uint8(v>>8)), U8(uint8(v)))
}

// U32 builds the balanced 32-bit word value of v, big endian.
func U32(v uint32) *Value {
	return Prod(U16(uint16(v>>16)), U16(uint16(v)))
}

// U64 builds the balanced 64-bit word value of v, big endian.
func U64(v uint64) *Value {
	return Prod(U32(uint32(v>>32)), U32(uint32(v)))
}

// FromBytes builds the balanced word value of a power-of-two-length byte
// sequence, big endian.
func FromBytes(bs []byte) (*Value, error) {
	if len(bs) == 0 || len(bs)&(len(bs)-1) != 0 {
		return nil, errors.InvalidLength(errors.PhaseConstruct, len(bs))
	}
	nodes := make([]*Value, len(bs))
	for i, b := range bs {
		nodes[i] = U8(b)
	}
	for len(nodes) > 1 {
		paired := nodes[:len(nodes)/2]
		for i := range paired {
			paired[i] = Prod(nodes[2*i], nodes[2*i+1])
		}
		nodes = paired
	}
	return nodes[0], nil
}

// MustFromBytes is FromBytes for lengths the caller has already
// validated. Panics on a length that is not a power of two.
func MustFromBytes(bs []byte) *Value {
	v, err := FromBytes(bs)
	if err != nil {
		panic(err)
	}
	return v
}
