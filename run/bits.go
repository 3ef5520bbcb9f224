package run

import (
	"iter"
	"math/bits"
	"strings"

	"github.com/simfony-tools/valuekit/errors"
)

// Bits is an immutable sequence of bits whose length is a power of two.
//
// Bisection produces two runs that share the original's backing storage;
// no operation copies bits. All methods assume big endian bit order of
// the implied byte sequence.
type Bits struct {
	bits  []bool
	start int
	len   int
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// FromBools builds a bit run from bs. The slice is copied so later
// mutation by the caller cannot leak into the run. Fails unless the
// length is a power of two.
func FromBools(bs []bool) (Bits, error) {
	if !isPowerOfTwo(len(bs)) {
		return Bits{}, errors.InvalidLength(errors.PhaseConstruct, len(bs))
	}
	owned := make([]bool, len(bs))
	copy(owned, bs)
	return Bits{bits: owned, start: 0, len: len(owned)}, nil
}

// MustBools is FromBools for lengths the caller has already validated.
// Panics on a length that is not a power of two.
func MustBools(bs []bool) Bits {
	b, err := FromBools(bs)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBit builds a run of a single bit.
func FromBit(bit bool) Bits {
	return Bits{bits: []bool{bit}, start: 0, len: 1}
}

// BitsFromByte builds an eight-bit run from b, most significant bit first.
func BitsFromByte(b byte) Bits {
	bs := make([]bool, 8)
	for i := range bs {
		bs[i] = b&(1<<(7-i)) != 0
	}
	return Bits{bits: bs, start: 0, len: 8}
}

// Bisect splits the run into its front and rear halves. The halves share
// the receiver's storage. A run of one bit cannot be split; ok is false.
func (b Bits) Bisect() (left, right Bits, ok bool) {
	if b.len == 1 {
		return Bits{}, Bits{}, false
	}
	half := b.len / 2
	left = Bits{bits: b.bits, start: b.start, len: half}
	right = Bits{bits: b.bits, start: b.start + half, len: half}
	return left, right, true
}

// Bit returns the single bit of a length-one run. ok is false for longer
// runs.
func (b Bits) Bit() (bit bool, ok bool) {
	if b.len != 1 {
		return false, false
	}
	return b.bits[b.start], true
}

// BitWidth returns the number of bits in the run.
func (b Bits) BitWidth() int {
	return b.len
}

// IterBits yields the run's bits front to rear. Each call returns a
// fresh iterator.
func (b Bits) IterBits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := b.start; i < b.start+b.len; i++ {
			if !yield(b.bits[i]) {
				return
			}
		}
	}
}

// Equal reports whether both runs hold the same bit sequence.
func (b Bits) Equal(other Bits) bool {
	if b.len != other.len {
		return false
	}
	for i := 0; i < b.len; i++ {
		if b.bits[b.start+i] != other.bits[other.start+i] {
			return false
		}
	}
	return true
}

// String renders the run as "0b" followed by one character per bit.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(2 + b.len)
	sb.WriteString("0b")
	for i := b.start; i < b.start+b.len; i++ {
		if b.bits[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
