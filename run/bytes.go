package run

import (
	"encoding/hex"
	"iter"

	"github.com/simfony-tools/valuekit/errors"
)

// Bytes is an immutable sequence of bytes whose length is a power of two.
//
// Bisection produces two runs that share the original's backing storage.
// A run of a single byte does not bisect into byte runs; it degrades to
// the byte's eight bits, split into two four-bit Bits runs. All methods
// assume big endian.
type Bytes struct {
	bytes []byte
	start int
	len   int
}

// BisectResult holds the two halves of a bisected byte run. When the run
// was a single byte there are no byte halves; Degraded is true and the
// halves are the bit runs LeftBits and RightBits instead.
type BisectResult struct {
	Left      Bytes
	Right     Bytes
	LeftBits  Bits
	RightBits Bits
	Degraded  bool
}

// FromBytes builds a byte run from bs. The slice is copied so later
// mutation by the caller cannot leak into the run. Fails unless the
// length is a power of two.
func FromBytes(bs []byte) (Bytes, error) {
	if !isPowerOfTwo(len(bs)) {
		return Bytes{}, errors.InvalidLength(errors.PhaseConstruct, len(bs))
	}
	owned := make([]byte, len(bs))
	copy(owned, bs)
	return Bytes{bytes: owned, start: 0, len: len(owned)}, nil
}

// MustBytes is FromBytes for lengths the caller has already validated.
// Panics on a length that is not a power of two.
func MustBytes(bs []byte) Bytes {
	b, err := FromBytes(bs)
	if err != nil {
		panic(err)
	}
	return b
}

// Bisect splits the run into its front and rear halves sharing the
// receiver's storage. A single byte degrades to two four-bit Bits runs.
func (b Bytes) Bisect() BisectResult {
	if b.len == 1 {
		left, right, _ := BitsFromByte(b.bytes[b.start]).Bisect()
		return BisectResult{LeftBits: left, RightBits: right, Degraded: true}
	}
	half := b.len / 2
	return BisectResult{
		Left:  Bytes{bytes: b.bytes, start: b.start, len: half},
		Right: Bytes{bytes: b.bytes, start: b.start + half, len: half},
	}
}

// ByteLen returns the number of bytes in the run.
func (b Bytes) ByteLen() int {
	return b.len
}

// BitWidth returns the number of bits in the run.
func (b Bytes) BitWidth() int {
	return b.len * 8
}

// IterBytes yields the run's bytes front to rear. Each call returns a
// fresh iterator.
func (b Bytes) IterBytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := b.start; i < b.start+b.len; i++ {
			if !yield(b.bytes[i]) {
				return
			}
		}
	}
}

// IterBits yields the run's bits front to rear, most significant bit of
// each byte first.
func (b Bytes) IterBits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := b.start; i < b.start+b.len; i++ {
			for j := 7; j >= 0; j-- {
				if !yield(b.bytes[i]&(1<<j) != 0) {
					return
				}
			}
		}
	}
}

// Equal reports whether both runs hold the same byte sequence.
func (b Bytes) Equal(other Bytes) bool {
	if b.len != other.len {
		return false
	}
	for i := 0; i < b.len; i++ {
		if b.bytes[b.start+i] != other.bytes[other.start+i] {
			return false
		}
	}
	return true
}

// String renders the run as "0x" followed by lowercase hex.
func (b Bytes) String() string {
	return "0x" + hex.EncodeToString(b.bytes[b.start:b.start+b.len])
}
