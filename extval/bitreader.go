package extval

import "iter"

// BitReader yields bits one at a time. Next reports ok == false when the
// stream is exhausted; the reader stays exhausted afterward.
type BitReader interface {
	Next() (bit bool, ok bool)
}

// SliceReader reads bits from a slice.
type SliceReader struct {
	bits []bool
	pos  int
}

// NewSliceReader returns a reader over bits. The slice is not copied;
// the caller must not mutate it while reading.
func NewSliceReader(bits []bool) *SliceReader {
	return &SliceReader{bits: bits}
}

// Next returns the next bit.
func (r *SliceReader) Next() (bool, bool) {
	if r.pos >= len(r.bits) {
		return false, false
	}
	bit := r.bits[r.pos]
	r.pos++
	return bit, true
}

// Remaining returns the number of unread bits.
func (r *SliceReader) Remaining() int {
	return len(r.bits) - r.pos
}

// ByteReader reads bits from a byte sequence, most significant bit of
// each byte first.
type ByteReader struct {
	data []byte
	pos  int // in bits
}

// NewByteReader returns a reader over data. The slice is not copied; the
// caller must not mutate it while reading.
func NewByteReader(data []byte) *ByteReader {
	return &ByteReader{data: data}
}

// Next returns the next bit.
func (r *ByteReader) Next() (bool, bool) {
	if r.pos >= len(r.data)*8 {
		return false, false
	}
	bit := r.data[r.pos/8]&(1<<(7-r.pos%8)) != 0
	r.pos++
	return bit, true
}

// Remaining returns the number of unread bits.
func (r *ByteReader) Remaining() int {
	return len(r.data)*8 - r.pos
}

// SeqReader adapts a finite bit sequence, such as Value.IterBits, into a
// BitReader.
type SeqReader struct {
	next func() (bool, bool)
	stop func()
}

// NewSeqReader returns a reader that pulls from seq.
func NewSeqReader(seq iter.Seq[bool]) *SeqReader {
	next, stop := iter.Pull(seq)
	return &SeqReader{next: next, stop: stop}
}

// Next returns the next bit.
func (r *SeqReader) Next() (bool, bool) {
	return r.next()
}

// Stop releases the underlying iterator. Reading past the end also
// releases it; Stop is only needed when abandoning a reader early.
func (r *SeqReader) Stop() {
	r.stop()
}
