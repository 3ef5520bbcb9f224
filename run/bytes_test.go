package run_test

import (
	"testing"

	"github.com/simfony-tools/valuekit/run"
)

func TestBytesFromBytesLength(t *testing.T) {
	tests := []struct {
		length int
		ok     bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{32, true},
		{48, false},
	}

	for _, tt := range tests {
		_, err := run.FromBytes(make([]byte, tt.length))
		if (err == nil) != tt.ok {
			t.Errorf("FromBytes(len %d): err = %v, want ok %v", tt.length, err, tt.ok)
		}
	}
}

func TestBytesBisect(t *testing.T) {
	bytes := run.MustBytes([]byte{0b01101111, 0xff, 0xff, 0xff})
	if got := bytes.String(); got != "0x6fffffff" {
		t.Fatalf("render: got %q, want %q", got, "0x6fffffff")
	}

	res := bytes.Bisect()
	if res.Degraded {
		t.Fatal("4-byte run should bisect into byte runs")
	}
	if res.Left.String() != "0x6fff" || res.Right.String() != "0xffff" {
		t.Errorf("halves: got %s %s, want 0x6fff 0xffff", res.Left, res.Right)
	}

	res = res.Left.Bisect()
	if res.Degraded {
		t.Fatal("2-byte run should bisect into byte runs")
	}
	if res.Left.String() != "0x6f" || res.Right.String() != "0xff" {
		t.Errorf("quarters: got %s %s, want 0x6f 0xff", res.Left, res.Right)
	}

	// A single byte degrades to two 4-bit runs, never to empty byte runs.
	res = res.Left.Bisect()
	if !res.Degraded {
		t.Fatal("1-byte run should degrade to bit runs")
	}
	if res.LeftBits.String() != "0b0110" || res.RightBits.String() != "0b1111" {
		t.Errorf("degraded halves: got %s %s, want 0b0110 0b1111", res.LeftBits, res.RightBits)
	}
}

func TestBytesBitWidth(t *testing.T) {
	bytes := run.MustBytes([]byte{0xde, 0xad, 0xbe, 0xef})
	if got := bytes.BitWidth(); got != 32 {
		t.Errorf("BitWidth: got %d, want 32", got)
	}
	if got := bytes.ByteLen(); got != 4 {
		t.Errorf("ByteLen: got %d, want 4", got)
	}
}

func TestBytesIterBits(t *testing.T) {
	bytes := run.MustBytes([]byte{0b10000001})
	var got []bool
	for b := range bytes.IterBits() {
		got = append(got, b)
	}
	want := []bool{true, false, false, false, false, false, false, true}
	if len(got) != len(want) {
		t.Fatalf("bit count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBytesEqual(t *testing.T) {
	a := run.MustBytes([]byte{1, 2, 3, 4})
	b := run.MustBytes([]byte{1, 2, 3, 4})
	if !a.Equal(b) {
		t.Error("identical runs compare unequal")
	}

	// Windows into different buffers with the same content are equal.
	left := a.Bisect().Left
	other := run.MustBytes([]byte{1, 2})
	if !left.Equal(other) {
		t.Error("equal windows compare unequal")
	}
	if left.Equal(b) {
		t.Error("different lengths compare equal")
	}
}
