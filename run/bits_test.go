package run_test

import (
	"testing"

	"github.com/simfony-tools/valuekit/run"
)

func TestBitsFromBoolsLength(t *testing.T) {
	tests := []struct {
		length int
		ok     bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{5, false},
		{8, true},
		{12, false},
		{256, true},
	}

	for _, tt := range tests {
		_, err := run.FromBools(make([]bool, tt.length))
		if (err == nil) != tt.ok {
			t.Errorf("FromBools(len %d): err = %v, want ok %v", tt.length, err, tt.ok)
		}
	}
}

func TestBitsBisect(t *testing.T) {
	bits := run.BitsFromByte(0b01101111)
	if got := bits.String(); got != "0b01101111" {
		t.Fatalf("render: got %q, want %q", got, "0b01101111")
	}

	a, b, ok := bits.Bisect()
	if !ok {
		t.Fatal("bisect of 8-bit run failed")
	}
	if a.String() != "0b0110" || b.String() != "0b1111" {
		t.Errorf("halves: got %s %s, want 0b0110 0b1111", a, b)
	}

	c, d, ok := a.Bisect()
	if !ok {
		t.Fatal("bisect of 4-bit run failed")
	}
	if c.String() != "0b01" || d.String() != "0b10" {
		t.Errorf("quarters: got %s %s, want 0b01 0b10", c, d)
	}

	e, f, ok := c.Bisect()
	if !ok {
		t.Fatal("bisect of 2-bit run failed")
	}
	if e.String() != "0b0" || f.String() != "0b1" {
		t.Errorf("single bits: got %s %s, want 0b0 0b1", e, f)
	}

	if _, _, ok := e.Bisect(); ok {
		t.Error("bisect of 1-bit run should fail")
	}
}

func TestBitsBisectSharesBacking(t *testing.T) {
	bits := run.MustBools([]bool{false, true, true, false})
	left, right, _ := bits.Bisect()

	var rejoined []bool
	for b := range left.IterBits() {
		rejoined = append(rejoined, b)
	}
	for b := range right.IterBits() {
		rejoined = append(rejoined, b)
	}
	if len(rejoined) != bits.BitWidth() {
		t.Fatalf("rejoined width: got %d, want %d", len(rejoined), bits.BitWidth())
	}
	i := 0
	for b := range bits.IterBits() {
		if rejoined[i] != b {
			t.Fatalf("bit %d differs after bisection", i)
		}
		i++
	}
}

func TestBitsBit(t *testing.T) {
	if got, ok := run.FromBit(false).Bit(); !ok || got {
		t.Errorf("FromBit(false).Bit() = %v, %v", got, ok)
	}
	if got, ok := run.FromBit(true).Bit(); !ok || !got {
		t.Errorf("FromBit(true).Bit() = %v, %v", got, ok)
	}
	if _, ok := run.MustBools([]bool{false, false}).Bit(); ok {
		t.Error("Bit() on 2-bit run should report not ok")
	}
}

func TestBitsImmutable(t *testing.T) {
	src := []bool{true, false, true, false}
	bits := run.MustBools(src)
	src[0] = false
	if got := bits.String(); got != "0b1010" {
		t.Errorf("run changed after caller mutation: got %q", got)
	}
}
