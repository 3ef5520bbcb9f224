package extval_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simfony-tools/valuekit/extval"
	"github.com/simfony-tools/valuekit/value"
)

func collectBits(t *testing.T, v any) []bool {
	t.Helper()
	out := []bool{}
	switch val := v.(type) {
	case *extval.Value:
		for b := range val.IterBits() {
			out = append(out, b)
		}
	case *value.Value:
		for b := range val.IterBits() {
			out = append(out, b)
		}
	default:
		t.Fatalf("unsupported value type %T", v)
	}
	return out
}

// sameShape rebuilds v with the same tree shape but fresh leaf bits, so
// the result has the same bit width everywhere.
func sameShape(rng *rand.Rand, v *value.Value) *value.Value {
	first, second, _ := v.Children()
	switch v.Kind() {
	case value.KindUnit:
		return value.Unit()
	case value.KindLeft, value.KindRight:
		if first.IsUnit() {
			return value.Bit(rng.Intn(2) == 1)
		}
		inner := sameShape(rng, first)
		if v.Kind() == value.KindLeft {
			return value.SumL(inner)
		}
		return value.SumR(inner)
	default:
		return value.Prod(sameShape(rng, first), sameShape(rng, second))
	}
}

// randomValue builds a deterministic pseudo-random value tree. Both
// sides of a product share one shape, the way values of a product type
// share the component types' shapes.
func randomValue(rng *rand.Rand, depth int) *value.Value {
	if depth == 0 {
		switch rng.Intn(3) {
		case 0:
			return value.Unit()
		case 1:
			return value.U8(uint8(rng.Intn(256)))
		default:
			return value.Bit(rng.Intn(2) == 1)
		}
	}
	switch rng.Intn(5) {
	case 0:
		return value.SumL(randomValue(rng, depth-1))
	case 1:
		return value.SumR(randomValue(rng, depth-1))
	case 2:
		return value.Prod(value.Unit(), randomValue(rng, depth-1))
	default:
		left := randomValue(rng, depth-1)
		return value.Prod(left, sameShape(rng, left))
	}
}

func TestConversionPreservesBitSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := randomValue(rng, 1+rng.Intn(6))
		ev := extval.FromValue(v)

		require.Equal(t, v.BitWidth(), ev.BitWidth(), "bit width of %s", ev)
		require.Equal(t, collectBits(t, v), collectBits(t, ev), "bit sequence of %s", ev)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	// For any type and any bit string of exactly the type's width built
	// from equal-width sum components, decoding then iterating gives the
	// bits back.
	rng := rand.New(rand.NewSource(2))
	for _, src := range []string{"2", "2^2", "2^8", "2^32", "2^64", "2^256", "2^8 * 2^32", "2 * 2^8"} {
		ty := mustParse(t, src)
		for i := 0; i < 20; i++ {
			in := make([]bool, ty.BitWidth())
			for j := range in {
				in[j] = rng.Intn(2) == 1
			}

			v, err := extval.FromBits(ty, extval.NewSliceReader(in))
			require.NoError(t, err, "type %s", ty)
			require.Equal(t, ty.BitWidth(), v.BitWidth(), "type %s", ty)
			require.Equal(t, in, collectBits(t, v), "type %s", ty)
		}
	}
}

func TestSplitProductAgreement(t *testing.T) {
	// Splitting any even-width compacted value halves the width and
	// preserves the concatenated bit sequence, no matter the internal
	// representation.
	candidates := []*extval.Value{
		extval.FromValue(value.U32(0xdeadbeef)),
		extval.FromValue(value.U16(0x0102)),
		extval.FromValue(value.Prod(value.Bit(true), value.Bit(false))),
		extval.FromValue(value.MustFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})),
	}

	for _, ev := range candidates {
		for {
			width := ev.BitWidth()
			left, right, ok := ev.SplitProduct()
			if !ok {
				require.Equal(t, 1, width, "only single bits are atomic: %s", ev)
				break
			}
			require.Equal(t, width/2, left.BitWidth(), "left of %s", ev)
			require.Equal(t, width/2, right.BitWidth(), "right of %s", ev)

			rejoined := append(collectBits(t, left), collectBits(t, right)...)
			require.Equal(t, collectBits(t, ev), rejoined, "bits of %s", ev)

			ev = left
		}
	}
}

func TestDecodeAgreesWithDirectConversion(t *testing.T) {
	// Decoding raw bytes yields the same bit sequence as compacting the
	// equivalent generic value directly, even though the decoded tree is
	// fully explicit and the direct conversion is a byte run.
	raw := []byte{0x6f, 0xff, 0xff, 0xff}
	ty := mustParse(t, "2^32")

	decoded, err := extval.FromBits(ty, extval.NewByteReader(raw))
	require.NoError(t, err)

	direct := extval.FromValue(value.MustFromBytes(raw))
	require.Equal(t, "0x6fffffff", direct.String())
	require.Equal(t, collectBits(t, direct), collectBits(t, decoded))
}
