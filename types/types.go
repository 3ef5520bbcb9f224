package types

// Kind discriminates type descriptor nodes
type Kind uint8

const (
	KindUnit Kind = iota
	KindSum
	KindProduct
)

var kindNames = [...]string{
	KindUnit:    "unit",
	KindSum:     "sum",
	KindProduct: "product",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Type is a finalized type descriptor: the unit type, a sum, or a
// product. Descriptors are immutable and share children; the bit width
// is computed once at construction.
type Type struct {
	kind  Kind
	left  *Type
	right *Type
	width int
	word  bool // built by TwoTwoN; rendered as 2^n
}

var unitType = &Type{kind: KindUnit}

// Unit returns the unit type.
func Unit() *Type { return unitType }

// Sum builds the sum of left and right.
func Sum(left, right *Type) *Type {
	width := left.width
	if right.width > width {
		width = right.width
	}
	return &Type{kind: KindSum, left: left, right: right, width: 1 + width}
}

// Product builds the product of left and right.
func Product(left, right *Type) *Type {
	return &Type{kind: KindProduct, left: left, right: right, width: left.width + right.width}
}

// TwoTwoN returns the word type with 2^(2^n) values: TwoTwoN(0) is the
// bit type 1+1, TwoTwoN(3) is the byte type, TwoTwoN(5) is the 32-bit
// word. The result has bit width 2^n.
func TwoTwoN(n int) *Type {
	t := &Type{kind: KindSum, left: unitType, right: unitType, width: 1, word: true}
	for range n {
		t = &Type{kind: KindProduct, left: t, right: t, width: 2 * t.width, word: true}
	}
	return t
}

// Kind returns the descriptor's tag.
func (t *Type) Kind() Kind { return t.kind }

// IsUnit reports whether t is the unit type.
func (t *Type) IsUnit() bool { return t.kind == KindUnit }

// SumParts returns the two components of a sum type.
func (t *Type) SumParts() (left, right *Type, ok bool) {
	if t.kind != KindSum {
		return nil, nil, false
	}
	return t.left, t.right, true
}

// ProductParts returns the two components of a product type.
func (t *Type) ProductParts() (left, right *Type, ok bool) {
	if t.kind != KindProduct {
		return nil, nil, false
	}
	return t.left, t.right, true
}

// BitWidth returns the number of bits needed to encode a value of the
// type: zero for unit, one plus the wider component for sums, the sum
// of both components for products.
func (t *Type) BitWidth() int { return t.width }
