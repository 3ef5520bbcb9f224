package value

// Kind discriminates value nodes
type Kind uint8

const (
	KindUnit Kind = iota
	KindLeft
	KindRight
	KindProduct
)

var kindNames = [...]string{
	KindUnit:    "unit",
	KindLeft:    "left",
	KindRight:   "right",
	KindProduct: "product",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node of a generic value tree: the unit value, a left or
// right sum injection, or a product. Children are shared and immutable;
// clones and subtree references never copy.
type Value struct {
	kind  Kind
	left  *Value
	right *Value
	width int
}

var unit = &Value{kind: KindUnit}

// Unit returns the unit value.
func Unit() *Value { return unit }

// SumL wraps inner in a left injection.
func SumL(inner *Value) *Value {
	return &Value{kind: KindLeft, left: inner, width: 1 + inner.width}
}

// SumR wraps inner in a right injection.
func SumR(inner *Value) *Value {
	return &Value{kind: KindRight, left: inner, width: 1 + inner.width}
}

// Prod pairs two values.
func Prod(left, right *Value) *Value {
	return &Value{kind: KindProduct, left: left, right: right, width: left.width + right.width}
}

// Bit returns the unit injection encoding one bit: SumL(Unit) for false,
// SumR(Unit) for true.
func Bit(bit bool) *Value {
	if bit {
		return SumR(unit)
	}
	return SumL(unit)
}

// Kind returns the node's tag.
func (v *Value) Kind() Kind { return v.kind }

// IsUnit reports whether v is the unit value.
func (v *Value) IsUnit() bool { return v.kind == KindUnit }

// Children returns the node's children and their count: none for unit,
// the injected value for sums, both parts for products.
func (v *Value) Children() (first, second *Value, n int) {
	switch v.kind {
	case KindLeft, KindRight:
		return v.left, nil, 1
	case KindProduct:
		return v.left, v.right, 2
	default:
		return nil, nil, 0
	}
}

// BitWidth returns the number of bits the value contributes to its
// encoding: one per sum injection, zero for units and products.
func (v *Value) BitWidth() int { return v.width }

// Equal reports structural equality. Iterative; tolerates deep trees.
func (v *Value) Equal(other *Value) bool {
	type pair struct{ a, b *Value }
	stack := []pair{{v, other}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == p.b {
			continue
		}
		if p.a.kind != p.b.kind || p.a.width != p.b.width {
			return false
		}
		switch p.a.kind {
		case KindLeft, KindRight:
			stack = append(stack, pair{p.a.left, p.b.left})
		case KindProduct:
			stack = append(stack, pair{p.a.left, p.b.left}, pair{p.a.right, p.b.right})
		}
	}
	return true
}
