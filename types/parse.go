package types

import (
	"math/bits"
	"strconv"

	"github.com/simfony-tools/valuekit/errors"
)

// Parse reads a type expression:
//
//	atom := "1" | "2" | "2^" width | "(" sum ")"
//	prod := atom ("*" atom)*
//	sum  := prod ("+" prod)*
//
// "1" is the unit type, "2" the bit type, "2^n" the word type of bit
// width n (n a power of two). "*" binds tighter than "+"; both fold to
// the right. Whitespace between tokens is ignored.
func Parse(input string) (*Type, error) {
	p := &parser{input: input}
	t, err := p.sum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, errors.Syntax(p.pos, "unexpected trailing input")
	}
	return t, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) sum() (*Type, error) {
	left, err := p.prod()
	if err != nil {
		return nil, err
	}
	if c, ok := p.peek(); ok && c == '+' {
		p.pos++
		right, err := p.sum()
		if err != nil {
			return nil, err
		}
		return Sum(left, right), nil
	}
	return left, nil
}

func (p *parser) prod() (*Type, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}
	if c, ok := p.peek(); ok && c == '*' {
		p.pos++
		right, err := p.prod()
		if err != nil {
			return nil, err
		}
		return Product(left, right), nil
	}
	return left, nil
}

func (p *parser) atom() (*Type, error) {
	c, ok := p.peek()
	if !ok {
		return nil, errors.Syntax(p.pos, "expected a type, found end of input")
	}
	switch c {
	case '(':
		p.pos++
		t, err := p.sum()
		if err != nil {
			return nil, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return nil, errors.Syntax(p.pos, "expected ')'")
		}
		p.pos++
		return t, nil
	case '1':
		p.pos++
		return Unit(), nil
	case '2':
		p.pos++
		if c, ok := p.peek(); !ok || c != '^' {
			return TwoTwoN(0), nil
		}
		p.pos++
		return p.wordWidth()
	default:
		return nil, errors.Syntax(p.pos, "expected '1', '2' or '('")
	}
}

func (p *parser) wordWidth() (*Type, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return nil, errors.Syntax(p.pos, "expected a bit width after '^'")
	}
	width, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return nil, errors.Syntax(start, "bit width out of range")
	}
	if width < 1 || bits.OnesCount(uint(width)) != 1 {
		return nil, errors.Syntax(start, "bit width must be a power of two")
	}
	return TwoTwoN(bits.TrailingZeros(uint(width))), nil
}
