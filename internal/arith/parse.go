package arith

import (
	"fmt"
	"math/big"
)

// maxOperand bounds integer literals accepted by Parse.
const maxOperand = 1_000_000_000

// SyntaxError reports a malformed expression passed to Parse.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("arith: %s at offset %d in %q", e.Msg, e.Pos, e.Expr)
}

// Parse evaluates an infix expression of non-negative integers, + - * / and
// parentheses with the usual precedence and left associativity. It returns
// the exact value and the integer operands in the order they appear.
func Parse(s string) (*big.Rat, []int, error) {
	p := &parser{src: s}
	v, err := p.expr()
	if err != nil {
		return nil, nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return v, p.operands, nil
}

type parser struct {
	src      string
	pos      int
	operands []int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Expr: p.src, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// peekOp returns the operator at the cursor if it is one of want.
func (p *parser) peekOp(want ...Op) (Op, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, false
	}
	o, ok := opFromSymbol(p.src[p.pos])
	if !ok {
		return 0, false
	}
	for _, w := range want {
		if o == w {
			return o, true
		}
	}
	return 0, false
}

func (p *parser) expr() (*big.Rat, error) {
	return p.binary(p.term, Add, Sub)
}

func (p *parser) term() (*big.Rat, error) {
	return p.binary(p.factor, Mul, Div)
}

func (p *parser) binary(next func() (*big.Rat, error), ops ...Op) (*big.Rat, error) {
	v, err := next()
	if err != nil {
		return nil, err
	}
	for {
		o, ok := p.peekOp(ops...)
		if !ok {
			return v, nil
		}
		at := p.pos
		p.pos++
		r, err := next()
		if err != nil {
			return nil, err
		}
		nv, ok := o.Apply(v, r)
		if !ok {
			return nil, fmt.Errorf("%w at offset %d in %q", ErrDivisionByZero, at, p.src)
		}
		v = nv
	}
}

func (p *parser) factor() (*big.Rat, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of expression")
	}
	c := p.src[p.pos]
	switch {
	case c == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return nil, p.errorf("missing ')'")
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9':
		start := p.pos
		n := 0
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			n = n*10 + int(p.src[p.pos]-'0')
			p.pos++
			if n > maxOperand {
				p.pos = start
				return nil, p.errorf("number exceeds %d", maxOperand)
			}
		}
		p.operands = append(p.operands, n)
		return new(big.Rat).SetInt64(int64(n)), nil
	}
	return nil, p.errorf("unexpected %q", c)
}
