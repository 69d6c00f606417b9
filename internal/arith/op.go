// Package arith holds the exact-arithmetic building blocks of the search:
// the four binary operators over big.Rat, the fixed expression shapes for
// four operands, and a small infix parser used to check results.
package arith

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned by Parse when an expression divides by zero.
var ErrDivisionByZero = errors.New("arith: division by zero")

// op symbols
const (
	opAdd = "+"
	opSub = "-"
	opMul = "*"
	opDiv = "/"
)

// Op is one of the four basic arithmetic operators.
type Op int

const (
	Add Op = iota
	Mul
	Sub
	Div
)

// Ops lists the operators in enumeration order.
var Ops = [...]Op{Add, Mul, Sub, Div}

func (o Op) String() string {
	switch o {
	case Add:
		return opAdd
	case Sub:
		return opSub
	case Mul:
		return opMul
	case Div:
		return opDiv
	}
	return "?"
}

// Apply computes x o y into a new value. ok is false only when o is Div and
// y is zero.
func (o Op) Apply(x, y *big.Rat) (v *big.Rat, ok bool) {
	switch o {
	case Add:
		return new(big.Rat).Add(x, y), true
	case Sub:
		return new(big.Rat).Sub(x, y), true
	case Mul:
		return new(big.Rat).Mul(x, y), true
	case Div:
		if y.Sign() == 0 {
			return nil, false
		}
		return new(big.Rat).Quo(x, y), true
	}
	return nil, false
}

// Triple is an assignment of operators to the three inner nodes of a shape.
// Triple[k] joins operand k and operand k+1 in infix order.
type Triple [3]Op

// Triples returns all 64 operator triples, first operator varying slowest.
func Triples() []Triple {
	out := make([]Triple, 0, len(Ops)*len(Ops)*len(Ops))
	for _, o1 := range Ops {
		for _, o2 := range Ops {
			for _, o3 := range Ops {
				out = append(out, Triple{o1, o2, o3})
			}
		}
	}
	return out
}

func opFromSymbol(b byte) (Op, bool) {
	switch string(b) {
	case opAdd:
		return Add, true
	case opSub:
		return Sub, true
	case opMul:
		return Mul, true
	case opDiv:
		return Div, true
	}
	return 0, false
}
