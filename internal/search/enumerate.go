package search

import (
	"math/big"

	"digitchain/internal/arith"
)

// Table maps each reachable positive integer target to the first expression
// found producing it.
type Table map[int]string

// Outcome is everything the enumeration learned about one digit set.
type Outcome struct {
	Digits  Digits
	Targets Table
}

var (
	digitRats [10]*big.Rat
	triples   = arith.Triples()
)

func init() {
	for i := range digitRats {
		digitRats[i] = big.NewRat(int64(i), 1)
	}
}

// Enumerate evaluates every expression over d: each permutation, then each
// operator triple, then each shape. Expressions dividing by zero are skipped.
// A target keeps the first expression that reached it.
func Enumerate(d Digits) *Outcome {
	targets := make(Table)
	for _, p := range Permutations(d) {
		operands := [4]*big.Rat{digitRats[p[0]], digitRats[p[1]], digitRats[p[2]], digitRats[p[3]]}
		for _, ops := range triples {
			for _, s := range arith.Shapes {
				v, ok := s.Eval(operands, ops)
				if !ok || !v.IsInt() || v.Sign() <= 0 {
					continue
				}
				num := v.Num()
				if !num.IsInt64() {
					continue
				}
				t := int(num.Int64())
				if _, exists := targets[t]; exists {
					continue
				}
				targets[t] = s.Format(p, ops)
			}
		}
	}
	return &Outcome{Digits: d, Targets: targets}
}

// RunLength returns the largest n such that 1..n are all targets.
func (o *Outcome) RunLength() int {
	n := 0
	for {
		if _, ok := o.Targets[n+1]; !ok {
			return n
		}
		n++
	}
}

// Chain returns the expressions for targets 1..RunLength in order.
func (o *Outcome) Chain() []string {
	n := o.RunLength()
	out := make([]string, n)
	for i := range out {
		out[i] = o.Targets[i+1]
	}
	return out
}

// Distinct reports how many different targets are reachable.
func (o *Outcome) Distinct() int { return len(o.Targets) }

// Max returns the largest reachable target, or 0 if there is none.
func (o *Outcome) Max() int {
	m := 0
	for t := range o.Targets {
		if t > m {
			m = t
		}
	}
	return m
}
