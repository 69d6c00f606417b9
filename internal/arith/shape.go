package arith

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// node is a binary tree over the leaf interval [lo, hi]. Inner nodes join
// [lo, split] and [split+1, hi] with operator number split.
type node struct {
	lo, hi      int
	split       int
	left, right *node
}

func leaf(i int) *node { return &node{lo: i, hi: i} }

func join(l, r *node) *node {
	return &node{lo: l.lo, hi: r.hi, split: l.hi, left: l, right: r}
}

func (n *node) isLeaf() bool { return n.left == nil }

// Shape is a fixed parenthesization of operands in their given order.
type Shape struct {
	root *node
}

// Shapes are the five parenthesizations of four operands, in enumeration
// order.
var Shapes = [...]Shape{
	{join(join(join(leaf(0), leaf(1)), leaf(2)), leaf(3))}, // ((a op1 b) op2 c) op3 d
	{join(join(leaf(0), leaf(1)), join(leaf(2), leaf(3)))}, // (a op1 b) op2 (c op3 d)
	{join(join(leaf(0), join(leaf(1), leaf(2))), leaf(3))}, // (a op1 (b op2 c)) op3 d
	{join(leaf(0), join(join(leaf(1), leaf(2)), leaf(3)))}, // a op1 ((b op2 c) op3 d)
	{join(leaf(0), join(leaf(1), join(leaf(2), leaf(3))))}, // a op1 (b op2 (c op3 d))
}

// Leaves reports the number of operands of the shape.
func (s Shape) Leaves() int { return s.root.hi - s.root.lo + 1 }

// Eval evaluates a four-operand shape. ok is false when some division in the
// tree has a zero divisor.
func (s Shape) Eval(operands [4]*big.Rat, ops Triple) (*big.Rat, bool) {
	return s.root.eval(&operands, &ops)
}

func (n *node) eval(operands *[4]*big.Rat, ops *Triple) (*big.Rat, bool) {
	if n.isLeaf() {
		return operands[n.lo], true
	}
	l, ok := n.left.eval(operands, ops)
	if !ok {
		return nil, false
	}
	r, ok := n.right.eval(operands, ops)
	if !ok {
		return nil, false
	}
	return ops[n.split].Apply(l, r)
}

// Format renders the expression fully parenthesized, e.g. "(4 * (1 + 3)) / 2".
func (s Shape) Format(digits [4]int, ops Triple) string {
	var sb strings.Builder
	s.root.write(&sb,
		func(i int) string { return strconv.Itoa(digits[i]) },
		func(k int) string { return ops[k].String() })
	return sb.String()
}

// Pattern renders the shape with letters for operands and numbered
// operators, e.g. "(a op1 b) op2 (c op3 d)".
func (s Shape) Pattern() string {
	var sb strings.Builder
	s.root.write(&sb,
		func(i int) string { return string(rune('a' + i)) },
		func(k int) string { return fmt.Sprintf("op%d", k+1) })
	return sb.String()
}

func (s Shape) String() string { return s.Pattern() }

func (n *node) write(sb *strings.Builder, operand, op func(int) string) {
	if n.isLeaf() {
		sb.WriteString(operand(n.lo))
		return
	}
	n.left.writeChild(sb, operand, op)
	sb.WriteByte(' ')
	sb.WriteString(op(n.split))
	sb.WriteByte(' ')
	n.right.writeChild(sb, operand, op)
}

func (n *node) writeChild(sb *strings.Builder, operand, op func(int) string) {
	if n.isLeaf() {
		n.write(sb, operand, op)
		return
	}
	sb.WriteByte('(')
	n.write(sb, operand, op)
	sb.WriteByte(')')
}

type interval struct{ l, r int }

// Trees generates every binary parenthesization of n ordered operands by
// splitting each interval at every position. For n = 4 it yields the same
// five trees as Shapes, in a different order.
func Trees(n int) []Shape {
	if n < 1 {
		return nil
	}
	cache := make(map[interval][]*node)
	var build func(l, r int) []*node
	build = func(l, r int) []*node {
		key := interval{l, r}
		if ts, ok := cache[key]; ok {
			return ts
		}
		var ts []*node
		if l == r {
			ts = []*node{leaf(l)}
		}
		for k := l; k < r; k++ {
			for _, left := range build(l, k) {
				for _, right := range build(k+1, r) {
					ts = append(ts, join(left, right))
				}
			}
		}
		cache[key] = ts
		return ts
	}
	roots := build(0, n-1)
	out := make([]Shape, len(roots))
	for i, root := range roots {
		out[i] = Shape{root}
	}
	return out
}
