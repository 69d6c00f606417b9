package search

import (
	"fmt"
	"math/big"
	"sort"

	"digitchain/internal/arith"
)

// Verify checks that expr evaluates exactly to target and uses each digit of
// d exactly once.
func Verify(d Digits, target int, expr string) error {
	v, operands, err := arith.Parse(expr)
	if err != nil {
		return fmt.Errorf("verify %d = %s: %w", target, expr, err)
	}
	if v.Cmp(big.NewRat(int64(target), 1)) != 0 {
		return fmt.Errorf("verify %d = %s: evaluates to %s", target, expr, v.RatString())
	}
	sorted := append([]int(nil), operands...)
	sort.Ints(sorted)
	if len(sorted) != Size {
		return fmt.Errorf("verify %d = %s: uses %d operands, want %d", target, expr, len(sorted), Size)
	}
	want := d
	sort.Ints(want[:])
	for i, x := range sorted {
		if x != want[i] {
			return fmt.Errorf("verify %d = %s: operands %v do not match digits %v", target, expr, operands, d[:])
		}
	}
	return nil
}

// VerifyChain runs Verify over exprs, where exprs[i] must produce i+1.
func VerifyChain(d Digits, exprs []string) error {
	for i, e := range exprs {
		if err := Verify(d, i+1, e); err != nil {
			return err
		}
	}
	return nil
}
