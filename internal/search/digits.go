package search

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidDigits is wrapped by ParseDigits failures.
var ErrInvalidDigits = errors.New("invalid digit set")

// Size is the number of digits in a set.
const Size = 4

// Pool holds the digits a set is drawn from, in ascending order.
var Pool = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// Digits is a set of distinct digits. Sets produced by this package are
// sorted ascending; permutations of them are not.
type Digits [Size]int

// String renders the set as "1 < 2 < 5 < 8".
func (d Digits) String() string {
	parts := make([]string, len(d))
	for i, x := range d {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " < ")
}

// Key renders the set as its concatenated digits, e.g. "1258".
func (d Digits) Key() string {
	var sb strings.Builder
	for _, x := range d {
		sb.WriteString(strconv.Itoa(x))
	}
	return sb.String()
}

// ParseDigits reads a digit set written as "1258", "1,2,5,8" or "1 2 5 8".
// The result is sorted ascending.
func ParseDigits(s string) (Digits, error) {
	var d Digits
	n := 0
	seen := make(map[int]bool, Size)
	for _, c := range s {
		switch {
		case c == ',' || c == ' ':
			continue
		case c < '1' || c > '9':
			return Digits{}, fmt.Errorf("%w %q: %q is not a digit from 1 to 9", ErrInvalidDigits, s, c)
		}
		x := int(c - '0')
		if seen[x] {
			return Digits{}, fmt.Errorf("%w %q: digit %d repeated", ErrInvalidDigits, s, x)
		}
		if n == Size {
			return Digits{}, fmt.Errorf("%w %q: want %d digits", ErrInvalidDigits, s, Size)
		}
		seen[x] = true
		d[n] = x
		n++
	}
	if n != Size {
		return Digits{}, fmt.Errorf("%w %q: want %d digits, got %d", ErrInvalidDigits, s, Size, n)
	}
	sort.Ints(d[:])
	return d, nil
}

// Combinations returns every set of Size distinct values from pool, in
// lexicographic order of positions in pool.
func Combinations(pool []int) []Digits {
	var out []Digits
	var cur Digits
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == Size {
			out = append(out, cur)
			return
		}
		for i := start; i <= len(pool)-(Size-depth); i++ {
			cur[depth] = pool[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// Permutations returns all orderings of d, lexicographic by position in d.
func Permutations(d Digits) []Digits {
	out := make([]Digits, 0, 24)
	var cur Digits
	var used [Size]bool
	var rec func(depth int)
	rec = func(depth int) {
		if depth == Size {
			out = append(out, cur)
			return
		}
		for i, x := range d {
			if used[i] {
				continue
			}
			used[i] = true
			cur[depth] = x
			rec(depth + 1)
			used[i] = false
		}
	}
	rec(0)
	return out
}
