// Package arith provides overflow-checked 64-bit integer arithmetic for
// calendar math.
//
// Multi-century date arithmetic routinely approaches the limits of int64, so
// every calendrical computation in this module routes through these functions
// rather than raw operators. Each function returns [ErrOverflow] when the
// mathematical result cannot be represented, rather than silently wrapping.
package arith

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a result cannot be represented in the target
// integer type.
var ErrOverflow = errors.New("arithmetic overflow")

// Add returns a + b, or ErrOverflow if the sum overflows int64.
func Add(a, b int64) (int64, error) {
	sum := a + b
	// Overflow iff both operands share a sign the sum does not.
	if (a > 0 && b > 0 && sum <= 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

// Sub returns a - b, or ErrOverflow if the difference overflows int64.
func Sub(a, b int64) (int64, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return diff, nil
}

// Mul returns a * b, or ErrOverflow if the product overflows int64.
func Mul(a, b int64) (int64, error) {
	switch {
	case a == 0 || b == 0:
		return 0, nil
	case a == 1:
		return b, nil
	case b == 1:
		return a, nil
	}
	prod := a * b
	if prod/b != a || (a == math.MinInt64 && b == -1) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return prod, nil
}

// Neg returns -a, or ErrOverflow when a is the minimum int64, whose negation
// is unrepresentable.
func Neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("%w: -(%d)", ErrOverflow, a)
	}
	return -a, nil
}

// ToInt32 narrows a to int, or returns ErrOverflow when a lies outside the
// 32-bit signed range.
func ToInt32(a int64) (int, error) {
	if a < math.MinInt32 || a > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d exceeds int32", ErrOverflow, a)
	}
	return int(a), nil
}

// FloorDiv returns the largest integer q such that q <= a/b, for positive b.
// Unlike Go's truncating division it rounds toward negative infinity, which
// epoch-day conversions depend on for dates before the epoch.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a - FloorDiv(a, b)*b, always in [0, b) for positive b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}
