// Package chips provides overflow-checked integer arithmetic for chip amounts.
//
// Every money computation in the settlement core goes through these helpers.
// An operation either returns the mathematically exact result or an error;
// nothing ever wraps, saturates or truncates silently.
package chips

import (
	"errors"
	"math"
)

var (
	// ErrOverflow is returned when a result would not fit in an int64.
	ErrOverflow = errors.New("chips: arithmetic overflow")

	// ErrDivideByZero is returned by Div when the divisor is zero.
	ErrDivideByZero = errors.New("chips: divide by zero")
)

// Add returns a+b, or ErrOverflow if the sum is not representable.
func Add(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub returns a-b, or ErrOverflow if the difference is not representable.
func Sub(a, b int64) (int64, error) {
	if b < 0 && a > math.MaxInt64+b {
		return 0, ErrOverflow
	}
	if b > 0 && a < math.MinInt64+b {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// Mul returns a*b, or ErrOverflow if the product is not representable.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 * -1 is the one case the division check below misses.
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, nil
		}
		if b == 1 {
			return a, nil
		}
		return 0, ErrOverflow
	}
	result := a * b
	if result/b != a {
		return 0, ErrOverflow
	}
	return result, nil
}

// Div returns the truncated quotient a/b. It fails with ErrDivideByZero when
// b is zero and ErrOverflow for MinInt64 / -1.
func Div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}
