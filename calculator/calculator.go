// SPDX-License-Identifier: MIT

package calculator

import "math"

// Add returns the sum a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference a − b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product a × b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient a / b.
//
// Errors:
//   - ErrDivisionByZero if b == 0 (including −0).
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, calcErrorf(opDivide, ErrDivisionByZero, "%g / %g", a, b)
	}

	return a / b, nil
}

// Power returns base raised to exp.
//
// The result is exactly math.Pow(base, exp), special cases included:
//   - Power(x, ±0) = 1 for any x
//   - Power(±0, y) = ±Inf for y an odd integer < 0
//   - Power(x, y) = NaN for finite x < 0 and finite non-integer y
func Power(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// SquareRoot returns the non-negative square root of n.
//
// Errors:
//   - ErrInvalidArgument if n < 0.
func SquareRoot(n float64) (float64, error) {
	if n < 0 {
		return 0, calcErrorf(opSquareRoot, ErrInvalidArgument, "negative radicand %g", n)
	}

	return math.Sqrt(n), nil
}

// Percentage returns percent percent of value, i.e. value·percent/100.
// value may be negative; percent may not.
//
// Errors:
//   - ErrInvalidArgument if percent < 0.
func Percentage(value, percent float64) (float64, error) {
	if percent < 0 {
		return 0, calcErrorf(opPercentage, ErrInvalidArgument, "negative percent %g", percent)
	}

	// multiply first so exact inputs like (200, 10) stay exact
	return (value * percent) / percentBase, nil
}

// Average returns the arithmetic mean of numbers.
// The sum is accumulated left to right; numbers is not modified.
//
// Errors:
//   - ErrInvalidArgument if numbers is empty (or nil).
//
// Complexity: O(n) time, O(1) extra space.
func Average(numbers []float64) (float64, error) {
	n := len(numbers)
	if n == 0 {
		return 0, calcErrorf(opAverage, ErrInvalidArgument, "empty sequence")
	}

	var sum float64
	for _, v := range numbers {
		sum += v
	}

	return sum / float64(n), nil
}
