// SPDX-License-Identifier: MIT

// Package calculator provides a small, stateless set of arithmetic
// operations over float64 with explicit error returns for invalid input.
//
// 🚀 What's inside?
//
//	Add, Subtract, Multiply  — plain IEEE-754 arithmetic, never fail
//	Divide                   — fails with ErrDivisionByZero when b == 0
//	Power                    — math.Pow semantics, never fails
//	SquareRoot               — fails with ErrInvalidArgument when n < 0
//	Percentage               — value·percent/100, ErrInvalidArgument when percent < 0
//	Average                  — arithmetic mean, ErrInvalidArgument on empty input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlcalc/calculator"
//
//	q, err := calculator.Divide(7, 2) // 3.5, nil
//	if errors.Is(err, calculator.ErrDivisionByZero) {
//	  // handle
//	}
//
//	var c calculator.Calculator       // zero value is ready to use
//	avg, err := c.Average([]float64{1.5, 2.5, 3.5}) // 2.5, nil
//
// Numeric policy:
//
//   - NaN never triggers an error: every guard is a plain comparison and
//     NaN compares false, so NaN flows through to the result.
//   - −0 is treated as zero by Divide.
//   - Power returns exactly what math.Pow returns, including NaN for a
//     negative base with a fractional exponent and ±Inf for 0 raised to a
//     negative exponent.
//
// All functions are pure and safe for concurrent use.
package calculator
