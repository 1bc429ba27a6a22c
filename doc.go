// Package lvlcalc is a tiny arithmetic toolkit: a stateless calculator
// over float64 with well-defined behavior on invalid input.
//
// 🚀 What's inside?
//
//	calculator/ — Add, Subtract, Multiply, Divide, Power, SquareRoot,
//	              Percentage and Average, plus the Calculator value type
//
// ✨ Error policy:
//
//   - Divide fails with calculator.ErrDivisionByZero when the divisor is 0.
//   - SquareRoot, Percentage and Average fail with
//     calculator.ErrInvalidArgument on a negative radicand, a negative
//     percent or an empty sequence.
//   - Errors are wrapped with the operation name; match them via errors.Is.
//
// Pure Go, no cgo, no state: every call is independent and safe to make
// from any number of goroutines.
//
//	go get github.com/katalvlaran/lvlcalc/calculator
package lvlcalc
