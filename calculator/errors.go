// SPDX-License-Identifier: MIT
// Package calculator: sentinel error set.
// Operations return these sentinels wrapped with an op tag; callers match
// them via errors.Is. No operation panics on user input.

package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor equals zero.
	ErrDivisionByZero = errors.New("calculator: division by zero")

	// ErrInvalidArgument is returned for semantically invalid numeric input:
	// a negative radicand, a negative percentage or an empty sequence.
	ErrInvalidArgument = errors.New("calculator: invalid argument")
)

// calcErrorf wraps err with the operation tag and a short detail clause.
// The result still matches err under errors.Is.
func calcErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
