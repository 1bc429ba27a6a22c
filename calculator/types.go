// SPDX-License-Identifier: MIT

package calculator

// Operation name constants for unified error wrapping.
const (
	opDivide     = "Divide"
	opSquareRoot = "SquareRoot"
	opPercentage = "Percentage"
	opAverage    = "Average"
)

// percentBase is the denominator used by Percentage.
const percentBase = 100.0

// Calculator groups the arithmetic operations behind a single value.
// It carries no state; the zero value is ready to use and may be shared
// between goroutines freely. Every method delegates to the package-level
// function of the same name.
type Calculator struct{}

// New returns a Calculator. Equivalent to Calculator{}.
func New() Calculator {
	return Calculator{}
}

// Add returns a + b. See the package-level Add.
func (Calculator) Add(a, b float64) float64 { return Add(a, b) }

// Subtract returns a − b. See the package-level Subtract.
func (Calculator) Subtract(a, b float64) float64 { return Subtract(a, b) }

// Multiply returns a × b. See the package-level Multiply.
func (Calculator) Multiply(a, b float64) float64 { return Multiply(a, b) }

// Divide returns a / b. See the package-level Divide.
func (Calculator) Divide(a, b float64) (float64, error) { return Divide(a, b) }

// Power returns base^exp. See the package-level Power.
func (Calculator) Power(base, exp float64) float64 { return Power(base, exp) }

// SquareRoot returns √n. See the package-level SquareRoot.
func (Calculator) SquareRoot(n float64) (float64, error) { return SquareRoot(n) }

// Percentage returns percent percent of value. See the package-level Percentage.
func (Calculator) Percentage(value, percent float64) (float64, error) {
	return Percentage(value, percent)
}

// Average returns the arithmetic mean of numbers. See the package-level Average.
func (Calculator) Average(numbers []float64) (float64, error) { return Average(numbers) }
