// SPDX-License-Identifier: MIT

package calculator_test

import (
	"testing"

	"github.com/katalvlaran/lvlcalc/calculator"
)

// sink keeps results alive so the compiler cannot drop the calls.
var sink float64

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = calculator.Add(float64(i), 2)
	}
}

func BenchmarkDivide(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = calculator.Divide(float64(i), 3)
	}
}

func BenchmarkPower(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = calculator.Power(1.0001, float64(i%64))
	}
}

// BenchmarkAverage measures the mean over a 1024-element series.
func BenchmarkAverage(b *testing.B) {
	xs := make([]float64, 1024)
	for i := range xs {
		xs[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		sink, err = calculator.Average(xs)
		if err != nil {
			b.Fatalf("Average failed: %v", err)
		}
	}
}
