// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"math"
	"testing"
)

func TestSquareRootSpecialCases(t *testing.T) {
	if got := SquareRoot(0.0); got != 0.0 {
		t.Errorf("SquareRoot(0) = %v, want 0", got)
	}
	if got := SquareRoot(-1.0); !math.IsNaN(got) {
		t.Errorf("SquareRoot(-1) = %v, want NaN", got)
	}
	if got := SquareRoot(math.NaN()); !math.IsNaN(got) {
		t.Errorf("SquareRoot(NaN) = %v, want NaN", got)
	}
	if got := SquareRoot(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("SquareRoot(+Inf) = %v, want +Inf", got)
	}
	if got := SquareRoot(math.Inf(-1)); !math.IsNaN(got) {
		t.Errorf("SquareRoot(-Inf) = %v, want NaN", got)
	}
}

func TestSquareRootExactValues(t *testing.T) {
	tests := []struct {
		input, want float64
	}{
		{1.0, 1.0},
		{4.0, 2.0},
		{0.25, 0.5},
		{1e4, 1e2},
		{65536.0, 256.0},
		{18446744073709551616.0, 4294967296.0},
	}
	for _, test := range tests {
		if got := SquareRoot(test.input); got != test.want {
			t.Errorf("SquareRoot(%v) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestSquareRootRoundTrip(t *testing.T) {
	inputs := []float64{
		1e-300, 1e-30, 1e-9, 0.1, 0.3, 0.5, 2.0, 3.0, 9.8,
		123.456, 1e6, 1e30, 1e300, math.Pi, math.E,
	}
	for _, input := range inputs {
		root := SquareRoot(input)
		square := root * root
		relative := math.Abs(square-input) / input
		if relative > 1e-15 {
			t.Errorf("SquareRoot(%v)² = %v, relative error %v", input, square, relative)
		}
	}
}

func TestSquareRootMatchesMathSqrt(t *testing.T) {
	for exponent := -100; exponent <= 100; exponent += 7 {
		input := 1.7 * math.Pow(10, float64(exponent))
		got := SquareRoot(input)
		want := math.Sqrt(input)
		relative := math.Abs(got-want) / want
		if relative > 1e-15 {
			t.Errorf("SquareRoot(%v) = %v, math.Sqrt = %v", input, got, want)
		}
	}
}
