// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package numeric

import "math"

// Exact powers of two used by the range-reduction ladder, paired with
// their exact square roots. Powers of two are exactly representable in
// binary floating point, so reduction introduces no rounding error.
const (
	twoTo2  = 4.0
	twoTo4  = 16.0
	twoTo8  = 256.0
	twoTo16 = 65536.0
	twoTo32 = 4294967296.0
	twoTo64 = 18446744073709551616.0

	rootTwoTo2  = 2.0
	rootTwoTo4  = 4.0
	rootTwoTo8  = 16.0
	rootTwoTo16 = 256.0
	rootTwoTo32 = 65536.0
	rootTwoTo64 = 4294967296.0
)

// SquareRoot returns the square root of value.
//
// Special cases are resolved before the general solver runs:
// SquareRoot(0) = 0 (zero is not a fixed point of the solver),
// SquareRoot(x < 0) = NaN, SquareRoot(NaN) = NaN, and
// SquareRoot(+Inf) = +Inf.
func SquareRoot(value float64) float64 {
	switch {
	case value == 0.0:
		return 0.0
	case value < 0.0 || math.IsNaN(value):
		return math.NaN()
	case math.IsInf(value, 1):
		return value
	}
	return solve(value)
}

// solve reduces value into [0.25, 4.0) by factoring out exact powers
// of two, largest rung first, accumulating the corresponding exact
// square-root factor through direct recursion. The ladder is bounded:
// finite float64 magnitudes reach the target interval in at most a
// handful of steps.
func solve(value float64) float64 {
	switch {
	case value >= twoTo64:
		return rootTwoTo64 * solve(value/twoTo64)
	case value >= twoTo32:
		return rootTwoTo32 * solve(value/twoTo32)
	case value >= twoTo16:
		return rootTwoTo16 * solve(value/twoTo16)
	case value >= twoTo8:
		return rootTwoTo8 * solve(value/twoTo8)
	case value >= twoTo4:
		return rootTwoTo4 * solve(value/twoTo4)
	case value >= twoTo2:
		return rootTwoTo2 * solve(value/twoTo2)
	case value < 1.0/twoTo64:
		return solve(value*twoTo64) / rootTwoTo64
	case value < 1.0/twoTo32:
		return solve(value*twoTo32) / rootTwoTo32
	case value < 1.0/twoTo16:
		return solve(value*twoTo16) / rootTwoTo16
	case value < 1.0/twoTo8:
		return solve(value*twoTo8) / rootTwoTo8
	case value < 1.0/twoTo4:
		return solve(value*twoTo4) / rootTwoTo4
	case value < 1.0/twoTo2:
		return solve(value*twoTo2) / rootTwoTo2
	}
	return newton(value)
}

// newton runs the Newton–Raphson fixed point x ← (x + value/x)/2 from
// x₀ = value. Termination is bit-exact equality of successive
// iterates, not an epsilon tolerance: on [0.25, 4.0) the iteration
// reaches its floating-point fixed point in a few steps.
func newton(value float64) float64 {
	current := value
	previous := 0.0
	for current != previous {
		previous = current
		current = 0.5 * (previous + value/previous)
	}
	return current
}
