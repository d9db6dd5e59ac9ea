// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import "math"

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// RequireNear fails the test when got and want differ by more than
// tolerance relative to the larger magnitude. Exact equality always
// passes, including for infinities. NaN never compares near anything;
// use RequireNaN for expected NaNs.
func RequireNear(t TB, got, want, tolerance float64, context string) {
	t.Helper()
	if got == want {
		return
	}
	scale := math.Max(math.Abs(got), math.Abs(want))
	if math.Abs(got-want) <= tolerance*scale {
		return
	}
	t.Errorf("%s: got %v, want %v (relative tolerance %v)", context, got, want, tolerance)
}

// RequireExact fails the test when got and want are not bit-identical
// floating-point values. Distinguishes +0 from -0.
func RequireExact(t TB, got, want float64, context string) {
	t.Helper()
	if math.Float64bits(got) != math.Float64bits(want) {
		t.Errorf("%s: got %v (bits %#x), want %v (bits %#x)",
			context, got, math.Float64bits(got), want, math.Float64bits(want))
	}
}

// RequireNaN fails the test when got is not NaN.
func RequireNaN(t TB, got float64, context string) {
	t.Helper()
	if !math.IsNaN(got) {
		t.Errorf("%s: got %v, want NaN", context, got)
	}
}
