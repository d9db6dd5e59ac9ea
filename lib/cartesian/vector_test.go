// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package cartesian

import (
	"math"
	"testing"
)

func nearlyEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= tolerance*scale
}

func TestVectorArithmetic(t *testing.T) {
	v := Vector{1, 2, 3}
	w := Vector{4, -5, 6}

	if got, want := v.Add(w), (Vector{5, -3, 9}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := v.Subtract(w), (Vector{-3, 7, -3}); got != want {
		t.Errorf("Subtract = %v, want %v", got, want)
	}
	if got, want := v.Multiply(2), (Vector{2, 4, 6}); got != want {
		t.Errorf("Multiply = %v, want %v", got, want)
	}
	if got, want := v.Divide(2), (Vector{0.5, 1, 1.5}); got != want {
		t.Errorf("Divide = %v, want %v", got, want)
	}
}

func TestVectorDotCross(t *testing.T) {
	v := Vector{1, 2, 3}
	w := Vector{4, -5, 6}

	if got := v.Dot(w); got != 4.0-10.0+18.0 {
		t.Errorf("Dot = %v", got)
	}

	cross := v.Cross(w)
	want := Vector{2*6 - 3*(-5), 3*4 - 1*6, 1*(-5) - 2*4}
	if cross != want {
		t.Errorf("Cross = %v, want %v", cross, want)
	}

	// The cross product is orthogonal to both operands.
	if got := cross.Dot(v); got != 0 {
		t.Errorf("cross·v = %v, want 0", got)
	}
	if got := cross.Dot(w); got != 0 {
		t.Errorf("cross·w = %v, want 0", got)
	}
}

func TestVectorMagnitude(t *testing.T) {
	if got := (Vector{3, 4, 0}).Magnitude(); got != 5.0 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := (Vector{}).Magnitude(); got != 0.0 {
		t.Errorf("zero Magnitude = %v, want 0", got)
	}

	direction, ok := (Vector{3, 4, 0}).Direction()
	if !ok {
		t.Fatal("Direction reported no direction for a non-zero vector")
	}
	if !nearlyEqual(direction.Magnitude(), 1.0, 1e-15) {
		t.Errorf("unit vector magnitude = %v", direction.Magnitude())
	}
	if _, ok := (Vector{}).Direction(); ok {
		t.Error("zero vector reported a direction")
	}
}

func TestVectorDyadic(t *testing.T) {
	d := Vector{1, 2, 3}.Dyadic(Vector{4, 5, 6})
	want := Dyad{
		XX: 4, XY: 5, XZ: 6,
		YX: 8, YY: 10, YZ: 12,
		ZX: 12, ZY: 15, ZZ: 18,
	}
	if d != want {
		t.Errorf("Dyadic = %v, want %v", d, want)
	}
	// The outer product of a vector with itself is symmetric.
	if !(Vector{1, 2, 3}).Dyadic(Vector{1, 2, 3}).IsSymmetric() {
		t.Error("self outer product is not symmetric")
	}
}

func TestVectorString(t *testing.T) {
	if got, want := (Vector{1, 2.5, -3}).String(), "(1, 2.5, -3)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
