// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package cartesian

import "testing"

var identity = Dyad{XX: 1, YY: 1, ZZ: 1}

func dyadsNearlyEqual(a, b Dyad, tolerance float64) bool {
	return nearlyEqual(a.XX, b.XX, tolerance) && nearlyEqual(a.XY, b.XY, tolerance) &&
		nearlyEqual(a.XZ, b.XZ, tolerance) && nearlyEqual(a.YX, b.YX, tolerance) &&
		nearlyEqual(a.YY, b.YY, tolerance) && nearlyEqual(a.YZ, b.YZ, tolerance) &&
		nearlyEqual(a.ZX, b.ZX, tolerance) && nearlyEqual(a.ZY, b.ZY, tolerance) &&
		nearlyEqual(a.ZZ, b.ZZ, tolerance)
}

func TestDyadTraceDeterminant(t *testing.T) {
	d := Dyad{
		XX: 2, XY: 1, XZ: 0,
		YX: 1, YY: 3, YZ: -1,
		ZX: 0, ZY: -1, ZZ: 4,
	}
	if got := d.Trace(); got != 9 {
		t.Errorf("Trace = %v, want 9", got)
	}
	// 2*(12-1) - 1*(4-0) + 0 = 18
	if got := d.Determinant(); got != 18 {
		t.Errorf("Determinant = %v, want 18", got)
	}
	if got := identity.Determinant(); got != 1 {
		t.Errorf("identity Determinant = %v, want 1", got)
	}
}

func TestDyadTranspose(t *testing.T) {
	d := Dyad{
		XX: 1, XY: 2, XZ: 3,
		YX: 4, YY: 5, YZ: 6,
		ZX: 7, ZY: 8, ZZ: 9,
	}
	transposed := d.Transpose()
	if transposed.XY != 4 || transposed.YX != 2 || transposed.ZX != 3 || transposed.XZ != 7 {
		t.Errorf("Transpose = %v", transposed)
	}
	if d.Transpose().Transpose() != d {
		t.Error("double transpose is not the identity")
	}
}

func TestDyadInverse(t *testing.T) {
	d := Dyad{
		XX: 4, XY: 7, XZ: 2,
		YX: 0, YY: 1, YZ: -3,
		ZX: 5, ZY: 0, ZZ: 1,
	}
	inverse, ok := d.Inverse()
	if !ok {
		t.Fatal("Inverse reported singular for an invertible matrix")
	}
	if !dyadsNearlyEqual(d.MultiplyDyad(inverse), identity, 1e-14) {
		t.Errorf("d·d⁻¹ = %v, want identity", d.MultiplyDyad(inverse))
	}
	if !dyadsNearlyEqual(inverse.MultiplyDyad(d), identity, 1e-14) {
		t.Errorf("d⁻¹·d = %v, want identity", inverse.MultiplyDyad(d))
	}
}

func TestDyadInverseSingular(t *testing.T) {
	if _, ok := (Dyad{}).Inverse(); ok {
		t.Error("zero matrix reported an inverse")
	}
	// Rank-one matrix: every row a multiple of (1, 2, 3).
	rankOne := Vector{1, 1, 1}.Dyadic(Vector{1, 2, 3})
	if _, ok := rankOne.Inverse(); ok {
		t.Error("rank-one matrix reported an inverse")
	}
}

func TestDyadAdjugate(t *testing.T) {
	d := Dyad{
		XX: 1, XY: 2, XZ: 3,
		YX: 0, YY: 1, YZ: 4,
		ZX: 5, ZY: 6, ZZ: 0,
	}
	// adjugate(d)·d == det(d)·identity, even without dividing out.
	product := d.Adjugate().MultiplyDyad(d)
	want := identity.Multiply(d.Determinant())
	if !dyadsNearlyEqual(product, want, 1e-14) {
		t.Errorf("adj(d)·d = %v, want %v", product, want)
	}
}

func TestDyadVectorProduct(t *testing.T) {
	if got := identity.MultiplyVector(Vector{1, 2, 3}); got != (Vector{1, 2, 3}) {
		t.Errorf("identity·v = %v", got)
	}
	d := Dyad{
		XX: 0, XY: 1, XZ: 0,
		YX: -1, YY: 0, YZ: 0,
		ZX: 0, ZY: 0, ZZ: 1,
	}
	// Rotation by 90° about z.
	if got, want := d.MultiplyVector(Vector{1, 0, 0}), (Vector{0, -1, 0}); got != want {
		t.Errorf("rotation·x̂ = %v, want %v", got, want)
	}
}

func TestDyadString(t *testing.T) {
	d := Dyad{XX: 1, YY: 2, ZZ: 3.5}
	if got, want := d.String(), "(1, 0, 0; 0, 2, 0; 0, 0, 3.5)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
