// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"testing"

	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/testutil"
	"github.com/dimetric/dimetric/lib/unit"
)

func TestStressConstructionConvertsComponents(t *testing.T) {
	stress := NewStress(cartesian.SymmetricDyad{XX: 1, YY: 2, ZZ: 3}, unit.Kilopascal)
	value := stress.Value()
	testutil.RequireNear(t, value.XX, 1000, 1e-15, "xx in pascals")
	testutil.RequireNear(t, value.YY, 2000, 1e-15, "yy in pascals")
	testutil.RequireNear(t, value.ZZ, 3000, 1e-15, "zz in pascals")

	back := stress.In(unit.Kilopascal)
	testutil.RequireNear(t, back.XX, 1, 1e-15, "xx back in kilopascals")
}

func TestStressTrace(t *testing.T) {
	stress := NewStress(cartesian.SymmetricDyad{XX: 1, XY: 9, YY: 2, ZZ: 3}, unit.Pascal)
	testutil.RequireExact(t, stress.Trace().Value(), 6, "trace ignores off-diagonals")
}

func TestTractionFromStress(t *testing.T) {
	// Hydrostatic pressure p pushes along every normal with magnitude p.
	hydrostatic := NewStress(cartesian.SymmetricDyad{XX: 5, YY: 5, ZZ: 5}, unit.Pascal)
	traction := TractionFromStress(hydrostatic, cartesian.Vector{X: 1})
	if got := traction.Value(); got != (cartesian.Vector{X: 5}) {
		t.Errorf("hydrostatic traction: got %v", got)
	}

	// A pure shear stress turns an x-normal into a y-traction.
	shear := NewStress(cartesian.SymmetricDyad{XY: 2}, unit.Pascal)
	traction = TractionFromStress(shear, cartesian.Vector{X: 1})
	if got := traction.Value(); got != (cartesian.Vector{Y: 2}) {
		t.Errorf("shear traction: got %v", got)
	}

	force := ForceVectorFromTraction(traction, NewArea(3, unit.SquareMetre))
	if got := force.Value(); got != (cartesian.Vector{Y: 6}) {
		t.Errorf("force from traction: got %v", got)
	}
}

func TestVelocityGradientSymmetricPart(t *testing.T) {
	gradient := NewVelocityGradient(cartesian.Dyad{
		XX: 1, XY: 4, XZ: 0,
		YX: 2, YY: 5, YZ: 8,
		ZX: 0, ZY: 6, ZZ: 9,
	}, unit.Hertz)

	rate := StrainRateFromVelocityGradient(gradient)
	want := cartesian.SymmetricDyad{XX: 1, XY: 3, XZ: 0, YY: 5, YZ: 7, ZZ: 9}
	if got := rate.Value(); got != want {
		t.Errorf("strain rate: got %+v, want %+v", got, want)
	}

	if gradient.IsSymmetric() {
		t.Error("asymmetric gradient reported symmetric")
	}
	symmetric := NewVelocityGradient(rate.Value().Dyad(), unit.Hertz)
	if !symmetric.IsSymmetric() {
		t.Error("expanded strain rate not symmetric")
	}
}

func TestDyadArithmetic(t *testing.T) {
	a := NewVelocityGradient(cartesian.Dyad{XX: 1, YY: 2, ZZ: 3}, unit.Hertz)
	b := NewVelocityGradient(cartesian.Dyad{XX: 4, YY: 5, ZZ: 6}, unit.Hertz)

	if got := a.Add(b).Trace().Value(); got != 21 {
		t.Errorf("Add trace: got %v", got)
	}
	if got := b.Subtract(a).Trace().Value(); got != 9 {
		t.Errorf("Subtract trace: got %v", got)
	}
	if got := a.Multiply(2).Trace().Value(); got != 12 {
		t.Errorf("Multiply trace: got %v", got)
	}
	if got := a.Divide(2).Trace().Value(); got != 3 {
		t.Errorf("Divide trace: got %v", got)
	}
}

func TestSymmetricDyadFingerprint(t *testing.T) {
	a := NewStress(cartesian.SymmetricDyad{XY: 1}, unit.Pascal)
	b := NewStress(cartesian.SymmetricDyad{XZ: 1}, unit.Pascal)
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("distinct stresses fingerprint identically")
	}
}
