// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"testing"

	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/testutil"
	"github.com/dimetric/dimetric/lib/unit"
)

func TestVectorConstructionConvertsComponents(t *testing.T) {
	displacement := NewDisplacement(cartesian.Vector{X: 1, Y: 2, Z: 3}, unit.Kilometre)
	value := displacement.Value()
	testutil.RequireNear(t, value.X, 1000, 1e-15, "x in metres")
	testutil.RequireNear(t, value.Y, 2000, 1e-15, "y in metres")
	testutil.RequireNear(t, value.Z, 3000, 1e-15, "z in metres")

	back := displacement.In(unit.Kilometre)
	testutil.RequireNear(t, back.X, 1, 1e-15, "x back in kilometres")
	testutil.RequireNear(t, back.Z, 3, 1e-15, "z back in kilometres")
}

func TestVectorMagnitudeAndDirection(t *testing.T) {
	velocity := NewVelocity(cartesian.Vector{X: 3, Y: 4}, unit.MetrePerSecond)
	testutil.RequireExact(t, velocity.Magnitude().Value(), 5, "3-4-5 magnitude")

	direction, ok := velocity.Direction()
	if !ok {
		t.Fatal("nonzero vector has no direction")
	}
	testutil.RequireNear(t, direction.X, 0.6, 1e-15, "direction x")
	testutil.RequireNear(t, direction.Y, 0.8, 1e-15, "direction y")

	if _, ok := NewVelocity(cartesian.Vector{}, unit.MetrePerSecond).Direction(); ok {
		t.Error("zero vector claims a direction")
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := NewDisplacement(cartesian.Vector{X: 1, Y: 2, Z: 3}, unit.Metre)
	b := NewDisplacement(cartesian.Vector{X: 4, Y: 5, Z: 6}, unit.Metre)

	if got := a.Add(b).Value(); got != (cartesian.Vector{X: 5, Y: 7, Z: 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a).Value(); got != (cartesian.Vector{X: 3, Y: 3, Z: 3}) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2).Value(); got != (cartesian.Vector{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Divide(2).Value(); got != (cartesian.Vector{X: 0.5, Y: 1, Z: 1.5}) {
		t.Errorf("Divide: got %v", got)
	}
}

func TestVelocityDisplacementRelationships(t *testing.T) {
	displacement := NewDisplacement(cartesian.Vector{X: 100, Y: 50, Z: 0}, unit.Metre)
	duration := NewDuration(10, unit.Second)

	velocity := VelocityFromDisplacement(displacement, duration)
	if got := velocity.Value(); got != (cartesian.Vector{X: 10, Y: 5, Z: 0}) {
		t.Errorf("average velocity: got %v", got)
	}
	if got := DisplacementFromVelocity(velocity, duration).Value(); got != displacement.Value() {
		t.Errorf("displacement round trip: got %v", got)
	}
}

func TestVectorFingerprintIncludesAllComponents(t *testing.T) {
	a := NewVelocity(cartesian.Vector{X: 1}, unit.MetrePerSecond)
	b := NewVelocity(cartesian.Vector{Y: 1}, unit.MetrePerSecond)
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("distinct vectors fingerprint identically")
	}
	if a.Fingerprint() != NewVelocity(cartesian.Vector{X: 1}, unit.MetrePerSecond).Fingerprint() {
		t.Error("equal vectors fingerprint differently")
	}
}
