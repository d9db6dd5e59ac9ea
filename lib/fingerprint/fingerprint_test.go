// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"testing"

	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/dimension"
)

func TestEqualInputsProduceEqualFingerprints(t *testing.T) {
	if Set(dimension.Set{Time: -1}) != Set(dimension.Set{Time: -1}) {
		t.Error("equal sets fingerprint differently")
	}
	if Scalar(1.11) != Scalar(1.11) {
		t.Error("equal scalars fingerprint differently")
	}
	v := cartesian.Vector{X: 1, Y: 2, Z: 3}
	if Vector(v) != Vector(v) {
		t.Error("equal vectors fingerprint differently")
	}
	if Quantity("energy", 1.0) != Quantity("energy", 1.0) {
		t.Error("equal quantities fingerprint differently")
	}
}

func TestDistinctFixturesHaveDistinctFingerprints(t *testing.T) {
	fixtures := map[string]Fingerprint{
		"set time":            Set(dimension.Set{Time: 1}),
		"set frequency":       Set(dimension.Set{Time: -1}),
		"set dimensionless":   Set(dimension.Set{}),
		"scalar zero":         Scalar(0.0),
		"scalar one":          Scalar(1.0),
		"vector unit x":       Vector(cartesian.Vector{X: 1}),
		"vector unit y":       Vector(cartesian.Vector{Y: 1}),
		"symmetric identity":  SymmetricDyad(cartesian.SymmetricDyad{XX: 1, YY: 1, ZZ: 1}),
		"dyad identity":       Dyad(cartesian.Dyad{XX: 1, YY: 1, ZZ: 1}),
		"duration one second": Quantity("time", 1.0),
		"length one metre":    Quantity("length", 1.0),
		"energy one joule":    Quantity("energy", 1.0),
	}

	seen := make(map[Fingerprint]string, len(fixtures))
	for name, digest := range fixtures {
		if other, collision := seen[digest]; collision {
			t.Errorf("%q and %q share fingerprint %s", name, other, digest)
		}
		seen[digest] = name
	}
}

func TestDomainSeparation(t *testing.T) {
	// A scalar 1.0 in the value domain must not collide with a
	// one-component quantity, and the dimensionless set must not
	// collide with anything either, even though the raw payloads are
	// trivially similar.
	if Scalar(1.0) == Quantity("", 1.0) {
		t.Error("value and quantity domains collide")
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	original := Quantity("pressure", 101325.0)
	parsed, err := Parse(original.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != original {
		t.Error("hex round trip changed the fingerprint")
	}

	if _, err := Parse("zz"); err == nil {
		t.Error("invalid hex accepted")
	}
	if _, err := Parse("abcd"); err == nil {
		t.Error("short hex accepted")
	}
}

func TestSignedZeroFingerprintsDiffer(t *testing.T) {
	// Fingerprints hash IEEE-754 bit patterns, so the signed zeros
	// are distinct even though they compare ==.
	zero := 0.0
	if Scalar(zero) == Scalar(-zero) {
		t.Error("+0 and -0 fingerprint identically")
	}
}
