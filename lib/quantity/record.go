// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"fmt"

	"github.com/dimetric/dimetric/lib/unit"
)

// Record is the machine-interchange form of a scalar quantity: a
// numeric value plus a unit spelling. It carries struct tags for the
// codecs this repository speaks, so it round-trips through JSON,
// YAML, and deterministic CBOR unchanged.
type Record struct {
	Value float64 `json:"value" yaml:"value" cbor:"value"`
	Unit  string  `json:"unit" yaml:"unit" cbor:"unit"`
}

// Record returns the interchange form of the quantity in the given
// unit.
func (q Scalar[U]) Record(u U) Record {
	return Record{Value: q.In(u), Unit: unit.Abbreviation(u)}
}

// ScalarFromRecord parses the record's unit spelling within category
// U and constructs the quantity. Any spelling the category knows is
// accepted, not just the canonical abbreviation.
func ScalarFromRecord[U unit.Measure[U]](r Record) (Scalar[U], error) {
	u, ok := unit.Parse[U](r.Unit)
	if !ok {
		return Scalar[U]{}, fmt.Errorf("category %q has no unit spelled %q",
			unit.CategoryName[U](), r.Unit)
	}
	return NewScalar(r.Value, u), nil
}
