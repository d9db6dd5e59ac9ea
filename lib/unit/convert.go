// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/cartesian"

// Convert expresses a value measured in from into to. Converting a
// unit to itself returns the input untouched; this shortcut is what
// makes A→A round-trips bit-exact even for offset transforms.
// Otherwise the value is mapped through the category's standard unit:
// to-standard for from, then from-standard for to unless to is already
// the standard unit.
func Convert[U Measure[U]](value float64, from, to U) float64 {
	if from == to {
		return value
	}
	c := from.category()
	value = c.units[from].transform.toStandard(value)
	if to != c.standard {
		value = c.units[to].transform.fromStandard(value)
	}
	return value
}

// ConvertSlice converts every element of values from from to to, in
// place. The scalar transform is applied independently per element,
// which is dimensionally sound because all transforms are
// component-wise affine.
func ConvertSlice[U Measure[U]](values []float64, from, to U) {
	if from == to {
		return
	}
	c := from.category()
	toStandard := c.units[from].transform
	fromStandard := c.units[to].transform
	skipFromStandard := to == c.standard
	for i, value := range values {
		value = toStandard.toStandard(value)
		if !skipFromStandard {
			value = fromStandard.fromStandard(value)
		}
		values[i] = value
	}
}

// ConvertVector converts each component of a vector.
func ConvertVector[U Measure[U]](v cartesian.Vector, from, to U) cartesian.Vector {
	components := [3]float64{v.X, v.Y, v.Z}
	ConvertSlice(components[:], from, to)
	return cartesian.Vector{X: components[0], Y: components[1], Z: components[2]}
}

// ConvertSymmetricDyad converts each independent component of a
// symmetric dyadic tensor.
func ConvertSymmetricDyad[U Measure[U]](s cartesian.SymmetricDyad, from, to U) cartesian.SymmetricDyad {
	components := [6]float64{s.XX, s.XY, s.XZ, s.YY, s.YZ, s.ZZ}
	ConvertSlice(components[:], from, to)
	return cartesian.SymmetricDyad{
		XX: components[0], XY: components[1], XZ: components[2],
		YY: components[3], YZ: components[4], ZZ: components[5],
	}
}

// ConvertDyad converts each component of a dyadic tensor.
func ConvertDyad[U Measure[U]](d cartesian.Dyad, from, to U) cartesian.Dyad {
	components := [9]float64{
		d.XX, d.XY, d.XZ,
		d.YX, d.YY, d.YZ,
		d.ZX, d.ZY, d.ZZ,
	}
	ConvertSlice(components[:], from, to)
	return cartesian.Dyad{
		XX: components[0], XY: components[1], XZ: components[2],
		YX: components[3], YY: components[4], YZ: components[5],
		ZX: components[6], ZY: components[7], ZZ: components[8],
	}
}
