// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/fingerprint"
	"github.com/dimetric/dimetric/lib/unit"
)

var (
	symmetricComponentNames = []string{"xx", "xy", "xz", "yy", "yz", "zz"}
	dyadComponentNames      = []string{"xx", "xy", "xz", "yx", "yy", "yz", "zx", "zy", "zz"}
)

// SymmetricDyad is a symmetric dyadic tensor quantity in the unit
// category U, stored in the category's standard unit.
type SymmetricDyad[U unit.Measure[U]] struct {
	value cartesian.SymmetricDyad
}

// NewSymmetricDyad constructs a symmetric dyadic tensor quantity from
// components expressed in the given unit, converting to the standard
// unit once.
func NewSymmetricDyad[U unit.Measure[U]](value cartesian.SymmetricDyad, u U) SymmetricDyad[U] {
	return SymmetricDyad[U]{value: unit.ConvertSymmetricDyad(value, u, unit.Standard[U]())}
}

// SymmetricDyadFromStandard wraps a tensor already expressed in the
// standard unit without any conversion.
func SymmetricDyadFromStandard[U unit.Measure[U]](value cartesian.SymmetricDyad) SymmetricDyad[U] {
	return SymmetricDyad[U]{value: value}
}

// Value returns the stored standard-unit tensor.
func (q SymmetricDyad[U]) Value() cartesian.SymmetricDyad {
	return q.value
}

// In returns the tensor converted to the given unit.
func (q SymmetricDyad[U]) In(u U) cartesian.SymmetricDyad {
	return unit.ConvertSymmetricDyad(q.value, unit.Standard[U](), u)
}

// SetValue replaces the stored tensor. The new components must
// already be expressed in the standard unit.
func (q *SymmetricDyad[U]) SetValue(value cartesian.SymmetricDyad) {
	q.value = value
}

// Add returns the sum of the two quantities.
func (q SymmetricDyad[U]) Add(other SymmetricDyad[U]) SymmetricDyad[U] {
	return SymmetricDyad[U]{value: q.value.Add(other.value)}
}

// Subtract returns the difference of the two quantities.
func (q SymmetricDyad[U]) Subtract(other SymmetricDyad[U]) SymmetricDyad[U] {
	return SymmetricDyad[U]{value: q.value.Subtract(other.value)}
}

// Multiply returns the quantity scaled by a dimensionless factor.
func (q SymmetricDyad[U]) Multiply(factor float64) SymmetricDyad[U] {
	return SymmetricDyad[U]{value: q.value.Multiply(factor)}
}

// Divide returns the quantity divided by a dimensionless divisor.
func (q SymmetricDyad[U]) Divide(divisor float64) SymmetricDyad[U] {
	return SymmetricDyad[U]{value: q.value.Divide(divisor)}
}

// Trace returns the sum of the diagonal components as a scalar
// quantity of the same category.
func (q SymmetricDyad[U]) Trace() Scalar[U] {
	return Scalar[U]{value: q.value.Trace()}
}

// Fingerprint returns a stable digest of the quantity: category name
// plus the six independent standard-unit components.
func (q SymmetricDyad[U]) Fingerprint() fingerprint.Fingerprint {
	v := q.value
	return fingerprint.Quantity(unit.CategoryName[U](), v.XX, v.XY, v.XZ, v.YY, v.YZ, v.ZZ)
}

// String renders the quantity in its standard unit at double
// precision.
func (q SymmetricDyad[U]) String() string {
	return q.Format(unit.Standard[U](), DoublePrecision)
}

// Format renders the six independent components followed by the unit
// abbreviation.
func (q SymmetricDyad[U]) Format(u U, precision Precision) string {
	converted := q.In(u)
	rendered := formatAll(precision, converted.XX, converted.XY, converted.XZ, converted.YY, converted.YZ, converted.ZZ)
	return "(" + rendered[0] + ", " + rendered[1] + ", " + rendered[2] + "; " +
		rendered[3] + ", " + rendered[4] + "; " + rendered[5] + ") " + unit.Abbreviation(u)
}

// JSON renders the quantity with an object-valued "value" holding the
// six independent components.
func (q SymmetricDyad[U]) JSON(u U, precision Precision) string {
	converted := q.In(u)
	components := jsonObject(symmetricComponentNames,
		formatAll(precision, converted.XX, converted.XY, converted.XZ, converted.YY, converted.YZ, converted.ZZ))
	return jsonObject(
		[]string{"value", "unit"},
		[]string{components, `"` + unit.Abbreviation(u) + `"`},
	)
}

// XML renders the quantity with component elements nested inside the
// value element.
func (q SymmetricDyad[U]) XML(u U, precision Precision) string {
	converted := q.In(u)
	components := xmlElements(symmetricComponentNames,
		formatAll(precision, converted.XX, converted.XY, converted.XZ, converted.YY, converted.YZ, converted.ZZ))
	return xmlElements(
		[]string{"value", "unit"},
		[]string{components, unit.Abbreviation(u)},
	)
}

// YAML renders the quantity as a flow mapping with a nested component
// mapping.
func (q SymmetricDyad[U]) YAML(u U, precision Precision) string {
	converted := q.In(u)
	components := yamlFloatMapping(symmetricComponentNames,
		formatAll(precision, converted.XX, converted.XY, converted.XZ, converted.YY, converted.YZ, converted.ZZ))
	return yamlFlow(components, unit.Abbreviation(u))
}

// Dyad is a general dyadic tensor quantity in the unit category U,
// stored in the category's standard unit.
type Dyad[U unit.Measure[U]] struct {
	value cartesian.Dyad
}

// NewDyad constructs a dyadic tensor quantity from components
// expressed in the given unit, converting to the standard unit once.
func NewDyad[U unit.Measure[U]](value cartesian.Dyad, u U) Dyad[U] {
	return Dyad[U]{value: unit.ConvertDyad(value, u, unit.Standard[U]())}
}

// DyadFromStandard wraps a tensor already expressed in the standard
// unit without any conversion.
func DyadFromStandard[U unit.Measure[U]](value cartesian.Dyad) Dyad[U] {
	return Dyad[U]{value: value}
}

// Value returns the stored standard-unit tensor.
func (q Dyad[U]) Value() cartesian.Dyad {
	return q.value
}

// In returns the tensor converted to the given unit.
func (q Dyad[U]) In(u U) cartesian.Dyad {
	return unit.ConvertDyad(q.value, unit.Standard[U](), u)
}

// SetValue replaces the stored tensor. The new components must
// already be expressed in the standard unit.
func (q *Dyad[U]) SetValue(value cartesian.Dyad) {
	q.value = value
}

// Add returns the sum of the two quantities.
func (q Dyad[U]) Add(other Dyad[U]) Dyad[U] {
	return Dyad[U]{value: q.value.Add(other.value)}
}

// Subtract returns the difference of the two quantities.
func (q Dyad[U]) Subtract(other Dyad[U]) Dyad[U] {
	return Dyad[U]{value: q.value.Subtract(other.value)}
}

// Multiply returns the quantity scaled by a dimensionless factor.
func (q Dyad[U]) Multiply(factor float64) Dyad[U] {
	return Dyad[U]{value: q.value.Multiply(factor)}
}

// Divide returns the quantity divided by a dimensionless divisor.
func (q Dyad[U]) Divide(divisor float64) Dyad[U] {
	return Dyad[U]{value: q.value.Divide(divisor)}
}

// Trace returns the sum of the diagonal components as a scalar
// quantity of the same category.
func (q Dyad[U]) Trace() Scalar[U] {
	return Scalar[U]{value: q.value.Trace()}
}

// IsSymmetric reports whether the stored tensor equals its transpose.
func (q Dyad[U]) IsSymmetric() bool {
	return q.value.IsSymmetric()
}

// Fingerprint returns a stable digest of the quantity: category name
// plus all nine standard-unit components.
func (q Dyad[U]) Fingerprint() fingerprint.Fingerprint {
	v := q.value
	return fingerprint.Quantity(unit.CategoryName[U](),
		v.XX, v.XY, v.XZ, v.YX, v.YY, v.YZ, v.ZX, v.ZY, v.ZZ)
}

// String renders the quantity in its standard unit at double
// precision.
func (q Dyad[U]) String() string {
	return q.Format(unit.Standard[U](), DoublePrecision)
}

// Format renders the nine components row by row followed by the unit
// abbreviation.
func (q Dyad[U]) Format(u U, precision Precision) string {
	converted := q.In(u)
	rendered := formatAll(precision,
		converted.XX, converted.XY, converted.XZ,
		converted.YX, converted.YY, converted.YZ,
		converted.ZX, converted.ZY, converted.ZZ)
	return "(" + rendered[0] + ", " + rendered[1] + ", " + rendered[2] + "; " +
		rendered[3] + ", " + rendered[4] + ", " + rendered[5] + "; " +
		rendered[6] + ", " + rendered[7] + ", " + rendered[8] + ") " + unit.Abbreviation(u)
}

// JSON renders the quantity with an object-valued "value" holding all
// nine components.
func (q Dyad[U]) JSON(u U, precision Precision) string {
	converted := q.In(u)
	components := jsonObject(dyadComponentNames, formatAll(precision,
		converted.XX, converted.XY, converted.XZ,
		converted.YX, converted.YY, converted.YZ,
		converted.ZX, converted.ZY, converted.ZZ))
	return jsonObject(
		[]string{"value", "unit"},
		[]string{components, `"` + unit.Abbreviation(u) + `"`},
	)
}

// XML renders the quantity with component elements nested inside the
// value element.
func (q Dyad[U]) XML(u U, precision Precision) string {
	converted := q.In(u)
	components := xmlElements(dyadComponentNames, formatAll(precision,
		converted.XX, converted.XY, converted.XZ,
		converted.YX, converted.YY, converted.YZ,
		converted.ZX, converted.ZY, converted.ZZ))
	return xmlElements(
		[]string{"value", "unit"},
		[]string{components, unit.Abbreviation(u)},
	)
}

// YAML renders the quantity as a flow mapping with a nested component
// mapping.
func (q Dyad[U]) YAML(u U, precision Precision) string {
	converted := q.In(u)
	components := yamlFloatMapping(dyadComponentNames, formatAll(precision,
		converted.XX, converted.XY, converted.XZ,
		converted.YX, converted.YY, converted.YZ,
		converted.ZX, converted.ZY, converted.ZZ))
	return yamlFlow(components, unit.Abbreviation(u))
}
