// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/fingerprint"
	"github.com/dimetric/dimetric/lib/unit"
)

// Scalar is a scalar quantity in the unit category U, stored in the
// category's standard unit.
type Scalar[U unit.Measure[U]] struct {
	value float64
}

// NewScalar constructs a scalar quantity from a value expressed in
// the given unit, converting to the standard unit once.
func NewScalar[U unit.Measure[U]](value float64, u U) Scalar[U] {
	return Scalar[U]{value: unit.Convert(value, u, unit.Standard[U]())}
}

// ScalarFromStandard wraps a value already expressed in the standard
// unit without any conversion.
func ScalarFromStandard[U unit.Measure[U]](value float64) Scalar[U] {
	return Scalar[U]{value: value}
}

// Value returns the stored standard-unit value.
func (q Scalar[U]) Value() float64 {
	return q.value
}

// In returns the value converted to the given unit.
func (q Scalar[U]) In(u U) float64 {
	return unit.Convert(q.value, unit.Standard[U](), u)
}

// SetValue replaces the stored value. The new value must already be
// expressed in the standard unit.
func (q *Scalar[U]) SetValue(value float64) {
	q.value = value
}

// Add returns the sum of the two quantities.
func (q Scalar[U]) Add(other Scalar[U]) Scalar[U] {
	return Scalar[U]{value: q.value + other.value}
}

// Subtract returns the difference of the two quantities.
func (q Scalar[U]) Subtract(other Scalar[U]) Scalar[U] {
	return Scalar[U]{value: q.value - other.value}
}

// Multiply returns the quantity scaled by a dimensionless factor.
func (q Scalar[U]) Multiply(factor float64) Scalar[U] {
	return Scalar[U]{value: q.value * factor}
}

// Divide returns the quantity divided by a dimensionless divisor.
func (q Scalar[U]) Divide(divisor float64) Scalar[U] {
	return Scalar[U]{value: q.value / divisor}
}

// Ratio returns the dimensionless ratio of the two quantities.
func (q Scalar[U]) Ratio(other Scalar[U]) float64 {
	return q.value / other.value
}

// Fingerprint returns a stable digest of the quantity: category name
// plus standard-unit value.
func (q Scalar[U]) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.Quantity(unit.CategoryName[U](), q.value)
}

// String renders the quantity in its standard unit at double
// precision.
func (q Scalar[U]) String() string {
	return q.Format(unit.Standard[U](), DoublePrecision)
}

// Format renders "<value> <abbreviation>" in the given unit.
func (q Scalar[U]) Format(u U, precision Precision) string {
	return formatFloat(q.In(u), precision) + " " + unit.Abbreviation(u)
}

// JSON renders {"value":<value>,"unit":"<abbreviation>"} in the given
// unit.
func (q Scalar[U]) JSON(u U, precision Precision) string {
	return jsonObject(
		[]string{"value", "unit"},
		[]string{formatFloat(q.In(u), precision), `"` + unit.Abbreviation(u) + `"`},
	)
}

// XML renders <value>…</value><unit>…</unit> in the given unit.
func (q Scalar[U]) XML(u U, precision Precision) string {
	return xmlElements(
		[]string{"value", "unit"},
		[]string{formatFloat(q.In(u), precision), unit.Abbreviation(u)},
	)
}

// YAML renders {value: <value>, unit: "<abbreviation>"} in the given
// unit.
func (q Scalar[U]) YAML(u U, precision Precision) string {
	return yamlFlow(yamlFloat(formatFloat(q.In(u), precision)), unit.Abbreviation(u))
}

// Dimensionless is a bare number carried alongside quantities. It has
// no unit category and therefore no conversions.
type Dimensionless struct {
	value float64
}

// NewDimensionless wraps a bare float64.
func NewDimensionless(value float64) Dimensionless {
	return Dimensionless{value: value}
}

// Value returns the wrapped number.
func (q Dimensionless) Value() float64 {
	return q.value
}

// SetValue replaces the wrapped number.
func (q *Dimensionless) SetValue(value float64) {
	q.value = value
}

// String renders the number at double precision.
func (q Dimensionless) String() string {
	return formatFloat(q.value, DoublePrecision)
}

// Format renders the number at the given precision.
func (q Dimensionless) Format(precision Precision) string {
	return formatFloat(q.value, precision)
}
