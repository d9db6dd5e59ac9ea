// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/fingerprint"
	"github.com/dimetric/dimetric/lib/unit"
)

var vectorComponentNames = []string{"x", "y", "z"}

// Vector is a three-component vector quantity in the unit category U,
// stored in the category's standard unit.
type Vector[U unit.Measure[U]] struct {
	value cartesian.Vector
}

// NewVector constructs a vector quantity from components expressed in
// the given unit, converting to the standard unit once.
func NewVector[U unit.Measure[U]](value cartesian.Vector, u U) Vector[U] {
	return Vector[U]{value: unit.ConvertVector(value, u, unit.Standard[U]())}
}

// VectorFromStandard wraps a vector already expressed in the standard
// unit without any conversion.
func VectorFromStandard[U unit.Measure[U]](value cartesian.Vector) Vector[U] {
	return Vector[U]{value: value}
}

// Value returns the stored standard-unit vector.
func (q Vector[U]) Value() cartesian.Vector {
	return q.value
}

// In returns the vector converted to the given unit.
func (q Vector[U]) In(u U) cartesian.Vector {
	return unit.ConvertVector(q.value, unit.Standard[U](), u)
}

// SetValue replaces the stored vector. The new components must
// already be expressed in the standard unit.
func (q *Vector[U]) SetValue(value cartesian.Vector) {
	q.value = value
}

// Add returns the sum of the two quantities.
func (q Vector[U]) Add(other Vector[U]) Vector[U] {
	return Vector[U]{value: q.value.Add(other.value)}
}

// Subtract returns the difference of the two quantities.
func (q Vector[U]) Subtract(other Vector[U]) Vector[U] {
	return Vector[U]{value: q.value.Subtract(other.value)}
}

// Multiply returns the quantity scaled by a dimensionless factor.
func (q Vector[U]) Multiply(factor float64) Vector[U] {
	return Vector[U]{value: q.value.Multiply(factor)}
}

// Divide returns the quantity divided by a dimensionless divisor.
func (q Vector[U]) Divide(divisor float64) Vector[U] {
	return Vector[U]{value: q.value.Divide(divisor)}
}

// Magnitude returns the Euclidean norm as a scalar quantity of the
// same category.
func (q Vector[U]) Magnitude() Scalar[U] {
	return Scalar[U]{value: q.value.Magnitude()}
}

// Direction returns the unit vector along the quantity. The boolean
// is false for the zero vector, which has no direction.
func (q Vector[U]) Direction() (cartesian.Vector, bool) {
	return q.value.Direction()
}

// Fingerprint returns a stable digest of the quantity: category name
// plus the three standard-unit components.
func (q Vector[U]) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.Quantity(unit.CategoryName[U](), q.value.X, q.value.Y, q.value.Z)
}

// String renders the quantity in its standard unit at double
// precision.
func (q Vector[U]) String() string {
	return q.Format(unit.Standard[U](), DoublePrecision)
}

// Format renders "(<x>, <y>, <z>) <abbreviation>" in the given unit.
func (q Vector[U]) Format(u U, precision Precision) string {
	converted := q.In(u)
	rendered := formatAll(precision, converted.X, converted.Y, converted.Z)
	return "(" + rendered[0] + ", " + rendered[1] + ", " + rendered[2] + ") " + unit.Abbreviation(u)
}

// JSON renders the quantity with an object-valued "value" holding the
// named components.
func (q Vector[U]) JSON(u U, precision Precision) string {
	converted := q.In(u)
	components := jsonObject(vectorComponentNames, formatAll(precision, converted.X, converted.Y, converted.Z))
	return jsonObject(
		[]string{"value", "unit"},
		[]string{components, `"` + unit.Abbreviation(u) + `"`},
	)
}

// XML renders the quantity with component elements nested inside the
// value element.
func (q Vector[U]) XML(u U, precision Precision) string {
	converted := q.In(u)
	components := xmlElements(vectorComponentNames, formatAll(precision, converted.X, converted.Y, converted.Z))
	return xmlElements(
		[]string{"value", "unit"},
		[]string{components, unit.Abbreviation(u)},
	)
}

// YAML renders the quantity as a flow mapping with a nested component
// mapping.
func (q Vector[U]) YAML(u U, precision Precision) string {
	converted := q.In(u)
	components := yamlFloatMapping(vectorComponentNames, formatAll(precision, converted.X, converted.Y, converted.Z))
	return yamlFlow(components, unit.Abbreviation(u))
}
