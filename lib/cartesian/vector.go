// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package cartesian

import (
	"strconv"
	"strings"

	"github.com/dimetric/dimetric/lib/numeric"
)

// Vector is a three-component Cartesian vector.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Add returns the component-wise sum.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the component-wise difference.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by factor.
func (v Vector) Multiply(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor, v.Z * factor}
}

// Divide returns the vector scaled by 1/divisor. Division by zero
// follows IEEE-754 and produces infinite or NaN components.
func (v Vector) Divide(divisor float64) Vector {
	return Vector{v.X / divisor, v.Y / divisor, v.Z / divisor}
}

// Dot returns the scalar product.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the vector product.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Dyadic returns the outer product v ⊗ other.
func (v Vector) Dyadic(other Vector) Dyad {
	return Dyad{
		XX: v.X * other.X, XY: v.X * other.Y, XZ: v.X * other.Z,
		YX: v.Y * other.X, YY: v.Y * other.Y, YZ: v.Y * other.Z,
		ZX: v.Z * other.X, ZY: v.Z * other.Y, ZZ: v.Z * other.Z,
	}
}

// MagnitudeSquared returns the squared Euclidean norm.
func (v Vector) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the Euclidean norm.
func (v Vector) Magnitude() float64 {
	return numeric.SquareRoot(v.MagnitudeSquared())
}

// Direction returns the unit vector pointing along v. The zero vector
// has no direction; the second result is false in that case.
func (v Vector) Direction() (Vector, bool) {
	magnitude := v.Magnitude()
	if magnitude == 0.0 {
		return Vector{}, false
	}
	return v.Divide(magnitude), true
}

// String renders the components as "(x, y, z)" using the shortest
// round-trip float formatting.
func (v Vector) String() string {
	return "(" + formatComponents(v.X, v.Y, v.Z) + ")"
}

// formatComponents joins float components with ", " using shortest
// round-trip formatting.
func formatComponents(components ...float64) string {
	parts := make([]string, len(components))
	for i, component := range components {
		parts[i] = strconv.FormatFloat(component, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
