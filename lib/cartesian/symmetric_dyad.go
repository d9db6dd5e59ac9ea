// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package cartesian

// SymmetricDyad is a symmetric 3×3 Cartesian dyadic tensor storing
// only its six independent components. The lower-triangle components
// are derived accessors: YX() returns XY, ZX() returns XZ, and ZY()
// returns YZ, so the symmetry invariant holds by construction and can
// never be violated by a caller.
type SymmetricDyad struct {
	XX float64
	XY float64
	XZ float64
	YY float64
	YZ float64
	ZZ float64
}

// YX returns the yx component, which equals XY by symmetry.
func (s SymmetricDyad) YX() float64 { return s.XY }

// ZX returns the zx component, which equals XZ by symmetry.
func (s SymmetricDyad) ZX() float64 { return s.XZ }

// ZY returns the zy component, which equals YZ by symmetry.
func (s SymmetricDyad) ZY() float64 { return s.YZ }

// Add returns the component-wise sum.
func (s SymmetricDyad) Add(other SymmetricDyad) SymmetricDyad {
	return SymmetricDyad{
		XX: s.XX + other.XX, XY: s.XY + other.XY, XZ: s.XZ + other.XZ,
		YY: s.YY + other.YY, YZ: s.YZ + other.YZ, ZZ: s.ZZ + other.ZZ,
	}
}

// Subtract returns the component-wise difference.
func (s SymmetricDyad) Subtract(other SymmetricDyad) SymmetricDyad {
	return SymmetricDyad{
		XX: s.XX - other.XX, XY: s.XY - other.XY, XZ: s.XZ - other.XZ,
		YY: s.YY - other.YY, YZ: s.YZ - other.YZ, ZZ: s.ZZ - other.ZZ,
	}
}

// Multiply returns the tensor scaled by factor.
func (s SymmetricDyad) Multiply(factor float64) SymmetricDyad {
	return SymmetricDyad{
		XX: s.XX * factor, XY: s.XY * factor, XZ: s.XZ * factor,
		YY: s.YY * factor, YZ: s.YZ * factor, ZZ: s.ZZ * factor,
	}
}

// Divide returns the tensor scaled by 1/divisor.
func (s SymmetricDyad) Divide(divisor float64) SymmetricDyad {
	return SymmetricDyad{
		XX: s.XX / divisor, XY: s.XY / divisor, XZ: s.XZ / divisor,
		YY: s.YY / divisor, YZ: s.YZ / divisor, ZZ: s.ZZ / divisor,
	}
}

// MultiplyVector returns the matrix-vector product s·v.
func (s SymmetricDyad) MultiplyVector(v Vector) Vector {
	return Vector{
		X: s.XX*v.X + s.XY*v.Y + s.XZ*v.Z,
		Y: s.XY*v.X + s.YY*v.Y + s.YZ*v.Z,
		Z: s.XZ*v.X + s.YZ*v.Y + s.ZZ*v.Z,
	}
}

// MultiplySymmetric returns the matrix product s·other. The product of
// two symmetric tensors is generally not symmetric, so the result is a
// full Dyad.
func (s SymmetricDyad) MultiplySymmetric(other SymmetricDyad) Dyad {
	return Dyad{
		XX: s.XX*other.XX + s.XY*other.XY + s.XZ*other.XZ,
		XY: s.XX*other.XY + s.XY*other.YY + s.XZ*other.YZ,
		XZ: s.XX*other.XZ + s.XY*other.YZ + s.XZ*other.ZZ,
		YX: s.XY*other.XX + s.YY*other.XY + s.YZ*other.XZ,
		YY: s.XY*other.XY + s.YY*other.YY + s.YZ*other.YZ,
		YZ: s.XY*other.XZ + s.YY*other.YZ + s.YZ*other.ZZ,
		ZX: s.XZ*other.XX + s.YZ*other.XY + s.ZZ*other.XZ,
		ZY: s.XZ*other.XY + s.YZ*other.YY + s.ZZ*other.YZ,
		ZZ: s.XZ*other.XZ + s.YZ*other.YZ + s.ZZ*other.ZZ,
	}
}

// Dyad returns the tensor expanded to all nine components.
func (s SymmetricDyad) Dyad() Dyad {
	return Dyad{
		XX: s.XX, XY: s.XY, XZ: s.XZ,
		YX: s.XY, YY: s.YY, YZ: s.YZ,
		ZX: s.XZ, ZY: s.YZ, ZZ: s.ZZ,
	}
}

// Trace returns the sum of the diagonal components.
func (s SymmetricDyad) Trace() float64 {
	return s.XX + s.YY + s.ZZ
}

// Determinant returns the 3×3 determinant by cofactor expansion along
// the first row, using the symmetry of the lower triangle.
func (s SymmetricDyad) Determinant() float64 {
	return s.XX*(s.YY*s.ZZ-s.YZ*s.YZ) -
		s.XY*(s.XY*s.ZZ-s.YZ*s.XZ) +
		s.XZ*(s.XY*s.YZ-s.YY*s.XZ)
}

// Transpose returns the tensor itself: a symmetric tensor is its own
// transpose by construction.
func (s SymmetricDyad) Transpose() SymmetricDyad {
	return s
}

// Cofactors returns the matrix of cofactors, which is itself
// symmetric.
func (s SymmetricDyad) Cofactors() SymmetricDyad {
	return SymmetricDyad{
		XX: s.YY*s.ZZ - s.YZ*s.YZ,
		XY: s.YZ*s.XZ - s.XY*s.ZZ,
		XZ: s.XY*s.YZ - s.YY*s.XZ,
		YY: s.XX*s.ZZ - s.XZ*s.XZ,
		YZ: s.XY*s.XZ - s.XX*s.YZ,
		ZZ: s.XX*s.YY - s.XY*s.XY,
	}
}

// Adjugate returns the adjugate. For a symmetric tensor the cofactor
// matrix is already self-transpose, so no transposition is applied.
func (s SymmetricDyad) Adjugate() SymmetricDyad {
	return s.Cofactors()
}

// Inverse returns the inverse tensor. The second result is false when
// the determinant is exactly zero.
func (s SymmetricDyad) Inverse() (SymmetricDyad, bool) {
	determinant := s.Determinant()
	if determinant == 0.0 {
		return SymmetricDyad{}, false
	}
	return s.Adjugate().Divide(determinant), true
}

// String renders the upper triangle as "(xx, xy, xz; yy, yz; zz)".
func (s SymmetricDyad) String() string {
	return "(" + formatComponents(s.XX, s.XY, s.XZ) +
		"; " + formatComponents(s.YY, s.YZ) +
		"; " + formatComponents(s.ZZ) + ")"
}
