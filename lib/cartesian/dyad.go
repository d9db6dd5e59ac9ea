// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package cartesian

// Dyad is a 3×3 Cartesian dyadic tensor with nine independent
// components. It may be asymmetric; for tensors known to be symmetric,
// SymmetricDyad stores only the six independent components.
type Dyad struct {
	XX float64
	XY float64
	XZ float64
	YX float64
	YY float64
	YZ float64
	ZX float64
	ZY float64
	ZZ float64
}

// Add returns the component-wise sum.
func (d Dyad) Add(other Dyad) Dyad {
	return Dyad{
		XX: d.XX + other.XX, XY: d.XY + other.XY, XZ: d.XZ + other.XZ,
		YX: d.YX + other.YX, YY: d.YY + other.YY, YZ: d.YZ + other.YZ,
		ZX: d.ZX + other.ZX, ZY: d.ZY + other.ZY, ZZ: d.ZZ + other.ZZ,
	}
}

// Subtract returns the component-wise difference.
func (d Dyad) Subtract(other Dyad) Dyad {
	return Dyad{
		XX: d.XX - other.XX, XY: d.XY - other.XY, XZ: d.XZ - other.XZ,
		YX: d.YX - other.YX, YY: d.YY - other.YY, YZ: d.YZ - other.YZ,
		ZX: d.ZX - other.ZX, ZY: d.ZY - other.ZY, ZZ: d.ZZ - other.ZZ,
	}
}

// Multiply returns the dyad scaled by factor.
func (d Dyad) Multiply(factor float64) Dyad {
	return Dyad{
		XX: d.XX * factor, XY: d.XY * factor, XZ: d.XZ * factor,
		YX: d.YX * factor, YY: d.YY * factor, YZ: d.YZ * factor,
		ZX: d.ZX * factor, ZY: d.ZY * factor, ZZ: d.ZZ * factor,
	}
}

// Divide returns the dyad scaled by 1/divisor.
func (d Dyad) Divide(divisor float64) Dyad {
	return Dyad{
		XX: d.XX / divisor, XY: d.XY / divisor, XZ: d.XZ / divisor,
		YX: d.YX / divisor, YY: d.YY / divisor, YZ: d.YZ / divisor,
		ZX: d.ZX / divisor, ZY: d.ZY / divisor, ZZ: d.ZZ / divisor,
	}
}

// MultiplyVector returns the matrix-vector product d·v.
func (d Dyad) MultiplyVector(v Vector) Vector {
	return Vector{
		X: d.XX*v.X + d.XY*v.Y + d.XZ*v.Z,
		Y: d.YX*v.X + d.YY*v.Y + d.YZ*v.Z,
		Z: d.ZX*v.X + d.ZY*v.Y + d.ZZ*v.Z,
	}
}

// MultiplyDyad returns the matrix product d·other.
func (d Dyad) MultiplyDyad(other Dyad) Dyad {
	return Dyad{
		XX: d.XX*other.XX + d.XY*other.YX + d.XZ*other.ZX,
		XY: d.XX*other.XY + d.XY*other.YY + d.XZ*other.ZY,
		XZ: d.XX*other.XZ + d.XY*other.YZ + d.XZ*other.ZZ,
		YX: d.YX*other.XX + d.YY*other.YX + d.YZ*other.ZX,
		YY: d.YX*other.XY + d.YY*other.YY + d.YZ*other.ZY,
		YZ: d.YX*other.XZ + d.YY*other.YZ + d.YZ*other.ZZ,
		ZX: d.ZX*other.XX + d.ZY*other.YX + d.ZZ*other.ZX,
		ZY: d.ZX*other.XY + d.ZY*other.YY + d.ZZ*other.ZY,
		ZZ: d.ZX*other.XZ + d.ZY*other.YZ + d.ZZ*other.ZZ,
	}
}

// IsSymmetric reports whether the dyad equals its transpose exactly.
func (d Dyad) IsSymmetric() bool {
	return d.XY == d.YX && d.XZ == d.ZX && d.YZ == d.ZY
}

// Trace returns the sum of the diagonal components.
func (d Dyad) Trace() float64 {
	return d.XX + d.YY + d.ZZ
}

// Determinant returns the 3×3 determinant by cofactor expansion along
// the first row.
func (d Dyad) Determinant() float64 {
	return d.XX*(d.YY*d.ZZ-d.YZ*d.ZY) -
		d.XY*(d.YX*d.ZZ-d.YZ*d.ZX) +
		d.XZ*(d.YX*d.ZY-d.YY*d.ZX)
}

// Transpose returns the transposed dyad.
func (d Dyad) Transpose() Dyad {
	return Dyad{
		XX: d.XX, XY: d.YX, XZ: d.ZX,
		YX: d.XY, YY: d.YY, YZ: d.ZY,
		ZX: d.XZ, ZY: d.YZ, ZZ: d.ZZ,
	}
}

// Cofactors returns the matrix of cofactors.
func (d Dyad) Cofactors() Dyad {
	return Dyad{
		XX: d.YY*d.ZZ - d.YZ*d.ZY,
		XY: d.YZ*d.ZX - d.YX*d.ZZ,
		XZ: d.YX*d.ZY - d.YY*d.ZX,
		YX: d.XZ*d.ZY - d.XY*d.ZZ,
		YY: d.XX*d.ZZ - d.XZ*d.ZX,
		YZ: d.XY*d.ZX - d.XX*d.ZY,
		ZX: d.XY*d.YZ - d.XZ*d.YY,
		ZY: d.XZ*d.YX - d.XX*d.YZ,
		ZZ: d.XX*d.YY - d.XY*d.YX,
	}
}

// Adjugate returns the transposed cofactor matrix.
func (d Dyad) Adjugate() Dyad {
	return d.Cofactors().Transpose()
}

// Inverse returns the inverse dyad. The second result is false when
// the determinant is exactly zero.
func (d Dyad) Inverse() (Dyad, bool) {
	determinant := d.Determinant()
	if determinant == 0.0 {
		return Dyad{}, false
	}
	return d.Adjugate().Divide(determinant), true
}

// String renders the rows as "(xx, xy, xz; yx, yy, yz; zx, zy, zz)".
func (d Dyad) String() string {
	return "(" + formatComponents(d.XX, d.XY, d.XZ) +
		"; " + formatComponents(d.YX, d.YY, d.YZ) +
		"; " + formatComponents(d.ZX, d.ZY, d.ZZ) + ")"
}
