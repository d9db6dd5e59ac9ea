// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/unit"
)

// Angle is a scalar plane angle, stored in radians. Angles are
// dimensionless but carry their own unit category so degrees and
// revolutions convert explicitly.
type Angle = Scalar[unit.Angle]

// NewAngle constructs an angle from a value in the given angle unit.
func NewAngle(value float64, u unit.Angle) Angle {
	return NewScalar(value, u)
}

// ElectricCurrent is a scalar current quantity, stored in amperes.
type ElectricCurrent = Scalar[unit.ElectricCurrent]

// NewElectricCurrent constructs a current from a value in the given
// current unit.
func NewElectricCurrent(value float64, u unit.ElectricCurrent) ElectricCurrent {
	return NewScalar(value, u)
}

// SubstanceAmount is a scalar amount-of-substance quantity, stored in
// moles.
type SubstanceAmount = Scalar[unit.SubstanceAmount]

// NewSubstanceAmount constructs a substance amount from a value in
// the given amount unit.
func NewSubstanceAmount(value float64, u unit.SubstanceAmount) SubstanceAmount {
	return NewScalar(value, u)
}

// LuminousIntensity is a scalar luminous-intensity quantity, stored
// in candelas.
type LuminousIntensity = Scalar[unit.LuminousIntensity]

// NewLuminousIntensity constructs a luminous intensity from a value
// in the given intensity unit.
func NewLuminousIntensity(value float64, u unit.LuminousIntensity) LuminousIntensity {
	return NewScalar(value, u)
}
