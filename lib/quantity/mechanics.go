// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/unit"
)

// Mass is a scalar mass quantity, stored in kilograms.
type Mass = Scalar[unit.Mass]

// NewMass constructs a mass from a value in the given mass unit.
func NewMass(value float64, u unit.Mass) Mass {
	return NewScalar(value, u)
}

// Force is a scalar force magnitude, stored in newtons.
type Force = Scalar[unit.Force]

// NewForce constructs a force from a value in the given force unit.
func NewForce(value float64, u unit.Force) Force {
	return NewScalar(value, u)
}

// ForceVector is a vector force quantity, stored in newtons.
type ForceVector = Vector[unit.Force]

// NewForceVector constructs a force vector from components in the
// given force unit.
func NewForceVector(value cartesian.Vector, u unit.Force) ForceVector {
	return NewVector(value, u)
}

// Pressure is a scalar pressure quantity, stored in pascals.
type Pressure = Scalar[unit.Pressure]

// NewPressure constructs a pressure from a value in the given
// pressure unit.
func NewPressure(value float64, u unit.Pressure) Pressure {
	return NewScalar(value, u)
}

// Traction is the force per unit area acting across a surface, stored
// in pascals. Unlike a scalar pressure it has a direction, so shear
// components are representable.
type Traction = Vector[unit.Pressure]

// NewTraction constructs a traction from components in the given
// pressure unit.
func NewTraction(value cartesian.Vector, u unit.Pressure) Traction {
	return NewVector(value, u)
}

// Stress is the Cauchy stress tensor, stored in pascals. Angular
// momentum balance makes it symmetric.
type Stress = SymmetricDyad[unit.Pressure]

// NewStress constructs a stress from components in the given pressure
// unit.
func NewStress(value cartesian.SymmetricDyad, u unit.Pressure) Stress {
	return NewSymmetricDyad(value, u)
}

// Energy is a scalar energy quantity, stored in joules.
type Energy = Scalar[unit.Energy]

// NewEnergy constructs an energy from a value in the given energy
// unit.
func NewEnergy(value float64, u unit.Energy) Energy {
	return NewScalar(value, u)
}

// Power is a scalar power quantity, stored in watts.
type Power = Scalar[unit.Power]

// NewPower constructs a power from a value in the given power unit.
func NewPower(value float64, u unit.Power) Power {
	return NewScalar(value, u)
}

// ForceFromMass returns the force accelerating the mass.
func ForceFromMass(mass Mass, acceleration Acceleration) Force {
	return ScalarFromStandard[unit.Force](mass.Value() * acceleration.Value())
}

// MassFromForce returns the mass the force accelerates at the given
// rate.
func MassFromForce(force Force, acceleration Acceleration) Mass {
	return ScalarFromStandard[unit.Mass](force.Value() / acceleration.Value())
}

// AccelerationFromForce returns the acceleration the force imparts to
// the mass.
func AccelerationFromForce(force Force, mass Mass) Acceleration {
	return ScalarFromStandard[unit.Acceleration](force.Value() / mass.Value())
}

// PressureFromForce returns the force spread over the area.
func PressureFromForce(force Force, area Area) Pressure {
	return ScalarFromStandard[unit.Pressure](force.Value() / area.Value())
}

// ForceFromPressure returns the force the pressure exerts on the
// area.
func ForceFromPressure(pressure Pressure, area Area) Force {
	return ScalarFromStandard[unit.Force](pressure.Value() * area.Value())
}

// EnergyFromForce returns the work done by the force over the
// distance.
func EnergyFromForce(force Force, distance Length) Energy {
	return ScalarFromStandard[unit.Energy](force.Value() * distance.Value())
}

// ForceFromEnergy returns the constant force that does the given work
// over the distance.
func ForceFromEnergy(energy Energy, distance Length) Force {
	return ScalarFromStandard[unit.Force](energy.Value() / distance.Value())
}

// PowerFromEnergy returns the energy delivered per unit of the
// duration.
func PowerFromEnergy(energy Energy, duration Duration) Power {
	return ScalarFromStandard[unit.Power](energy.Value() / duration.Value())
}

// EnergyFromPower returns the energy delivered at a constant power
// over the duration.
func EnergyFromPower(power Power, duration Duration) Energy {
	return ScalarFromStandard[unit.Energy](power.Value() * duration.Value())
}

// DurationFromEnergy returns the time to deliver the energy at a
// constant power.
func DurationFromEnergy(energy Energy, power Power) Duration {
	return ScalarFromStandard[unit.Time](energy.Value() / power.Value())
}

// TractionFromStress returns the traction the stress exerts across a
// surface with the given outward normal. The normal must be a unit
// vector; the caller normalizes.
func TractionFromStress(stress Stress, normal cartesian.Vector) Traction {
	return VectorFromStandard[unit.Pressure](stress.Value().MultiplyVector(normal))
}

// ForceVectorFromTraction returns the force the traction exerts on
// the area.
func ForceVectorFromTraction(traction Traction, area Area) ForceVector {
	return VectorFromStandard[unit.Force](traction.Value().Multiply(area.Value()))
}
