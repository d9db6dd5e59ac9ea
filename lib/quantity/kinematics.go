// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/cartesian"
	"github.com/dimetric/dimetric/lib/unit"
)

// Length is a scalar distance quantity, stored in metres.
type Length = Scalar[unit.Length]

// NewLength constructs a length from a value in the given length
// unit.
func NewLength(value float64, u unit.Length) Length {
	return NewScalar(value, u)
}

// Area is a scalar area quantity, stored in square metres.
type Area = Scalar[unit.Area]

// NewArea constructs an area from a value in the given area unit.
func NewArea(value float64, u unit.Area) Area {
	return NewScalar(value, u)
}

// Volume is a scalar volume quantity, stored in cubic metres.
type Volume = Scalar[unit.Volume]

// NewVolume constructs a volume from a value in the given volume
// unit.
func NewVolume(value float64, u unit.Volume) Volume {
	return NewScalar(value, u)
}

// Speed is a scalar speed quantity, stored in metres per second.
type Speed = Scalar[unit.Speed]

// NewSpeed constructs a speed from a value in the given speed unit.
func NewSpeed(value float64, u unit.Speed) Speed {
	return NewScalar(value, u)
}

// Acceleration is a scalar acceleration quantity, stored in metres
// per second squared.
type Acceleration = Scalar[unit.Acceleration]

// NewAcceleration constructs an acceleration from a value in the
// given acceleration unit.
func NewAcceleration(value float64, u unit.Acceleration) Acceleration {
	return NewScalar(value, u)
}

// Displacement is a vector position-difference quantity, stored in
// metres.
type Displacement = Vector[unit.Length]

// NewDisplacement constructs a displacement from components in the
// given length unit.
func NewDisplacement(value cartesian.Vector, u unit.Length) Displacement {
	return NewVector(value, u)
}

// Velocity is a vector velocity quantity, stored in metres per
// second.
type Velocity = Vector[unit.Speed]

// NewVelocity constructs a velocity from components in the given
// speed unit.
func NewVelocity(value cartesian.Vector, u unit.Speed) Velocity {
	return NewVector(value, u)
}

// VelocityGradient is the spatial derivative of a velocity field,
// stored in hertz. It is a general dyadic tensor: the off-diagonal
// velocity shears need not be symmetric.
type VelocityGradient = Dyad[unit.Frequency]

// NewVelocityGradient constructs a velocity gradient from components
// in the given frequency unit.
func NewVelocityGradient(value cartesian.Dyad, u unit.Frequency) VelocityGradient {
	return NewDyad(value, u)
}

// StrainRate is the symmetric part of a velocity gradient, stored in
// hertz.
type StrainRate = SymmetricDyad[unit.Frequency]

// NewStrainRate constructs a strain rate from components in the given
// frequency unit.
func NewStrainRate(value cartesian.SymmetricDyad, u unit.Frequency) StrainRate {
	return NewSymmetricDyad(value, u)
}

// AreaFromLengths returns the product of two lengths.
func AreaFromLengths(width, height Length) Area {
	return ScalarFromStandard[unit.Area](width.Value() * height.Value())
}

// VolumeFromArea returns the product of an area and a length.
func VolumeFromArea(area Area, depth Length) Volume {
	return ScalarFromStandard[unit.Volume](area.Value() * depth.Value())
}

// SpeedFromLength returns the distance covered per unit of the
// duration.
func SpeedFromLength(length Length, duration Duration) Speed {
	return ScalarFromStandard[unit.Speed](length.Value() / duration.Value())
}

// LengthFromSpeed returns the distance covered at a constant speed
// over the duration.
func LengthFromSpeed(speed Speed, duration Duration) Length {
	return ScalarFromStandard[unit.Length](speed.Value() * duration.Value())
}

// DurationFromLength returns the time to cover the length at a
// constant speed.
func DurationFromLength(length Length, speed Speed) Duration {
	return ScalarFromStandard[unit.Time](length.Value() / speed.Value())
}

// AccelerationFromSpeed returns the rate of change of speed over the
// duration.
func AccelerationFromSpeed(speed Speed, duration Duration) Acceleration {
	return ScalarFromStandard[unit.Acceleration](speed.Value() / duration.Value())
}

// SpeedFromAcceleration returns the speed gained under constant
// acceleration over the duration.
func SpeedFromAcceleration(acceleration Acceleration, duration Duration) Speed {
	return ScalarFromStandard[unit.Speed](acceleration.Value() * duration.Value())
}

// VelocityFromDisplacement returns the average velocity over the
// duration.
func VelocityFromDisplacement(displacement Displacement, duration Duration) Velocity {
	return VectorFromStandard[unit.Speed](displacement.Value().Divide(duration.Value()))
}

// DisplacementFromVelocity returns the displacement at a constant
// velocity over the duration.
func DisplacementFromVelocity(velocity Velocity, duration Duration) Displacement {
	return VectorFromStandard[unit.Length](velocity.Value().Multiply(duration.Value()))
}

// StrainRateFromVelocityGradient returns the symmetric part of a
// velocity gradient, discarding the rotational component.
func StrainRateFromVelocityGradient(gradient VelocityGradient) StrainRate {
	g := gradient.Value()
	return SymmetricDyadFromStandard[unit.Frequency](cartesian.SymmetricDyad{
		XX: g.XX,
		XY: 0.5 * (g.XY + g.YX),
		XZ: 0.5 * (g.XZ + g.ZX),
		YY: g.YY,
		YZ: 0.5 * (g.YZ + g.ZY),
		ZZ: g.ZZ,
	})
}
