// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package quantity provides unit-aware physical quantity types:
// generic Scalar, Vector, SymmetricDyad, and Dyad wrappers
// parameterized by a unit category, plus named concrete quantities
// (Duration, Energy, Memory, Stress, …) and the physical
// relationships between them.
//
// A quantity stores its value in the category's standard unit. The
// (value, unit) constructors convert exactly once at construction;
// Value returns the stored standard-unit value with no conversion and
// In converts a copy out on demand. Quantities are immutable in
// ordinary use — SetValue exists for callers that already hold a
// standard-unit value and want to replace the stored one without a
// conversion round-trip.
//
// Physical relationships are named constructor functions rather than
// operators: SpeedFromLength(length, duration) is length/duration,
// ForceFromMass(mass, acceleration) is mass·acceleration, and so on.
// All relationships are total functions over float64: division by
// zero follows IEEE-754 and is never special-cased.
//
// Rendering follows one fixed shape per format, with a Precision
// selector choosing 15 (DoublePrecision) or 6 (SinglePrecision)
// significant digits:
//
//	Format: 1.11 s
//	JSON:   {"value":1.11,"unit":"s"}
//	XML:    <value>1.11</value><unit>s</unit>
//	YAML:   {value: 1.11, unit: "s"}
package quantity
