// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package dimension models physical dimensions as integer exponents over
// the seven SI base dimensions: time, length, mass, electric current,
// temperature, substance amount, and luminous intensity.
//
// A Set is the 7-tuple of exponents describing a physical quantity's
// dimension. Energy, for example, is mass·length²/time², written as
// T^(-2)·L^2·M. Sets are plain comparable value types: equality is
// field equality, ordering is lexicographic over the canonical field
// order (time most significant), and the zero Set is dimensionless.
//
// Sets are descriptive metadata. Unit categories attach a Set at
// construction time and never mutate it afterwards.
package dimension
