// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

// Package unit defines closed enumerations of units of measure, one
// type per physical quantity category, together with the metadata and
// conversion engine shared by all of them.
//
// Each category (Time, Length, Energy, Memory, …) is a small integer
// enum whose descriptor records the category's dimension set, its
// standard (SI-coherent) pivot unit, per-unit abbreviations and parse
// spellings, the coherent unit for each of the four consistent unit
// systems, and the affine transform that maps each unit to the pivot.
//
// Conversion between two units of a category is always realized as
// to-standard followed by from-standard. Converting a unit to itself
// returns the input bit-for-bit without touching the pivot: the
// transforms are affine (scale and offset, as in kelvin↔fahrenheit),
// so the identity shortcut is what guarantees exact round-trips.
//
// All descriptors are built once during package initialization and
// never mutated afterwards, so every function here is safe for
// unsynchronized concurrent use.
package unit
