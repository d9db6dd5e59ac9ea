// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Length is a unit of measure of length. The standard unit is the
// metre.
type Length uint8

const (
	Metre Length = iota
	Millimetre
	Centimetre
	Kilometre
	Micrometre
	Foot
	Inch
	Yard
	Mile
)

func (Length) category() *category[Length] { return lengthCategory }

// String returns the unit's abbreviation.
func (u Length) String() string { return Abbreviation(u) }

var lengthCategory = newCategory(
	"length",
	Metre,
	dimension.Set{Length: 1},
	[]def[Length]{
		{Metre, "m", []string{"m", "metre", "metres", "meter", "meters"}, 1, 0},
		{Millimetre, "mm", []string{"mm", "millimetre", "millimetres"}, 1e-3, 0},
		{Centimetre, "cm", []string{"cm", "centimetre", "centimetres"}, 1e-2, 0},
		{Kilometre, "km", []string{"km", "kilometre", "kilometres"}, 1e3, 0},
		{Micrometre, "μm", []string{"μm", "um", "micrometre", "micron"}, 1e-6, 0},
		{Foot, "ft", []string{"ft", "foot", "feet"}, metresPerFoot, 0},
		{Inch, "in", []string{"in", "inch", "inches"}, metresPerInch, 0},
		{Yard, "yd", []string{"yd", "yard", "yards"}, metresPerYard, 0},
		{Mile, "mi", []string{"mi", "mile", "miles"}, metresPerMile, 0},
	},
	[4]Length{Metre, Millimetre, Foot, Inch},
)
