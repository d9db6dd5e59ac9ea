// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Volume is a unit of measure of volume. The standard unit is the
// cubic metre.
type Volume uint8

const (
	CubicMetre Volume = iota
	CubicMillimetre
	CubicFoot
	CubicInch
	Litre
	Millilitre
)

func (Volume) category() *category[Volume] { return volumeCategory }

// String returns the unit's abbreviation.
func (u Volume) String() string { return Abbreviation(u) }

var volumeCategory = newCategory(
	"volume",
	CubicMetre,
	dimension.Set{Length: 3},
	[]def[Volume]{
		{CubicMetre, "m^3", []string{"m^3", "m3", "m³"}, 1, 0},
		{CubicMillimetre, "mm^3", []string{"mm^3", "mm3", "mm³"}, 1e-9, 0},
		{CubicFoot, "ft^3", []string{"ft^3", "ft3", "ft³"}, metresPerFoot * metresPerFoot * metresPerFoot, 0},
		{CubicInch, "in^3", []string{"in^3", "in3", "in³"}, metresPerInch * metresPerInch * metresPerInch, 0},
		{Litre, "L", []string{"L", "l", "litre", "litres", "liter", "liters"}, 1e-3, 0},
		{Millilitre, "mL", []string{"mL", "ml", "millilitre", "millilitres"}, 1e-6, 0},
	},
	[4]Volume{CubicMetre, CubicMillimetre, CubicFoot, CubicInch},
)
