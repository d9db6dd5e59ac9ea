// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Area is a unit of measure of area. The standard unit is the square
// metre.
type Area uint8

const (
	SquareMetre Area = iota
	SquareMillimetre
	SquareCentimetre
	SquareKilometre
	SquareFoot
	SquareInch
)

func (Area) category() *category[Area] { return areaCategory }

// String returns the unit's abbreviation.
func (u Area) String() string { return Abbreviation(u) }

var areaCategory = newCategory(
	"area",
	SquareMetre,
	dimension.Set{Length: 2},
	[]def[Area]{
		{SquareMetre, "m^2", []string{"m^2", "m2", "m²"}, 1, 0},
		{SquareMillimetre, "mm^2", []string{"mm^2", "mm2", "mm²"}, 1e-6, 0},
		{SquareCentimetre, "cm^2", []string{"cm^2", "cm2", "cm²"}, 1e-4, 0},
		{SquareKilometre, "km^2", []string{"km^2", "km2", "km²"}, 1e6, 0},
		{SquareFoot, "ft^2", []string{"ft^2", "ft2", "ft²"}, metresPerFoot * metresPerFoot, 0},
		{SquareInch, "in^2", []string{"in^2", "in2", "in²"}, metresPerInch * metresPerInch, 0},
	},
	[4]Area{SquareMetre, SquareMillimetre, SquareFoot, SquareInch},
)
