// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Pressure is a unit of measure of pressure and stress. The standard
// unit is the pascal, which is also the coherent pressure of the
// millimetre-gram-second system (μN/mm² = N/m²).
type Pressure uint8

const (
	Pascal Pressure = iota
	Kilopascal
	Megapascal
	Gigapascal
	Bar
	Atmosphere
	PoundPerSquareFoot
	PoundPerSquareInch
)

func (Pressure) category() *category[Pressure] { return pressureCategory }

// String returns the unit's abbreviation.
func (u Pressure) String() string { return Abbreviation(u) }

var pressureCategory = newCategory(
	"pressure",
	Pascal,
	dimension.Set{Time: -2, Length: -1, Mass: 1},
	[]def[Pressure]{
		{Pascal, "Pa", []string{"Pa", "N/m^2", "pascal", "pascals"}, 1, 0},
		{Kilopascal, "kPa", []string{"kPa", "kilopascal", "kilopascals"}, 1e3, 0},
		{Megapascal, "MPa", []string{"MPa", "N/mm^2", "megapascal", "megapascals"}, 1e6, 0},
		{Gigapascal, "GPa", []string{"GPa", "gigapascal", "gigapascals"}, 1e9, 0},
		{Bar, "bar", []string{"bar", "bars"}, 1e5, 0},
		{Atmosphere, "atm", []string{"atm", "atmosphere", "atmospheres"}, 101325.0, 0},
		{PoundPerSquareFoot, "lbf/ft^2", []string{"lbf/ft^2", "psf"}, pascalsPerPoundPerSquareFoot, 0},
		{PoundPerSquareInch, "lbf/in^2", []string{"lbf/in^2", "psi"}, pascalsPerPoundPerSquareInch, 0},
	},
	[4]Pressure{Pascal, Pascal, PoundPerSquareFoot, PoundPerSquareInch},
)
