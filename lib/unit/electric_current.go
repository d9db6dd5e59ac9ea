// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// ElectricCurrent is a unit of measure of electric current. The
// standard unit is the ampere; every consistent system uses it.
type ElectricCurrent uint8

const (
	Ampere ElectricCurrent = iota
	Milliampere
	Microampere
	Kiloampere
)

func (ElectricCurrent) category() *category[ElectricCurrent] { return electricCurrentCategory }

// String returns the unit's abbreviation.
func (u ElectricCurrent) String() string { return Abbreviation(u) }

var electricCurrentCategory = newCategory(
	"electric_current",
	Ampere,
	dimension.Set{ElectricCurrent: 1},
	[]def[ElectricCurrent]{
		{Ampere, "A", []string{"A", "ampere", "amperes", "amp", "amps"}, 1, 0},
		{Milliampere, "mA", []string{"mA", "milliampere", "milliamperes"}, 1e-3, 0},
		{Microampere, "μA", []string{"μA", "uA", "microampere", "microamperes"}, 1e-6, 0},
		{Kiloampere, "kA", []string{"kA", "kiloampere", "kiloamperes"}, 1e3, 0},
	},
	[4]ElectricCurrent{Ampere, Ampere, Ampere, Ampere},
)
