// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// LuminousIntensity is a unit of measure of luminous intensity. The
// standard unit is the candela.
type LuminousIntensity uint8

const (
	Candela LuminousIntensity = iota
	Millicandela
	Kilocandela
)

func (LuminousIntensity) category() *category[LuminousIntensity] { return luminousIntensityCategory }

// String returns the unit's abbreviation.
func (u LuminousIntensity) String() string { return Abbreviation(u) }

var luminousIntensityCategory = newCategory(
	"luminous_intensity",
	Candela,
	dimension.Set{LuminousIntensity: 1},
	[]def[LuminousIntensity]{
		{Candela, "cd", []string{"cd", "candela", "candelas"}, 1, 0},
		{Millicandela, "mcd", []string{"mcd", "millicandela", "millicandelas"}, 1e-3, 0},
		{Kilocandela, "kcd", []string{"kcd", "kilocandela", "kilocandelas"}, 1e3, 0},
	},
	[4]LuminousIntensity{Candela, Candela, Candela, Candela},
)
