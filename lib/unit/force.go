// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Force is a unit of measure of force. The standard unit is the
// newton. The micronewton is the coherent force of the
// millimetre-gram-second system (g·mm/s²).
type Force uint8

const (
	Newton Force = iota
	Millinewton
	Micronewton
	Kilonewton
	PoundForce
)

func (Force) category() *category[Force] { return forceCategory }

// String returns the unit's abbreviation.
func (u Force) String() string { return Abbreviation(u) }

var forceCategory = newCategory(
	"force",
	Newton,
	dimension.Set{Time: -2, Length: 1, Mass: 1},
	[]def[Force]{
		{Newton, "N", []string{"N", "kg·m/s^2", "newton", "newtons"}, 1, 0},
		{Millinewton, "mN", []string{"mN", "millinewton", "millinewtons"}, 1e-3, 0},
		{Micronewton, "μN", []string{"μN", "uN", "g·mm/s^2", "micronewton", "micronewtons"}, 1e-6, 0},
		{Kilonewton, "kN", []string{"kN", "kilonewton", "kilonewtons"}, 1e3, 0},
		{PoundForce, "lbf", []string{"lbf", "pound-force"}, newtonsPerPoundForce, 0},
	},
	[4]Force{Newton, Micronewton, PoundForce, PoundForce},
)
