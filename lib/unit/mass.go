// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Mass is a unit of measure of mass. The standard unit is the
// kilogram. The slug and slinch are the coherent masses of the foot
// and inch imperial systems.
type Mass uint8

const (
	Kilogram Mass = iota
	Gram
	Milligram
	Pound
	Slug
	Slinch
)

func (Mass) category() *category[Mass] { return massCategory }

// String returns the unit's abbreviation.
func (u Mass) String() string { return Abbreviation(u) }

var massCategory = newCategory(
	"mass",
	Kilogram,
	dimension.Set{Mass: 1},
	[]def[Mass]{
		{Kilogram, "kg", []string{"kg", "kilogram", "kilograms"}, 1, 0},
		{Gram, "g", []string{"g", "gram", "grams"}, 1e-3, 0},
		{Milligram, "mg", []string{"mg", "milligram", "milligrams"}, 1e-6, 0},
		{Pound, "lbm", []string{"lbm", "lb", "pound", "pounds"}, kilogramsPerPound, 0},
		{Slug, "slug", []string{"slug", "slugs", "lbf·s^2/ft"}, kilogramsPerSlug, 0},
		{Slinch, "slinch", []string{"slinch", "slinches", "lbf·s^2/in"}, kilogramsPerSlinch, 0},
	},
	[4]Mass{Kilogram, Gram, Slug, Slinch},
)
