// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// SubstanceAmount is a unit of measure of amount of substance. The
// standard unit is the mole.
type SubstanceAmount uint8

const (
	Mole SubstanceAmount = iota
	Kilomole
	Millimole
	Particle
)

func (SubstanceAmount) category() *category[SubstanceAmount] { return substanceAmountCategory }

// String returns the unit's abbreviation.
func (u SubstanceAmount) String() string { return Abbreviation(u) }

var substanceAmountCategory = newCategory(
	"substance_amount",
	Mole,
	dimension.Set{SubstanceAmount: 1},
	[]def[SubstanceAmount]{
		{Mole, "mol", []string{"mol", "mole", "moles"}, 1, 0},
		{Kilomole, "kmol", []string{"kmol", "kilomole", "kilomoles"}, 1e3, 0},
		{Millimole, "mmol", []string{"mmol", "millimole", "millimoles"}, 1e-3, 0},
		{Particle, "particle", []string{"particle", "particles"}, 1.0 / particlesPerMole, 0},
	},
	[4]SubstanceAmount{Mole, Mole, Mole, Mole},
)
