// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Power is a unit of measure of power. The standard unit is the watt.
type Power uint8

const (
	Watt Power = iota
	Milliwatt
	Nanowatt
	Kilowatt
	Megawatt
	FootPoundPerSecond
	InchPoundPerSecond
	Horsepower
)

func (Power) category() *category[Power] { return powerCategory }

// String returns the unit's abbreviation.
func (u Power) String() string { return Abbreviation(u) }

var powerCategory = newCategory(
	"power",
	Watt,
	dimension.Set{Time: -3, Length: 2, Mass: 1},
	[]def[Power]{
		{Watt, "W", []string{"W", "J/s", "watt", "watts"}, 1, 0},
		{Milliwatt, "mW", []string{"mW", "milliwatt", "milliwatts"}, 1e-3, 0},
		{Nanowatt, "nW", []string{"nW", "μN·mm/s", "nanowatt", "nanowatts"}, 1e-9, 0},
		{Kilowatt, "kW", []string{"kW", "kilowatt", "kilowatts"}, 1e3, 0},
		{Megawatt, "MW", []string{"MW", "megawatt", "megawatts"}, 1e6, 0},
		{FootPoundPerSecond, "ft·lbf/s", []string{"ft·lbf/s", "ft*lbf/s"}, joulesPerFootPound, 0},
		{InchPoundPerSecond, "in·lbf/s", []string{"in·lbf/s", "in*lbf/s"}, joulesPerInchPound, 0},
		{Horsepower, "hp", []string{"hp", "horsepower"}, wattsPerHorsepower, 0},
	},
	[4]Power{Watt, Nanowatt, FootPoundPerSecond, InchPoundPerSecond},
)
