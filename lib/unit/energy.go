// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Energy is a unit of measure of energy. The standard unit is the
// joule. The nanojoule is the coherent energy of the
// millimetre-gram-second system (μN·mm).
type Energy uint8

const (
	Joule Energy = iota
	Millijoule
	Microjoule
	Nanojoule
	Kilojoule
	Megajoule
	WattHour
	KilowattHour
	FootPound
	InchPound
	Calorie
	Kilocalorie
	Electronvolt
	BritishThermalUnit
)

func (Energy) category() *category[Energy] { return energyCategory }

// String returns the unit's abbreviation.
func (u Energy) String() string { return Abbreviation(u) }

var energyCategory = newCategory(
	"energy",
	Joule,
	dimension.Set{Time: -2, Length: 2, Mass: 1},
	[]def[Energy]{
		{Joule, "J", []string{"J", "N·m", "N*m", "kg·m^2/s^2", "joule", "joules"}, 1, 0},
		{Millijoule, "mJ", []string{"mJ", "millijoule", "millijoules"}, 1e-3, 0},
		{Microjoule, "μJ", []string{"μJ", "uJ", "microjoule", "microjoules"}, 1e-6, 0},
		{Nanojoule, "nJ", []string{"nJ", "μN·mm", "nanojoule", "nanojoules"}, 1e-9, 0},
		{Kilojoule, "kJ", []string{"kJ", "kilojoule", "kilojoules"}, 1e3, 0},
		{Megajoule, "MJ", []string{"MJ", "megajoule", "megajoules"}, 1e6, 0},
		{WattHour, "W·hr", []string{"W·hr", "W*hr", "Wh"}, 3600.0, 0},
		{KilowattHour, "kW·hr", []string{"kW·hr", "kW*hr", "kWh"}, 3.6e6, 0},
		{FootPound, "ft·lbf", []string{"ft·lbf", "ft*lbf", "ft-lb"}, joulesPerFootPound, 0},
		{InchPound, "in·lbf", []string{"in·lbf", "in*lbf", "in-lb"}, joulesPerInchPound, 0},
		{Calorie, "cal", []string{"cal", "calorie", "calories"}, joulesPerCalorie, 0},
		{Kilocalorie, "kcal", []string{"kcal", "kilocalorie", "kilocalories"}, 1e3 * joulesPerCalorie, 0},
		{Electronvolt, "eV", []string{"eV", "electronvolt", "electronvolts"}, joulesPerElectronvolt, 0},
		{BritishThermalUnit, "BTU", []string{"BTU", "btu"}, joulesPerBritishThermalUnit, 0},
	},
	[4]Energy{Joule, Nanojoule, FootPound, InchPound},
)
