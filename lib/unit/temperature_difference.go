// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// TemperatureDifference is a unit of measure of temperature
// differences. Unlike absolute Temperature, differences transform by
// pure scale: a 10 °C difference is a 10 K difference, not a 283.15 K
// one.
type TemperatureDifference uint8

const (
	DeltaKelvin TemperatureDifference = iota
	DeltaCelsius
	DeltaRankine
	DeltaFahrenheit
)

func (TemperatureDifference) category() *category[TemperatureDifference] {
	return temperatureDifferenceCategory
}

// String returns the unit's abbreviation.
func (u TemperatureDifference) String() string { return Abbreviation(u) }

var temperatureDifferenceCategory = newCategory(
	"temperature_difference",
	DeltaKelvin,
	dimension.Set{Temperature: 1},
	[]def[TemperatureDifference]{
		{DeltaKelvin, "ΔK", []string{"ΔK", "dK"}, 1, 0},
		{DeltaCelsius, "Δ°C", []string{"Δ°C", "dC"}, 1, 0},
		{DeltaRankine, "Δ°R", []string{"Δ°R", "dR"}, kelvinsPerRankine, 0},
		{DeltaFahrenheit, "Δ°F", []string{"Δ°F", "dF"}, kelvinsPerRankine, 0},
	},
	[4]TemperatureDifference{DeltaKelvin, DeltaKelvin, DeltaRankine, DeltaRankine},
)
