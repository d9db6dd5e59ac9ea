// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Temperature is a unit of measure of absolute temperature. The
// standard unit is the kelvin. Celsius and fahrenheit carry additive
// offsets, which is why the conversion engine's identity shortcut
// matters: only A→A skips the affine pivot entirely.
//
// For temperature differences (gradients, rates of change), use
// TemperatureDifference: differences transform by pure scale with no
// offset.
type Temperature uint8

const (
	Kelvin Temperature = iota
	Celsius
	Rankine
	Fahrenheit
)

func (Temperature) category() *category[Temperature] { return temperatureCategory }

// String returns the unit's abbreviation.
func (u Temperature) String() string { return Abbreviation(u) }

var temperatureCategory = newCategory(
	"temperature",
	Kelvin,
	dimension.Set{Temperature: 1},
	[]def[Temperature]{
		{Kelvin, "K", []string{"K", "kelvin", "kelvins"}, 1, 0},
		{Celsius, "°C", []string{"°C", "C", "degC", "celsius"}, 1, 273.15},
		{Rankine, "°R", []string{"°R", "R", "degR", "rankine"}, kelvinsPerRankine, 0},
		{Fahrenheit, "°F", []string{"°F", "F", "degF", "fahrenheit"}, kelvinsPerRankine, 459.67 * kelvinsPerRankine},
	},
	[4]Temperature{Kelvin, Kelvin, Rankine, Rankine},
)
