// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"github.com/dimetric/dimetric/lib/unit"
)

// Temperature is an absolute temperature, stored in kelvins. Its unit
// category is affine: the Celsius and Fahrenheit scales carry offsets
// as well as scales.
type Temperature = Scalar[unit.Temperature]

// NewTemperature constructs a temperature from a value on the given
// scale.
func NewTemperature(value float64, u unit.Temperature) Temperature {
	return NewScalar(value, u)
}

// TemperatureDifference is a difference between two absolute
// temperatures, stored in kelvins. Differences convert by pure scale:
// the offsets of the absolute scales cancel when subtracting.
type TemperatureDifference = Scalar[unit.TemperatureDifference]

// NewTemperatureDifference constructs a temperature difference from a
// value in the given difference unit.
func NewTemperatureDifference(value float64, u unit.TemperatureDifference) TemperatureDifference {
	return NewScalar(value, u)
}

// TemperatureDifferenceBetween returns the signed difference from the
// second temperature to the first.
func TemperatureDifferenceBetween(warmer, cooler Temperature) TemperatureDifference {
	return ScalarFromStandard[unit.TemperatureDifference](warmer.Value() - cooler.Value())
}

// TemperatureOffsetBy returns the temperature shifted by the given
// difference.
func TemperatureOffsetBy(temperature Temperature, difference TemperatureDifference) Temperature {
	return ScalarFromStandard[unit.Temperature](temperature.Value() + difference.Value())
}
