// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Speed is a unit of measure of speed. The standard unit is the metre
// per second.
type Speed uint8

const (
	MetrePerSecond Speed = iota
	MillimetrePerSecond
	FootPerSecond
	InchPerSecond
	KilometrePerHour
	MilePerHour
)

func (Speed) category() *category[Speed] { return speedCategory }

// String returns the unit's abbreviation.
func (u Speed) String() string { return Abbreviation(u) }

var speedCategory = newCategory(
	"speed",
	MetrePerSecond,
	dimension.Set{Time: -1, Length: 1},
	[]def[Speed]{
		{MetrePerSecond, "m/s", []string{"m/s", "m/sec"}, 1, 0},
		{MillimetrePerSecond, "mm/s", []string{"mm/s", "mm/sec"}, 1e-3, 0},
		{FootPerSecond, "ft/s", []string{"ft/s", "ft/sec", "fps"}, metresPerFoot, 0},
		{InchPerSecond, "in/s", []string{"in/s", "in/sec", "ips"}, metresPerInch, 0},
		{KilometrePerHour, "km/hr", []string{"km/hr", "km/h", "kph"}, 1e3 / 3600.0, 0},
		{MilePerHour, "mi/hr", []string{"mi/hr", "mi/h", "mph"}, metresPerMile / 3600.0, 0},
	},
	[4]Speed{MetrePerSecond, MillimetrePerSecond, FootPerSecond, InchPerSecond},
)
