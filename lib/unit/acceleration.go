// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Acceleration is a unit of measure of acceleration. The standard
// unit is the metre per square second.
type Acceleration uint8

const (
	MetrePerSquareSecond Acceleration = iota
	MillimetrePerSquareSecond
	FootPerSquareSecond
	InchPerSquareSecond
	StandardGravity
)

func (Acceleration) category() *category[Acceleration] { return accelerationCategory }

// String returns the unit's abbreviation.
func (u Acceleration) String() string { return Abbreviation(u) }

var accelerationCategory = newCategory(
	"acceleration",
	MetrePerSquareSecond,
	dimension.Set{Time: -2, Length: 1},
	[]def[Acceleration]{
		{MetrePerSquareSecond, "m/s^2", []string{"m/s^2", "m/s2", "m/s²"}, 1, 0},
		{MillimetrePerSquareSecond, "mm/s^2", []string{"mm/s^2", "mm/s2", "mm/s²"}, 1e-3, 0},
		{FootPerSquareSecond, "ft/s^2", []string{"ft/s^2", "ft/s2", "ft/s²"}, metresPerFoot, 0},
		{InchPerSquareSecond, "in/s^2", []string{"in/s^2", "in/s2", "in/s²"}, metresPerInch, 0},
		{StandardGravity, "g₀", []string{"g₀", "g0"}, standardGravity, 0},
	},
	[4]Acceleration{MetrePerSquareSecond, MillimetrePerSquareSecond, FootPerSquareSecond, InchPerSquareSecond},
)
