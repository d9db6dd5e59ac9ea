// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Angle is a unit of measure of plane angles. Angles are
// dimensionless; the standard unit is the radian.
type Angle uint8

const (
	Radian Angle = iota
	Milliradian
	Degree
	Arcminute
	Arcsecond
	Revolution
)

func (Angle) category() *category[Angle] { return angleCategory }

// String returns the unit's abbreviation.
func (u Angle) String() string { return Abbreviation(u) }

var angleCategory = newCategory(
	"angle",
	Radian,
	dimension.Set{},
	[]def[Angle]{
		{Radian, "rad", []string{"rad", "radian", "radians"}, 1, 0},
		{Milliradian, "mrad", []string{"mrad", "milliradian", "milliradians"}, 1e-3, 0},
		{Degree, "deg", []string{"deg", "°", "degree", "degrees"}, radiansPerDegree, 0},
		{Arcminute, "arcmin", []string{"arcmin", "'", "arcminute", "arcminutes"}, radiansPerDegree / 60.0, 0},
		{Arcsecond, "arcsec", []string{"arcsec", "\"", "arcsecond", "arcseconds"}, radiansPerDegree / 3600.0, 0},
		{Revolution, "rev", []string{"rev", "revolution", "revolutions"}, radiansPerRevolution, 0},
	},
	[4]Angle{Radian, Radian, Radian, Radian},
)
