// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Frequency is a unit of measure of inverse time. The standard unit
// is the hertz.
type Frequency uint8

const (
	Hertz Frequency = iota
	Kilohertz
	Megahertz
	Gigahertz
	PerMinute
)

func (Frequency) category() *category[Frequency] { return frequencyCategory }

// String returns the unit's abbreviation.
func (u Frequency) String() string { return Abbreviation(u) }

var frequencyCategory = newCategory(
	"frequency",
	Hertz,
	dimension.Set{Time: -1},
	[]def[Frequency]{
		{Hertz, "Hz", []string{"Hz", "1/s", "/s"}, 1, 0},
		{Kilohertz, "kHz", []string{"kHz"}, 1e3, 0},
		{Megahertz, "MHz", []string{"MHz"}, 1e6, 0},
		{Gigahertz, "GHz", []string{"GHz"}, 1e9, 0},
		{PerMinute, "/min", []string{"/min", "1/min"}, 1.0 / 60.0, 0},
	},
	[4]Frequency{Hertz, Hertz, Hertz, Hertz},
)
