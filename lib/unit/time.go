// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Time is a unit of measure of time durations. The standard unit is
// the second; every consistent system uses it.
type Time uint8

const (
	Second Time = iota
	Minute
	Hour
	Millisecond
	Microsecond
	Nanosecond
)

func (Time) category() *category[Time] { return timeCategory }

// String returns the unit's abbreviation.
func (u Time) String() string { return Abbreviation(u) }

var timeCategory = newCategory(
	"time",
	Second,
	dimension.Set{Time: 1},
	[]def[Time]{
		{Second, "s", []string{"s", "sec", "second", "seconds"}, 1, 0},
		{Minute, "min", []string{"min", "minute", "minutes"}, 60, 0},
		{Hour, "hr", []string{"hr", "h", "hour", "hours"}, 3600, 0},
		{Millisecond, "ms", []string{"ms", "millisecond", "milliseconds"}, 1e-3, 0},
		{Microsecond, "μs", []string{"μs", "us", "microsecond", "microseconds"}, 1e-6, 0},
		{Nanosecond, "ns", []string{"ns", "nanosecond", "nanoseconds"}, 1e-9, 0},
	},
	[4]Time{Second, Second, Second, Second},
)
