// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// MemoryRate is a unit of measure of digital information transfer
// rate. The standard unit is the bit per second.
type MemoryRate uint8

const (
	BitPerSecond MemoryRate = iota
	BytePerSecond
	KilobitPerSecond
	KilobytePerSecond
	MegabitPerSecond
	MegabytePerSecond
	GigabitPerSecond
	GigabytePerSecond
)

func (MemoryRate) category() *category[MemoryRate] { return memoryRateCategory }

// String returns the unit's abbreviation.
func (u MemoryRate) String() string { return Abbreviation(u) }

var memoryRateCategory = newCategory(
	"memory_rate",
	BitPerSecond,
	dimension.Set{Time: -1},
	[]def[MemoryRate]{
		{BitPerSecond, "b/s", []string{"b/s", "bps"}, 1, 0},
		{BytePerSecond, "B/s", []string{"B/s"}, 8, 0},
		{KilobitPerSecond, "kb/s", []string{"kb/s", "kbps"}, 1e3, 0},
		{KilobytePerSecond, "kB/s", []string{"kB/s"}, 8e3, 0},
		{MegabitPerSecond, "Mb/s", []string{"Mb/s", "Mbps"}, 1e6, 0},
		{MegabytePerSecond, "MB/s", []string{"MB/s"}, 8e6, 0},
		{GigabitPerSecond, "Gb/s", []string{"Gb/s", "Gbps"}, 1e9, 0},
		{GigabytePerSecond, "GB/s", []string{"GB/s"}, 8e9, 0},
	},
	[4]MemoryRate{BitPerSecond, BitPerSecond, BitPerSecond, BitPerSecond},
)
