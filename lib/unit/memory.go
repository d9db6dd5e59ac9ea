// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import "github.com/dimetric/dimetric/lib/dimension"

// Memory is a unit of measure of digital information. Information is
// dimensionless; the standard unit is the bit. Decimal prefixes are
// powers of 1000 and binary prefixes powers of 1024.
type Memory uint8

const (
	Bit Memory = iota
	Byte
	Kilobit
	Kibibit
	Kilobyte
	Kibibyte
	Megabit
	Mebibit
	Megabyte
	Mebibyte
	Gigabit
	Gibibit
	Gigabyte
	Gibibyte
	Terabit
	Tebibit
	Terabyte
	Tebibyte
)

func (Memory) category() *category[Memory] { return memoryCategory }

// String returns the unit's abbreviation.
func (u Memory) String() string { return Abbreviation(u) }

var memoryCategory = newCategory(
	"memory",
	Bit,
	dimension.Set{},
	[]def[Memory]{
		{Bit, "b", []string{"b", "bit", "bits"}, 1, 0},
		{Byte, "B", []string{"B", "byte", "bytes"}, 8, 0},
		{Kilobit, "kb", []string{"kb", "kilobit", "kilobits"}, 1e3, 0},
		{Kibibit, "Kib", []string{"Kib", "kibibit", "kibibits"}, 1024, 0},
		{Kilobyte, "kB", []string{"kB", "kilobyte", "kilobytes"}, 8e3, 0},
		{Kibibyte, "KiB", []string{"KiB", "kibibyte", "kibibytes"}, 8 * 1024, 0},
		{Megabit, "Mb", []string{"Mb", "megabit", "megabits"}, 1e6, 0},
		{Mebibit, "Mib", []string{"Mib", "mebibit", "mebibits"}, 1024 * 1024, 0},
		{Megabyte, "MB", []string{"MB", "megabyte", "megabytes"}, 8e6, 0},
		{Mebibyte, "MiB", []string{"MiB", "mebibyte", "mebibytes"}, 8 * 1024 * 1024, 0},
		{Gigabit, "Gb", []string{"Gb", "gigabit", "gigabits"}, 1e9, 0},
		{Gibibit, "Gib", []string{"Gib", "gibibit", "gibibits"}, 1024 * 1024 * 1024, 0},
		{Gigabyte, "GB", []string{"GB", "gigabyte", "gigabytes"}, 8e9, 0},
		{Gibibyte, "GiB", []string{"GiB", "gibibyte", "gibibytes"}, 8 * 1024 * 1024 * 1024, 0},
		{Terabit, "Tb", []string{"Tb", "terabit", "terabits"}, 1e12, 0},
		{Tebibit, "Tib", []string{"Tib", "tebibit", "tebibits"}, 1024.0 * 1024 * 1024 * 1024, 0},
		{Terabyte, "TB", []string{"TB", "terabyte", "terabytes"}, 8e12, 0},
		{Tebibyte, "TiB", []string{"TiB", "tebibyte", "tebibytes"}, 8 * 1024.0 * 1024 * 1024 * 1024, 0},
	},
	[4]Memory{Bit, Bit, Bit, Bit},
)
