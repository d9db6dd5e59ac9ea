// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

// System identifies a consistent system of units of measure: a choice
// of base units in which all derived coherent units need no numeric
// conversion factors between each other.
type System uint8

const (
	// MetreKilogramSecondKelvin is the SI system. Every category's
	// standard unit is its coherent unit in this system.
	MetreKilogramSecondKelvin System = iota

	// MillimetreGramSecondKelvin is the small-scale metric system
	// common in structural simulation (lengths in mm, forces in µN).
	MillimetreGramSecondKelvin

	// FootPoundSecondRankine is the imperial system based on the foot.
	FootPoundSecondRankine

	// InchPoundSecondRankine is the imperial system based on the inch.
	InchPoundSecondRankine
)

// Systems lists every consistent unit system in declaration order.
var Systems = [4]System{
	MetreKilogramSecondKelvin,
	MillimetreGramSecondKelvin,
	FootPoundSecondRankine,
	InchPoundSecondRankine,
}

// Abbreviation returns the compact base-unit product for the system,
// such as "m·kg·s·K".
func (s System) Abbreviation() string {
	switch s {
	case MetreKilogramSecondKelvin:
		return "m·kg·s·K"
	case MillimetreGramSecondKelvin:
		return "mm·g·s·K"
	case FootPoundSecondRankine:
		return "ft·lbf·s·°R"
	case InchPoundSecondRankine:
		return "in·lbf·s·°R"
	}
	return "?"
}

// String returns the abbreviation.
func (s System) String() string { return s.Abbreviation() }

// systemSpellings maps accepted parse text to systems. Exact and
// case-sensitive, like unit spellings.
var systemSpellings = map[string]System{
	"m·kg·s·K":                     MetreKilogramSecondKelvin,
	"m-kg-s-K":                     MetreKilogramSecondKelvin,
	"metre-kilogram-second-kelvin": MetreKilogramSecondKelvin,
	"mm·g·s·K":                     MillimetreGramSecondKelvin,
	"mm-g-s-K":                     MillimetreGramSecondKelvin,
	"millimetre-gram-second-kelvin": MillimetreGramSecondKelvin,
	"ft·lbf·s·°R":                  FootPoundSecondRankine,
	"ft-lbf-s-R":                   FootPoundSecondRankine,
	"foot-pound-second-rankine":    FootPoundSecondRankine,
	"in·lbf·s·°R":                  InchPoundSecondRankine,
	"in-lbf-s-R":                   InchPoundSecondRankine,
	"inch-pound-second-rankine":    InchPoundSecondRankine,
}

// ParseSystem resolves text against the accepted system spellings.
// The second result is false when the text matches nothing.
func ParseSystem(text string) (System, bool) {
	system, ok := systemSpellings[text]
	return system, ok
}
