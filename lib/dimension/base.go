// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package dimension

import "strconv"

// Base identifies one of the seven SI base dimensions. The declaration
// order is the canonical field order used by Set for rendering and
// lexicographic comparison: time is most significant.
type Base int

const (
	Time Base = iota
	Length
	Mass
	ElectricCurrent
	Temperature
	SubstanceAmount
	LuminousIntensity
)

// bases lists every base dimension in canonical order.
var bases = [7]Base{
	Time, Length, Mass, ElectricCurrent,
	Temperature, SubstanceAmount, LuminousIntensity,
}

// Abbreviation returns the single-letter symbol used when rendering
// exponent products: T, L, M, I, Θ, N, J.
func (b Base) Abbreviation() string {
	switch b {
	case Time:
		return "T"
	case Length:
		return "L"
	case Mass:
		return "M"
	case ElectricCurrent:
		return "I"
	case Temperature:
		return "Θ"
	case SubstanceAmount:
		return "N"
	case LuminousIntensity:
		return "J"
	}
	return "?"
}

// Label returns the snake_case name used as the field key in JSON, XML,
// and YAML renderings.
func (b Base) Label() string {
	switch b {
	case Time:
		return "time"
	case Length:
		return "length"
	case Mass:
		return "mass"
	case ElectricCurrent:
		return "electric_current"
	case Temperature:
		return "temperature"
	case SubstanceAmount:
		return "substance_amount"
	case LuminousIntensity:
		return "luminous_intensity"
	}
	return "unknown"
}

// formatExponent renders one base dimension raised to the given
// exponent: "" for zero, the bare abbreviation for one, T^2 for larger
// positive exponents, and T^(-1) for negative exponents (parenthesized
// so the minus sign cannot be misread as a separator).
func formatExponent(b Base, exponent int8) string {
	switch {
	case exponent == 0:
		return ""
	case exponent == 1:
		return b.Abbreviation()
	case exponent > 1:
		return b.Abbreviation() + "^" + strconv.Itoa(int(exponent))
	}
	return b.Abbreviation() + "^(" + strconv.Itoa(int(exponent)) + ")"
}
