// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package dimension

import (
	"strconv"
	"strings"
)

// Set is the 7-tuple of integer exponents over the base dimensions.
// The zero value is dimensionless. Sets are comparable: use == for
// equality and Compare for ordering.
type Set struct {
	Time              int8
	Length            int8
	Mass              int8
	ElectricCurrent   int8
	Temperature       int8
	SubstanceAmount   int8
	LuminousIntensity int8
}

// Dimensionless is the empty dimension set.
var Dimensionless = Set{}

// Exponent returns the exponent of the given base dimension.
func (s Set) Exponent(b Base) int8 {
	switch b {
	case Time:
		return s.Time
	case Length:
		return s.Length
	case Mass:
		return s.Mass
	case ElectricCurrent:
		return s.ElectricCurrent
	case Temperature:
		return s.Temperature
	case SubstanceAmount:
		return s.SubstanceAmount
	case LuminousIntensity:
		return s.LuminousIntensity
	}
	return 0
}

// IsDimensionless reports whether every exponent is zero.
func (s Set) IsDimensionless() bool {
	return s == Dimensionless
}

// Compare orders sets lexicographically over the canonical field order
// (time most significant). Returns -1, 0, or +1.
func (s Set) Compare(other Set) int {
	for _, b := range bases {
		left, right := s.Exponent(b), other.Exponent(b)
		if left != right {
			if left < right {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders the exponent product, joining each non-zero base
// dimension with "·": energy renders as "T^(-2)·L^2·M". The
// dimensionless set renders as the literal "1" rather than an empty
// string so it remains visible in composed output.
func (s Set) String() string {
	var parts []string
	for _, b := range bases {
		if part := formatExponent(b, s.Exponent(b)); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

// JSON renders the set as a JSON object holding only the non-zero
// exponents, keyed by snake_case base dimension labels. The
// dimensionless set renders as "{}".
func (s Set) JSON() string {
	var builder strings.Builder
	builder.WriteByte('{')
	first := true
	for _, b := range bases {
		exponent := s.Exponent(b)
		if exponent == 0 {
			continue
		}
		if !first {
			builder.WriteByte(',')
		}
		first = false
		builder.WriteByte('"')
		builder.WriteString(b.Label())
		builder.WriteString(`":`)
		builder.WriteString(strconv.Itoa(int(exponent)))
	}
	builder.WriteByte('}')
	return builder.String()
}

// XML renders the set as a sequence of elements holding only the
// non-zero exponents, one element per base dimension label.
func (s Set) XML() string {
	var builder strings.Builder
	for _, b := range bases {
		exponent := s.Exponent(b)
		if exponent == 0 {
			continue
		}
		builder.WriteByte('<')
		builder.WriteString(b.Label())
		builder.WriteByte('>')
		builder.WriteString(strconv.Itoa(int(exponent)))
		builder.WriteString("</")
		builder.WriteString(b.Label())
		builder.WriteByte('>')
	}
	return builder.String()
}

// YAML renders the set as a flow mapping holding only the non-zero
// exponents. The dimensionless set renders as "{}".
func (s Set) YAML() string {
	var builder strings.Builder
	builder.WriteByte('{')
	first := true
	for _, b := range bases {
		exponent := s.Exponent(b)
		if exponent == 0 {
			continue
		}
		if !first {
			builder.WriteString(", ")
		}
		first = false
		builder.WriteString(b.Label())
		builder.WriteString(": ")
		builder.WriteString(strconv.Itoa(int(exponent)))
	}
	builder.WriteByte('}')
	return builder.String()
}
