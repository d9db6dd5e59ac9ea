// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import (
	"fmt"

	"github.com/dimetric/dimetric/lib/dimension"
)

// Measure constrains a type to the closed unit enumerations declared
// in this package. The unexported descriptor method makes the set of
// categories closed: conversions can only be requested for units this
// package knows how to convert.
type Measure[U comparable] interface {
	comparable
	category() *category[U]
}

// affine is the to-standard transform of one unit: a value expressed
// in the unit equals value*scale + offset in the category's standard
// unit. Most units are pure scale; temperature scales carry offsets.
type affine struct {
	scale  float64
	offset float64
}

// toStandard maps a value in the unit to the standard unit.
func (a affine) toStandard(value float64) float64 {
	return value*a.scale + a.offset
}

// fromStandard maps a value in the standard unit back to the unit.
func (a affine) fromStandard(value float64) float64 {
	return (value - a.offset) / a.scale
}

// unitInfo is the per-unit metadata held by a category descriptor.
type unitInfo struct {
	abbreviation string
	spellings    []string
	transform    affine
}

// def is one row of a category definition table: the unit, its display
// abbreviation, every accepted parse spelling, and the to-standard
// scale and offset.
type def[U comparable] struct {
	unit         U
	abbreviation string
	spellings    []string
	scale        float64
	offset       float64
}

// category is the immutable descriptor of one unit category. Built
// once by newCategory during package initialization.
type category[U comparable] struct {
	name       string
	standard   U
	dimensions dimension.Set
	units      map[U]unitInfo
	spellings  map[string]U
	consistent [4]U
	systems    map[U]System
}

// newCategory validates a definition table, builds the category
// descriptor, and registers its type-erased runtime view. Definition
// mistakes (duplicate spellings, zero scales, a standard unit whose
// transform is not the identity) are programming errors and panic.
func newCategory[U Measure[U]](
	name string,
	standard U,
	dimensions dimension.Set,
	defs []def[U],
	consistent [4]U,
) *category[U] {
	c := &category[U]{
		name:       name,
		standard:   standard,
		dimensions: dimensions,
		units:      make(map[U]unitInfo, len(defs)),
		spellings:  make(map[string]U, len(defs)*2),
		consistent: consistent,
	}

	for _, d := range defs {
		if d.scale == 0 {
			panic(fmt.Sprintf("unit: %s %q has zero scale", name, d.abbreviation))
		}
		if d.unit == standard && (d.scale != 1 || d.offset != 0) {
			panic(fmt.Sprintf("unit: %s standard unit %q transform is not the identity", name, d.abbreviation))
		}
		if _, exists := c.units[d.unit]; exists {
			panic(fmt.Sprintf("unit: %s defines %q twice", name, d.abbreviation))
		}
		c.units[d.unit] = unitInfo{
			abbreviation: d.abbreviation,
			spellings:    d.spellings,
			transform:    affine{scale: d.scale, offset: d.offset},
		}
		for _, spelling := range d.spellings {
			if _, exists := c.spellings[spelling]; exists {
				panic(fmt.Sprintf("unit: %s spelling %q is ambiguous", name, spelling))
			}
			c.spellings[spelling] = d.unit
		}
	}

	if _, exists := c.units[standard]; !exists {
		panic(fmt.Sprintf("unit: %s standard unit is not in the definition table", name))
	}
	for _, u := range consistent {
		if _, exists := c.units[u]; !exists {
			panic(fmt.Sprintf("unit: %s consistent unit is not in the definition table", name))
		}
	}

	// The related-system mapping is the partial inverse of the
	// consistent-unit table: a unit maps to the first system it is
	// coherent in. Units shared by several systems keep the first.
	c.systems = make(map[U]System, 4)
	for _, system := range Systems {
		u := consistent[system]
		if _, exists := c.systems[u]; !exists {
			c.systems[u] = system
		}
	}

	registerCategory(c)
	return c
}

// Standard returns the category's pivot unit: the SI-coherent unit all
// conversions pass through.
func Standard[U Measure[U]]() U {
	var zero U
	return zero.category().standard
}

// Dimensions returns the dimension set the category represents.
func Dimensions[U Measure[U]]() dimension.Set {
	var zero U
	return zero.category().dimensions
}

// Abbreviation returns the display abbreviation of a unit.
func Abbreviation[U Measure[U]](u U) string {
	return u.category().units[u].abbreviation
}

// CategoryName returns the lowercase name of the unit's category, such
// as "energy".
func CategoryName[U Measure[U]]() string {
	var zero U
	return zero.category().name
}

// Parse resolves text against the category's spelling table. Matching
// is exact and case-sensitive; the second result is false when the
// text matches nothing.
func Parse[U Measure[U]](text string) (U, bool) {
	var zero U
	u, ok := zero.category().spellings[text]
	return u, ok
}

// Consistent returns the category's coherent unit in the given system.
func Consistent[U Measure[U]](system System) U {
	var zero U
	return zero.category().consistent[system]
}

// RelatedSystem returns the system the unit is coherent in. The second
// result is false for units that are coherent in no system, such as
// hours or miles.
func RelatedSystem[U Measure[U]](u U) (System, bool) {
	system, ok := u.category().systems[u]
	return system, ok
}
