// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

import (
	"fmt"
	"sort"

	"github.com/dimetric/dimetric/lib/dimension"
)

// Descriptor is the runtime, type-erased view of a unit category, for
// callers that receive category and unit names as strings (the CLI,
// jobs files). Compiled code should use the generic API instead.
type Descriptor struct {
	// Name is the lowercase category name, such as "energy".
	Name string

	// Dimensions is the dimension set the category represents.
	Dimensions dimension.Set

	// Standard is the abbreviation of the pivot unit.
	Standard string

	// Units describes every unit in the category, sorted by
	// abbreviation.
	Units []UnitDescriptor

	// convert resolves both spellings and converts, closing over the
	// typed category.
	convert func(value float64, from, to string) (float64, error)
}

// UnitDescriptor describes one unit of a category.
type UnitDescriptor struct {
	// Abbreviation is the display abbreviation.
	Abbreviation string

	// Spellings lists every accepted parse spelling.
	Spellings []string

	// System is the abbreviation of the consistent system this unit is
	// coherent in, or "" when there is none.
	System string
}

// Convert expresses value, measured in the unit spelled from, in the
// unit spelled to. Returns an error when either spelling is not in the
// category's spelling table.
func (d *Descriptor) Convert(value float64, from, to string) (float64, error) {
	return d.convert(value, from, to)
}

// registry holds every category descriptor, keyed by category name.
// Populated during package initialization and read-only afterwards.
var registry = make(map[string]*Descriptor)

// registerCategory builds and stores the type-erased view of a typed
// category. Called from newCategory only.
func registerCategory[U Measure[U]](c *category[U]) {
	if _, exists := registry[c.name]; exists {
		panic(fmt.Sprintf("unit: category %q registered twice", c.name))
	}

	descriptor := &Descriptor{
		Name:       c.name,
		Dimensions: c.dimensions,
		Standard:   c.units[c.standard].abbreviation,
		convert: func(value float64, from, to string) (float64, error) {
			fromUnit, ok := c.spellings[from]
			if !ok {
				return 0, fmt.Errorf("unknown %s unit %q", c.name, from)
			}
			toUnit, ok := c.spellings[to]
			if !ok {
				return 0, fmt.Errorf("unknown %s unit %q", c.name, to)
			}
			return Convert(value, fromUnit, toUnit), nil
		},
	}

	// Definition order is not recoverable from the unit map; sort by
	// abbreviation for stable listing output.
	for u, info := range c.units {
		system := ""
		if related, ok := c.systems[u]; ok {
			system = related.Abbreviation()
		}
		descriptor.Units = append(descriptor.Units, UnitDescriptor{
			Abbreviation: info.abbreviation,
			Spellings:    info.spellings,
			System:       system,
		})
	}
	sort.Slice(descriptor.Units, func(a, b int) bool {
		return descriptor.Units[a].Abbreviation < descriptor.Units[b].Abbreviation
	})

	registry[c.name] = descriptor
}

// Categories returns every registered category descriptor, sorted by
// name.
func Categories() []*Descriptor {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptors := make([]*Descriptor, len(names))
	for i, name := range names {
		descriptors[i] = registry[name]
	}
	return descriptors
}

// LookupCategory returns the descriptor of the named category. The
// second result is false when the name is not registered.
func LookupCategory(name string) (*Descriptor, bool) {
	descriptor, ok := registry[name]
	return descriptor, ok
}
