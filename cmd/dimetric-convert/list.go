// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dimetric/dimetric/lib/unit"
)

// listCategories prints the unit tables of every registered category,
// or of the single named category when filter is non-empty.
func listCategories(w io.Writer, filter string) error {
	descriptors := unit.Categories()
	if filter != "" {
		descriptor, ok := unit.LookupCategory(filter)
		if !ok {
			return fmt.Errorf("unknown category %q", filter)
		}
		descriptors = []*unit.Descriptor{descriptor}
	}

	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "CATEGORY\tDIMENSIONS\tUNIT\tSYSTEM\tSPELLINGS\n")
	for _, descriptor := range descriptors {
		// Category name and dimensions label the first row only,
		// keeping the table scannable.
		for i, u := range descriptor.Units {
			name, dimensions := "", ""
			if i == 0 {
				name = descriptor.Name
				dimensions = descriptor.Dimensions.String()
			}
			abbreviation := u.Abbreviation
			if abbreviation == descriptor.Standard {
				abbreviation += " *"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				name,
				dimensions,
				abbreviation,
				u.System,
				strings.Join(u.Spellings, ", "))
		}
	}
	return tw.Flush()
}
