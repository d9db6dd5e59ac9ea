// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package quantity

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Precision selects how many significant digits the renderers emit.
type Precision int

const (
	// DoublePrecision renders 15 significant digits, the largest
	// count guaranteed to survive a float64 round trip unchanged.
	DoublePrecision Precision = iota

	// SinglePrecision renders 6 significant digits, matching float32
	// display precision. Handy for compact human-facing output.
	SinglePrecision
)

// digits returns the significant digit count for the precision.
func (p Precision) digits() int {
	if p == SinglePrecision {
		return 6
	}
	return 15
}

// formatFloat renders value with the precision's significant digits,
// using exponent notation only when the exponent demands it.
func formatFloat(value float64, precision Precision) string {
	return strconv.FormatFloat(value, 'g', precision.digits(), 64)
}

// yamlFlow marshals a value node and a unit abbreviation as a YAML
// flow mapping: {value: <node>, unit: "<abbreviation>"}.
func yamlFlow(value *yaml.Node, abbreviation string) string {
	node := &yaml.Node{
		Kind:  yaml.MappingNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "value"},
			value,
			{Kind: yaml.ScalarNode, Value: "unit"},
			{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: abbreviation},
		},
	}
	rendered, err := yaml.Marshal(node)
	if err != nil {
		// A flow mapping of scalar nodes cannot fail to marshal.
		panic("quantity: YAML rendering failed: " + err.Error())
	}
	return strings.TrimSuffix(string(rendered), "\n")
}

// yamlFloat returns a YAML scalar node holding an already-formatted
// float. The node carries no explicit tag: integral values like "1"
// resolve as integers, which keeps the emitted text plain.
func yamlFloat(text string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: text}
}

// yamlFloatMapping returns a YAML flow mapping of component names to
// formatted floats, for vector and tensor values.
func yamlFloatMapping(names []string, values []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for i, name := range names {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			yamlFloat(values[i]),
		)
	}
	return node
}

// jsonObject renders {"<name>":<value>,...} from parallel slices of
// names and pre-rendered values.
func jsonObject(names []string, values []string) string {
	var builder strings.Builder
	builder.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteByte('"')
		builder.WriteString(name)
		builder.WriteString(`":`)
		builder.WriteString(values[i])
	}
	builder.WriteByte('}')
	return builder.String()
}

// xmlElements renders <name>value</name> element pairs from parallel
// slices of names and pre-rendered values.
func xmlElements(names []string, values []string) string {
	var builder strings.Builder
	for i, name := range names {
		builder.WriteByte('<')
		builder.WriteString(name)
		builder.WriteByte('>')
		builder.WriteString(values[i])
		builder.WriteString("</")
		builder.WriteString(name)
		builder.WriteByte('>')
	}
	return builder.String()
}

// formatAll renders every component with the same precision.
func formatAll(precision Precision, components ...float64) []string {
	rendered := make([]string, len(components))
	for i, component := range components {
		rendered[i] = formatFloat(component, precision)
	}
	return rendered
}
