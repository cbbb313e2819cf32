package codeblock

import "strings"

// Property is one `key: value` entry extracted from a codeblock. Key is the
// lowercase identifier left of the colon; Value holds the first-line
// remainder plus any continuation or fenced lines, joined by newlines. Once
// the parser has finalized a property neither field changes.
type Property struct {
	Key   string
	Value string
}

// Lookup builds a key→value index over a property list. When a key appears
// more than once (possible only with validation disabled) the first
// occurrence wins, matching declaration order everywhere else in the
// pipeline.
func Lookup(properties []Property) map[string]string {
	index := make(map[string]string, len(properties))
	for _, property := range properties {
		if _, exists := index[property.Key]; exists {
			continue
		}
		index[property.Key] = property.Value
	}
	return index
}

// Format re-serializes a property list back into codeblock syntax: the first
// value line follows the `key: ` prefix and every remaining line stands
// alone. Parsing the result yields the same property list.
func Format(properties []Property) string {
	var out strings.Builder
	for i, property := range properties {
		if i > 0 {
			out.WriteString("\n")
		}
		lines := strings.Split(property.Value, "\n")
		out.WriteString(property.Key)
		out.WriteString(": ")
		out.WriteString(lines[0])
		for _, line := range lines[1:] {
			out.WriteString("\n")
			out.WriteString(line)
		}
	}
	return out.String()
}
