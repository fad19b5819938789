// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// SplitList splits a comma separated setting into trimmed, unique, non-empty
// entries in their original order. It returns nil when nothing remains.
//
// Example:
//
//	SplitList(" /js/raphael.js, /js/jsphylosvg.js,,/js/raphael.js ")
//	// Returns: []string{"/js/raphael.js", "/js/jsphylosvg.js"}
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	result := DedupeAndTrim(strings.Split(value, ","))
	if len(result) == 0 {
		return nil
	}
	return result
}

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}
	return result
}
