// Package forms holds the numeric coercion rules applied at the form
// boundary. The UI accepts free text in numeric fields; anything that does
// not parse becomes zero instead of an error, matching standard form-input
// coercion. Keeping the defaulting in one place makes the rule auditable.
package forms

import (
	"strconv"
	"strings"
)

// ParseIntOrZero converts a quantity field to an int, defaulting to zero
// on empty or non-numeric input.
func ParseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ParseFloatOrZero converts a price field to a float64, defaulting to zero
// on empty or non-numeric input.
func ParseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
