// Package names provides case-insensitive matching for display names
package names

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of a name, trimmed of surrounding space
func Fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Equal reports whether two names match ignoring case
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
