package dining

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeName canonicalizes a dish name: full-width and half-width forms
// are folded to their canonical width and runs of white space collapse to a
// single space.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(width.Fold.String(name)), " ")
}
