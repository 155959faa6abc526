// Package difftest renders a unified diff between two strings for test
// failure messages, typically a round-trip test's expected vs. actual
// serialized document.
//
// Grounded on go-difflib's presence across the pack as its one diff
// library (pulled in transitively via testify in several example repos);
// used here directly rather than through testify, since this module has
// no other testify dependency to justify adding it.
package difftest

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff of want vs got, labeled accordingly. An
// empty string means the two inputs were identical.
func Unified(want, got string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "<diff error: " + err.Error() + ">"
	}
	return strings.TrimRight(text, "\n")
}
