// Package text provides string helpers shared by the view layer.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Excerpt truncates s to at most width display columns, appending "..."
// when something was cut. Width is measured with East Asian character
// widths so CJK titles truncate at the same visual length as Latin ones.
func Excerpt(s string, width int) string {
	s = NormalizeWhitespace(s)

	if runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "...")
}
