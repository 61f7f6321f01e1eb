// Package wcwidth provides utilities for determining the display width of
// characters and strings, like wcwidth and wcswidth in POSIX.
package wcwidth

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/width"
)

// Characters that are neither East Asian wide nor zero-width occupy one cell.
// Overrides take precedence over everything else, and are kept in a sync.Map
// so that lookups never block each other.
var overrides sync.Map

var zeroWidth = []*unicode.RangeTable{unicode.Mn, unicode.Me, unicode.Cf}

// OfRune returns the display width of a single rune.
func OfRune(r rune) int {
	if w, ok := overrides.Load(r); ok {
		return w.(int)
	}
	if unicode.IsOneOf(zeroWidth, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// Override overrides the display width of a rune. If w < 0, any existing
// override is removed.
func Override(r rune, w int) {
	if w < 0 {
		Unoverride(r)
		return
	}
	overrides.Store(r, w)
}

// Unoverride removes the display width override of a rune.
func Unoverride(r rune) {
	overrides.Delete(r)
}

// Of returns the display width of a string, the sum of the widths of its
// runes.
func Of(s string) (w int) {
	for _, r := range s {
		w += OfRune(r)
	}
	return
}

// Trim trims the string to fit within the given display width, dropping runes
// from the end.
func Trim(s string, wmax int) string {
	w := 0
	for i, r := range s {
		w += OfRune(r)
		if w > wmax {
			return s[:i]
		}
	}
	return s
}

// Force forces the string to the given display width, trimming it if it is
// too wide and padding it with spaces if it is too narrow.
func Force(s string, w int) string {
	trimmed := Trim(s, w)
	return trimmed + strings.Repeat(" ", w-Of(trimmed))
}

// TrimEachLine trims each line of the string to fit within the given display
// width.
func TrimEachLine(s string, wmax int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Trim(line, wmax)
	}
	return strings.Join(lines, "\n")
}
