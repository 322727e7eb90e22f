// Package codepoint provides Unicode code-point indexed string
// utilities. Every column and offset in the engine is measured in code
// points, never in bytes or UTF-16 units, so surrogate-pair and
// astral-plane characters (emoji, mathematical alphanumerics) count as
// single positions. All other packages route their text arithmetic
// through this one.
//
// There are no error states: out-of-range indices clamp.
package codepoint

import "unicode/utf8"

// Count returns the number of code points in s.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}

// Runes returns s decoded into a slice of code points.
func Runes(s string) []rune {
	return []rune(s)
}

// Slice returns the substring of s between the code-point indices
// start (inclusive) and end (exclusive). Indices clamp to [0, Count(s)];
// an inverted range yields the empty string.
func Slice(s string, start, end int) string {
	r := []rune(s)
	if start < 0 {
		start = 0
	}
	if end > len(r) {
		end = len(r)
	}
	if start >= len(r) || end <= start {
		return ""
	}
	return string(r[start:end])
}

// At returns the code point at index i. The second return value is
// false when i is out of range.
func At(s string, i int) (rune, bool) {
	if i < 0 {
		return 0, false
	}
	for n, r := range []rune(s) {
		if n == i {
			return r, true
		}
	}
	return 0, false
}
