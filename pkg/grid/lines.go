package grid

import (
	"strings"
	"unicode/utf8"
)

// splitLines splits s into lines using terminator semantics: a final "\n"
// ends the last line instead of starting an empty one, "\r\n" counts as a
// single break, and the empty string has no lines at all.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	terminated := strings.HasSuffix(s, "\n")
	if terminated {
		s = s[:len(s)-1]
	}
	lines := strings.Split(s, "\n")
	last := len(lines) - 1
	for i, l := range lines {
		if i < last || terminated {
			lines[i] = strings.TrimSuffix(l, "\r")
		}
	}
	return lines
}

// maxLineWidth returns the widest line of s in characters.
func maxLineWidth(s string) int {
	width := 0
	for _, l := range splitLines(s) {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	return width
}
