package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Alignment controls horizontal placement of a line within its column width.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// ParseAlignment converts "left", "center" or "right" (case-insensitive) to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignCenter, fmt.Errorf("invalid alignment %q (expected left, center or right)", s)
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// align pads text with spaces to width characters. Center places the odd
// space on the right. Text already at or beyond width is returned unchanged.
func align(text string, a Alignment, width int) string {
	pad := width - utf8.RuneCountInString(text)
	if pad <= 0 {
		return text
	}
	switch a {
	case AlignLeft:
		return text + strings.Repeat(" ", pad)
	case AlignRight:
		return strings.Repeat(" ", pad) + text
	default:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	}
}
