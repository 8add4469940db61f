package grid

import (
	"fmt"
	"strings"
)

// concatRow merges formatted cells side by side: output line k is the
// concatenation of line k of every cell. All cells must have the same
// number of lines.
func concatRow(row int, cells [][]string) []string {
	if len(cells) == 0 {
		return nil
	}
	want := len(cells[0])
	for j, c := range cells[1:] {
		if len(c) != want {
			panic(fmt.Sprintf("grid: row %d: cell %d has %d lines, cell 0 has %d", row, j+1, len(c), want))
		}
	}

	out := make([]string, want)
	var b strings.Builder
	for k := range out {
		b.Reset()
		for _, c := range cells {
			b.WriteString(c[k])
		}
		out[k] = b.String()
	}
	return out
}

// writeBlock appends each line followed by a newline.
func writeBlock(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
}
