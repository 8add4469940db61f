package grid

import "strings"

// RenderPlan says which parts of a cell's frame to draw and the box the
// content is stretched to. A zero Width or Height means "use the cell's own".
type RenderPlan struct {
	Top         bool
	Bottom      bool
	Left        bool
	Right       bool
	LeftCorner  bool
	RightCorner bool

	Width  int
	Height int
}

// Boxed returns a plan drawing every edge and both corners.
func Boxed() RenderPlan {
	return RenderPlan{
		Top:         true,
		Bottom:      true,
		Left:        true,
		Right:       true,
		LeftCorner:  true,
		RightCorner: true,
	}
}

// planAt returns the plan for the cell at (i, j). Cells below the first row
// reuse the bottom edge of the row above, cells right of the first column
// reuse the right edge of their neighbour.
func planAt(i, j, width, height int) RenderPlan {
	p := Boxed()
	p.Width = width
	p.Height = height
	if j != 0 {
		p.Left = false
		p.LeftCorner = false
	}
	if i != 0 {
		p.Top = false
	}
	return p
}

// Format renders c as a multi-line string without a trailing newline.
func (p RenderPlan) Format(c *Cell) string {
	return strings.Join(p.lines(c), "\n")
}

func (p RenderPlan) lines(c *Cell) []string {
	width := p.Width
	if width == 0 {
		width = c.Width()
	}

	// Stretching appends one newline more than the deficit. The first one
	// terminates the last content line, so non-empty content gains exactly
	// the missing lines; empty content gains one extra.
	content := c.content
	if n := c.Height(); n < p.Height {
		content += strings.Repeat("\n", p.Height-n+1)
	}
	stretched := splitLines(content)

	body := make([]string, 0, c.padding.Top+len(stretched)+c.padding.Bottom)
	body = append(body, make([]string, c.padding.Top)...)
	body = append(body, stretched...)
	body = append(body, make([]string, c.padding.Bottom)...)

	var left, right string
	if p.Left {
		left = c.border.Left
	}
	if p.Right {
		right = c.border.Right
	}
	leftPad := strings.Repeat(" ", c.padding.Left)
	rightPad := strings.Repeat(" ", c.padding.Right)

	out := make([]string, 0, len(body)+2)

	span := width + c.padding.Left + c.padding.Right
	if p.Top {
		out = append(out, p.edge(c.border.Top, c.border.Corner, span))
	}
	for _, l := range body {
		out = append(out, left+leftPad+align(l, c.alignment, width)+rightPad+right)
	}
	if p.Bottom {
		out = append(out, p.edge(c.border.Bottom, c.border.Corner, span))
	}
	return out
}

func (p RenderPlan) edge(glyph, corner string, span int) string {
	var b strings.Builder
	if p.LeftCorner {
		b.WriteString(corner)
	}
	b.WriteString(strings.Repeat(glyph, span))
	if p.RightCorner {
		b.WriteString(corner)
	}
	return b.String()
}
