package grid

import "fmt"

// Border holds the glyphs used to draw a cell's edges. Each glyph is a
// repeat unit; an empty glyph draws nothing.
type Border struct {
	Top    string
	Bottom string
	Left   string
	Right  string
	Corner string
}

// DefaultBorder returns the ASCII box border: "-" edges, "|" sides and "+" corners.
func DefaultBorder() Border {
	return Border{
		Top:    "-",
		Bottom: "-",
		Left:   "|",
		Right:  "|",
		Corner: "+",
	}
}

// Padding is blank space inside a cell's border: lines above and below the
// content, spaces to its left and right.
type Padding struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Cell is a single grid slot. The zero value is not ready for use; cells
// obtained from Grid.Cell or NewCell start with DefaultBorder, center
// alignment, no padding and empty content.
type Cell struct {
	content   string
	alignment Alignment
	border    Border
	padding   Padding
}

// NewCell returns a cell with default settings.
func NewCell() Cell {
	return Cell{
		alignment: AlignCenter,
		border:    DefaultBorder(),
	}
}

// SetContent replaces the cell text. Embedded newlines separate lines.
func (c *Cell) SetContent(s string) *Cell {
	c.content = s
	return c
}

func (c *Cell) SetAlignment(a Alignment) *Cell {
	c.alignment = a
	return c
}

func (c *Cell) SetCorner(s string) *Cell {
	c.border.Corner = s
	return c
}

func (c *Cell) SetTopBorder(s string) *Cell {
	c.border.Top = s
	return c
}

func (c *Cell) SetBottomBorder(s string) *Cell {
	c.border.Bottom = s
	return c
}

func (c *Cell) SetLeftBorder(s string) *Cell {
	c.border.Left = s
	return c
}

func (c *Cell) SetRightBorder(s string) *Cell {
	c.border.Right = s
	return c
}

// SetBorder replaces all glyphs at once.
func (c *Cell) SetBorder(b Border) *Cell {
	c.border = b
	return c
}

// SetVerticalPadding sets both the top and bottom padding to n lines.
func (c *Cell) SetVerticalPadding(n int) *Cell {
	mustNotBeNegative("vertical padding", n)
	c.padding.Top = n
	c.padding.Bottom = n
	return c
}

// SetHorizontalPadding sets both the left and right padding to n spaces.
func (c *Cell) SetHorizontalPadding(n int) *Cell {
	mustNotBeNegative("horizontal padding", n)
	c.padding.Left = n
	c.padding.Right = n
	return c
}

func (c *Cell) Content() string      { return c.content }
func (c *Cell) Alignment() Alignment { return c.alignment }
func (c *Cell) Border() Border       { return c.border }
func (c *Cell) Padding() Padding     { return c.padding }

// Height returns the number of content lines. Empty content has none.
func (c *Cell) Height() int {
	return len(splitLines(c.content))
}

// Width returns the character count of the longest content line, without
// padding or borders.
func (c *Cell) Width() int {
	return maxLineWidth(c.content)
}

func mustNotBeNegative(what string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("grid: negative %s %d", what, n))
	}
}
