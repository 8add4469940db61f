package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-shape, row-major matrix of cells.
type Grid struct {
	rows    int
	columns int
	cells   []Cell
}

// New allocates a rows x columns grid of default cells. Either dimension
// may be zero.
func New(rows, columns int) *Grid {
	mustNotBeNegative("row count", rows)
	mustNotBeNegative("column count", columns)

	cells := make([]Cell, rows*columns)
	for i := range cells {
		cells[i] = NewCell()
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// Cell returns the cell at row i, column j for in-place configuration.
// It panics when (i, j) lies outside the grid.
func (g *Grid) Cell(i, j int) *Cell {
	if i < 0 || i >= g.rows || j < 0 || j >= g.columns {
		panic(fmt.Sprintf("grid: cell (%d, %d) out of range for %dx%d grid", i, j, g.rows, g.columns))
	}
	return &g.cells[g.index(i, j)]
}

func (g *Grid) CountRows() int    { return g.rows }
func (g *Grid) CountColumns() int { return g.columns }

func (g *Grid) index(i, j int) int {
	return g.columns*i + j
}

func (g *Grid) row(i int) []Cell {
	start := g.index(i, 0)
	return g.cells[start : start+g.columns]
}

// column collects column j by striding over the backing slice.
func (g *Grid) column(j int) []*Cell {
	cells := make([]*Cell, 0, g.rows)
	for k := j; k < len(g.cells); k += g.columns {
		cells = append(cells, &g.cells[k])
	}
	return cells
}

// rowHeights returns the tallest cell height of each row.
func (g *Grid) rowHeights() []int {
	heights := make([]int, g.rows)
	for i := range heights {
		row := g.row(i)
		for j := range row {
			if h := row[j].Height(); h > heights[i] {
				heights[i] = h
			}
		}
	}
	return heights
}

// columnWidths returns the widest cell of each column.
func (g *Grid) columnWidths() []int {
	widths := make([]int, g.columns)
	for j := range widths {
		for _, c := range g.column(j) {
			if w := c.Width(); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

// Render draws the grid. Every row, including the last, ends with a
// newline; an empty grid renders as the empty string.
func (g *Grid) Render() string {
	if g.rows == 0 || g.columns == 0 {
		return ""
	}

	heights := g.rowHeights()
	widths := g.columnWidths()

	var b strings.Builder
	formatted := make([][]string, g.columns)
	for i := 0; i < g.rows; i++ {
		row := g.row(i)
		for j := range row {
			formatted[j] = planAt(i, j, widths[j], heights[i]).lines(&row[j])
		}
		writeBlock(&b, concatRow(i, formatted))
	}
	return b.String()
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return g.Render()
}
