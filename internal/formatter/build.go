package formatter

import (
	"github.com/oakwood-commons/papergrid/internal/config"
	"github.com/oakwood-commons/papergrid/pkg/grid"
)

// BuildGrid lays t out on a grid styled by cfg. With cfg.Table.Header set
// and at least one column, the column names form the first row. Empty
// cells get cfg.Table.EmptyCell. Column names and keys get the same line
// normalization as values.
func BuildGrid(t Table, cfg config.Config) (*grid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bodyAlign, headerAlign, err := cfg.Style.Alignments()
	if err != nil {
		return nil, err
	}

	offset := 0
	if cfg.Table.Header && len(t.Columns) > 0 {
		offset = 1
	}
	g := grid.New(len(t.Rows)+offset, len(t.Columns))

	border := cfg.Style.Border.GridBorder()
	place := func(i, j int, text string, a grid.Alignment) {
		text = normalizeLines(truncate(text, cfg.Table.MaxCellWidth))
		if text == "" {
			text = cfg.Table.EmptyCell
		}
		g.Cell(i, j).
			SetContent(text).
			SetAlignment(a).
			SetBorder(border).
			SetHorizontalPadding(cfg.Style.Padding.Horizontal).
			SetVerticalPadding(cfg.Style.Padding.Vertical)
	}

	if offset == 1 {
		for j, name := range t.Columns {
			place(0, j, name, headerAlign)
		}
	}
	for i, row := range t.Rows {
		for j := range t.Columns {
			var text string
			if j < len(row) {
				text = row[j]
			}
			place(i+offset, j, text, bodyAlign)
		}
	}
	return g, nil
}
