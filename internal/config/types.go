// Package config holds the table style and tabulation settings, loaded from
// an embedded default YAML document with an optional user file merged on top.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oakwood-commons/papergrid/pkg/grid"
)

// Config is the full configuration document.
type Config struct {
	Style Style `yaml:"style"`
	Table Table `yaml:"table"`
}

// Style controls how every cell of the rendered grid is framed.
type Style struct {
	Border      Border  `yaml:"border"`
	Align       string  `yaml:"align"`
	HeaderAlign string  `yaml:"header_align"`
	Padding     Padding `yaml:"padding"`
}

// Border glyphs. An empty glyph is allowed and draws nothing.
type Border struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Corner string `yaml:"corner"`
}

// Padding inside each cell border.
type Padding struct {
	Horizontal int `yaml:"horizontal"`
	Vertical   int `yaml:"vertical"`
}

// Table controls how input records become rows and columns.
type Table struct {
	// Header prints column names as the first row.
	Header bool `yaml:"header"`
	// MaxCellWidth truncates cell lines wider than this many terminal
	// columns (0 = unlimited).
	MaxCellWidth int `yaml:"max_cell_width"`
	// EmptyCell replaces empty and null values.
	EmptyCell string `yaml:"empty_cell"`
	// Columns, when set, shows only these columns in this order.
	Columns []string `yaml:"columns,omitempty"`
	// ColumnOrder lists columns to put first; the rest keep their order.
	ColumnOrder []string `yaml:"column_order,omitempty"`
	// HiddenColumns are omitted.
	HiddenColumns []string `yaml:"hidden_columns,omitempty"`
}

// GridBorder converts the glyphs to a grid.Border.
func (b Border) GridBorder() grid.Border {
	return grid.Border{
		Top:    b.Top,
		Bottom: b.Bottom,
		Left:   b.Left,
		Right:  b.Right,
		Corner: b.Corner,
	}
}

// Alignments parses the body and header alignments. An empty header
// alignment follows the body.
func (s Style) Alignments() (body, header grid.Alignment, err error) {
	body, err = grid.ParseAlignment(s.Align)
	if err != nil {
		return body, header, fmt.Errorf("style.align: %w", err)
	}
	if s.HeaderAlign == "" {
		return body, body, nil
	}
	header, err = grid.ParseAlignment(s.HeaderAlign)
	if err != nil {
		return body, header, fmt.Errorf("style.header_align: %w", err)
	}
	return body, header, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, _, err := c.Style.Alignments(); err != nil {
		return err
	}
	if c.Style.Padding.Horizontal < 0 {
		return fmt.Errorf("style.padding.horizontal must be non-negative, got %d", c.Style.Padding.Horizontal)
	}
	if c.Style.Padding.Vertical < 0 {
		return fmt.Errorf("style.padding.vertical must be non-negative, got %d", c.Style.Padding.Vertical)
	}
	if c.Table.EmptyCell == "" {
		return errors.New("table.empty_cell must not be empty (use \" \" for blank cells)")
	}
	if strings.ContainsAny(c.Table.EmptyCell, "\r\n") {
		return fmt.Errorf("table.empty_cell must be a single line, got %q", c.Table.EmptyCell)
	}
	if c.Table.MaxCellWidth < 0 {
		return fmt.Errorf("table.max_cell_width must be non-negative, got %d", c.Table.MaxCellWidth)
	}
	return nil
}
