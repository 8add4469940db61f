// Package formatter turns decoded input into a table of strings and lays
// that table out on a grid.
package formatter

import (
	"sort"
	"strconv"
)

// Column names used when the input has no field names of its own.
const (
	KeyColumn   = "KEY"
	ValueColumn = "VALUE"
)

// Table is a header plus rows of cell text. Rows may be shorter than
// Columns; missing cells render as the empty-cell placeholder.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Options controls tabulation.
type Options struct {
	// FirstRowHeader takes column names from the first row of a list of
	// lists (CSV input).
	FirstRowHeader bool
	// SelectColumns, when non-empty, keeps only these columns in this order.
	SelectColumns []string
	// ColumnOrder puts these columns first; the rest keep their order.
	ColumnOrder []string
	// HiddenColumns are dropped.
	HiddenColumns []string
}

// Tabulate converts a decoded document into a table:
//   - a list of maps yields one row per map, columns from the sorted union of keys
//   - a list of lists yields its rows as-is, columns named by index
//   - a map yields KEY/VALUE rows sorted by key
//   - anything else yields a single VALUE column
func Tabulate(data any, opts Options) Table {
	var t Table
	switch v := data.(type) {
	case nil:
		return t
	case []any:
		switch {
		case len(v) > 0 && all(v, isMap):
			t = tabulateRecords(v)
		case len(v) > 0 && all(v, isList):
			t = tabulateRows(v, opts.FirstRowHeader)
		default:
			t = tabulateValues(v)
		}
	case map[string]any:
		t = tabulateMap(v)
	default:
		t = Table{Columns: []string{ValueColumn}, Rows: [][]string{{Stringify(v)}}}
	}
	return t.project(opts)
}

func tabulateRecords(records []any) Table {
	seen := map[string]bool{}
	var columns []string
	for _, r := range records {
		for k := range r.(map[string]any) {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	rows := make([][]string, len(records))
	for i, r := range records {
		m := r.(map[string]any)
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = Stringify(m[col])
		}
		rows[i] = row
	}
	return Table{Columns: columns, Rows: rows}
}

func tabulateRows(lists []any, firstRowHeader bool) Table {
	rows := make([][]string, len(lists))
	width := 0
	for i, l := range lists {
		items := l.([]any)
		row := make([]string, len(items))
		for j, item := range items {
			row[j] = Stringify(item)
		}
		rows[i] = row
		width = max(width, len(row))
	}

	var columns []string
	if firstRowHeader {
		columns = append(make([]string, 0, width), rows[0]...)
		for len(columns) < width {
			columns = append(columns, strconv.Itoa(len(columns)))
		}
		rows = rows[1:]
	} else {
		columns = make([]string, width)
		for j := range columns {
			columns[j] = strconv.Itoa(j)
		}
	}
	return Table{Columns: columns, Rows: rows}
}

func tabulateMap(m map[string]any) Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, Stringify(m[k])}
	}
	return Table{Columns: []string{KeyColumn, ValueColumn}, Rows: rows}
}

func tabulateValues(values []any) Table {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{Stringify(v)}
	}
	return Table{Columns: []string{ValueColumn}, Rows: rows}
}

// project applies column selection, ordering and hiding.
func (t Table) project(opts Options) Table {
	if len(opts.SelectColumns) == 0 && len(opts.ColumnOrder) == 0 && len(opts.HiddenColumns) == 0 {
		return t
	}

	index := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	hidden := make(map[string]bool, len(opts.HiddenColumns))
	for _, c := range opts.HiddenColumns {
		hidden[c] = true
	}

	var order []int
	used := make(map[int]bool, len(t.Columns))
	add := func(i int) {
		if !used[i] && !hidden[t.Columns[i]] {
			used[i] = true
			order = append(order, i)
		}
	}

	if len(opts.SelectColumns) > 0 {
		for _, c := range opts.SelectColumns {
			if i, ok := index[c]; ok {
				add(i)
			}
		}
	} else {
		for _, c := range opts.ColumnOrder {
			if i, ok := index[c]; ok {
				add(i)
			}
		}
		for i := range t.Columns {
			add(i)
		}
	}

	out := Table{Columns: make([]string, len(order)), Rows: make([][]string, len(t.Rows))}
	for j, i := range order {
		out.Columns[j] = t.Columns[i]
	}
	for r, row := range t.Rows {
		projected := make([]string, len(order))
		for j, i := range order {
			if i < len(row) {
				projected[j] = row[i]
			}
		}
		out.Rows[r] = projected
	}
	return out
}

func all(values []any, pred func(any) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}
