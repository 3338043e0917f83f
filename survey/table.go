// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"fmt"
	"slices"
)

// missingTokens mirrors the strings pandas reads as NaN by default.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether a raw cell value counts as a missing value.
// Matching is exact; surrounding whitespace is significant.
func IsMissing(value string) bool {
	_, ok := missingTokens[value]
	return ok
}

// Cell is a single table value.
type Cell struct {
	Value   string
	Missing bool
}

// Table is an in-memory tabular dataset with ordered, named columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Cell
}

// NewTable creates an empty table. Column names must be unique.
func NewTable(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("survey: duplicate column %q", name)
		}
		index[name] = i
	}
	return &Table{
		columns: slices.Clone(columns),
		index:   index,
	}, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a row of raw values, classifying each with IsMissing.
func (t *Table) AppendRow(values []string) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("survey: row has %d fields, want %d", len(values), len(t.columns))
	}
	row := make([]Cell, len(values))
	for i, v := range values {
		if IsMissing(v) {
			row[i] = Cell{Missing: true}
			continue
		}
		row[i] = Cell{Value: v}
	}
	t.rows = append(t.rows, row)
	return nil
}

// Value returns the cell at (row, column). ok is false when the cell is
// missing or the column does not exist.
func (t *Table) Value(row int, column string) (value string, ok bool) {
	j, found := t.index[column]
	if !found {
		return "", false
	}
	c := t.rows[row][j]
	return c.Value, !c.Missing
}

// Column returns a copy of every cell in the named column.
func (t *Table) Column(name string) ([]Cell, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	cells := make([]Cell, len(t.rows))
	for i, row := range t.rows {
		cells[i] = row[j]
	}
	return cells, nil
}

// Record returns row i as a column → value map. Missing cells are omitted.
func (t *Table) Record(i int) map[string]string {
	rec := make(map[string]string, len(t.columns))
	for j, name := range t.columns {
		if c := t.rows[i][j]; !c.Missing {
			rec[name] = c.Value
		}
	}
	return rec
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c, _ := NewTable(t.columns)
	c.rows = make([][]Cell, len(t.rows))
	for i, row := range t.rows {
		c.rows[i] = slices.Clone(row)
	}
	return c
}

// DropColumns removes the named columns. Names that are not present are
// ignored.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		if j, ok := t.index[name]; ok {
			drop[j] = true
		}
	}
	if len(drop) == 0 {
		return
	}

	var columns []string
	for j, name := range t.columns {
		if !drop[j] {
			columns = append(columns, name)
		}
	}
	for i, row := range t.rows {
		kept := make([]Cell, 0, len(columns))
		for j, c := range row {
			if !drop[j] {
				kept = append(kept, c)
			}
		}
		t.rows[i] = kept
	}

	t.columns = columns
	t.index = make(map[string]int, len(columns))
	for j, name := range columns {
		t.index[name] = j
	}
}

// set overwrites a cell. The column must exist.
func (t *Table) set(row int, column string, c Cell) {
	t.rows[row][t.index[column]] = c
}

// filter keeps only the rows for which keep returns true and reports how
// many rows were removed.
func (t *Table) filter(keep func(row []Cell) bool) int {
	kept := t.rows[:0]
	for _, row := range t.rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	removed := len(t.rows) - len(kept)
	clear(t.rows[len(kept):])
	t.rows = kept
	return removed
}

// MissingCount returns the number of missing cells across the table.
func (t *Table) MissingCount() int {
	n := 0
	for _, row := range t.rows {
		for _, c := range row {
			if c.Missing {
				n++
			}
		}
	}
	return n
}
