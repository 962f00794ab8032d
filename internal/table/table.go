package table

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/b3by/pymudata/internal/errors"
)

// Table is a header plus string rows, as read from a delimited file or a
// worksheet. The header row is not counted as a data row.
type Table struct {
	header []string
	rows   [][]string
}

// New builds a table from a header and data rows. The slices are used as
// given, not copied.
func New(header []string, rows [][]string) *Table {
	return &Table{header: header, rows: rows}
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of header columns
func (t *Table) ColumnCount() int {
	return len(t.header)
}

// Header returns a copy of the column names
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Row returns data row i. It panics if i is out of range, like a slice index.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Rows returns the data rows. The outer slice is a copy; the rows themselves
// are shared with the table and must not be modified.
func (t *Table) Rows() [][]string {
	return append([][]string(nil), t.rows...)
}

// ColumnIndex returns the position of the named column
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.header {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// Column returns every value of the named column
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, apperrors.NewParsingError(fmt.Sprintf("column %q not found", name), nil).
			WithContext("columns", t.Header())
	}

	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, nil
}

// Float64Column parses the named column as floating point values
func (t *Table) Float64Column(name string) ([]float64, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("column %q row %d", name, i), err)
		}
		values[i] = v
	}
	return values, nil
}

// Slice returns a view over rows [start, end). The view shares storage with
// t. It panics when the bounds are invalid, like a slice expression.
func (t *Table) Slice(start, end int) *Table {
	return &Table{header: t.header, rows: t.rows[start:end:end]}
}
