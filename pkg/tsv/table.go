package tsv

import (
	"errors"
	"fmt"
)

// Table is an in-memory delimited table. Every row has exactly one cell per
// column, and an empty cell denotes a missing value.
type Table struct {
	Columns []string
	Rows    [][]string
}

var ErrColumn = errors.New("resolving column")

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, bool) {
	for i, column := range t.Columns {
		if column == name {
			return i, true
		}
	}

	return 0, false
}

// MoveToFront makes the named column the first column, shifting the columns
// before it right by one. Rows are rewritten in place.
func (t *Table) MoveToFront(name string) error {
	from, ok := t.Column(name)
	if !ok {
		return fmt.Errorf("%w: no column %q", ErrColumn, name)
	}

	rotate(t.Columns, from)
	for _, row := range t.Rows {
		rotate(row, from)
	}

	return nil
}

func rotate(cells []string, from int) {
	moved := cells[from]
	copy(cells[1:from+1], cells[:from])
	cells[0] = moved
}

// AppendColumn adds a column after the existing ones. The number of values
// must match the number of rows.
func (t *Table) AppendColumn(name string, values []string) error {
	if _, exists := t.Column(name); exists {
		return fmt.Errorf("%w: column %q already exists", ErrColumn, name)
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("%w: got %d values for column %q but table has %d rows",
			ErrColumn, len(values), name, len(t.Rows))
	}

	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}

	return nil
}

// Select returns a new Table holding only the named columns, in the given
// order. Cell slices are copied; the receiver is not modified.
func (t *Table) Select(names ...string) (*Table, error) {
	indices := make([]int, len(names))
	for i, name := range names {
		idx, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: no column %q", ErrColumn, name)
		}
		indices[i] = idx
	}

	result := &Table{
		Columns: append([]string{}, names...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		selected := make([]string, len(indices))
		for j, idx := range indices {
			selected[j] = row[idx]
		}
		result.Rows[i] = selected
	}

	return result, nil
}
