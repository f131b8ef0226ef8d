package tabular

import (
	"github.com/sheetfuse/sheetfuse/pkg/errors"
)

// Dataset is an ordered sequence of rows sharing one column set. Column
// order and row order are significant; both are preserved through every
// operation. Consumers must not mutate a dataset they did not build.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New creates an empty dataset with the given column set. Column names must
// be non-empty and unique within the dataset.
func New(columns ...string) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, errors.NewValidationError("columns", name, "column name cannot be empty")
		}
		if _, dup := index[name]; dup {
			return nil, errors.NewValidationError("columns", name, "duplicate column name")
		}
		index[name] = i
	}
	return &Dataset{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// MustNew is New that panics on error, for fixtures and tests.
func MustNew(columns ...string) *Dataset {
	d, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return d
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// AppendRow adds a row. The cell count must match the column count.
func (d *Dataset) AppendRow(cells ...Value) error {
	if len(cells) != len(d.columns) {
		return errors.NewValidationError("row", len(cells), "cell count does not match column count")
	}
	d.rows = append(d.rows, append([]Value(nil), cells...))
	return nil
}

// Row returns a copy of the row at the given index.
func (d *Dataset) Row(i int) []Value {
	return append([]Value(nil), d.rows[i]...)
}

// Cell returns the value at the given row in the named column.
func (d *Dataset) Cell(row int, column string) (Value, error) {
	i, ok := d.index[column]
	if !ok {
		return Value{}, errors.ErrColumnNotFound
	}
	return d.rows[row][i], nil
}

// ColumnValues returns all values of the named column, in row order.
func (d *Dataset) ColumnValues(name string) ([]Value, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, errors.ErrColumnNotFound
	}
	out := make([]Value, len(d.rows))
	for r, row := range d.rows {
		out[r] = row[i]
	}
	return out, nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	c := MustNew(d.columns...)
	c.rows = make([][]Value, len(d.rows))
	for i, row := range d.rows {
		c.rows[i] = append([]Value(nil), row...)
	}
	return c
}

// Equal reports whether two datasets have identical columns and cell values,
// in the same order.
func (d *Dataset) Equal(o *Dataset) bool {
	if len(d.columns) != len(o.columns) || len(d.rows) != len(o.rows) {
		return false
	}
	for i, name := range d.columns {
		if o.columns[i] != name {
			return false
		}
	}
	for r, row := range d.rows {
		for c, v := range row {
			if !v.Equal(o.rows[r][c]) {
				return false
			}
		}
	}
	return true
}
