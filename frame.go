package polarbear

import (
	"fmt"
)

// Column is one named, typed buffer of a frame. Columns erase the value type
// so that frames can hold columns of different types behind one interface;
// use ColumnOf or NewColumn to construct them.
type Column interface {
	// Returns the name of the column.
	Name() string

	// Returns the kind of the values held in the column.
	Kind() Kind

	// Returns the number of values in the column.
	Len() int

	// Returns the value at position i.
	Value(i int) (any, error)

	// Materializes the column into a typed slice, returned as any.
	Values() (any, error)

	// Materializes the column into its display form.
	Strings() ([]string, error)

	slice(i, j int) Column
}

// ColumnOf returns a column named name over a dense in-memory buffer
// wrapping the given values. It panics if V is not a supported column type.
func ColumnOf[V any](name string, values []V) Column {
	return NewColumn(name, NewBuffer(values))
}

// NewColumn returns a column named name reading its values from the given
// buffer. It panics if V is not a supported column type.
func NewColumn[V any](name string, values Buffer[V]) Column {
	var zero V
	return &column[V]{name: name, kind: KindOf(zero), data: values}
}

type column[V any] struct {
	name string
	kind Kind
	data Buffer[V]
}

func (c *column[V]) Name() string { return c.name }
func (c *column[V]) Kind() Kind   { return c.kind }
func (c *column[V]) Len() int     { return c.data.Len() }

func (c *column[V]) Value(i int) (any, error) {
	var value [1]V
	if _, err := c.data.ReadAt(value[:], i); err != nil {
		return nil, err
	}
	return value[0], nil
}

func (c *column[V]) Values() (any, error) {
	return Values(c.data)
}

func (c *column[V]) Strings() ([]string, error) {
	values, err := Values(c.data)
	if err != nil {
		return nil, err
	}
	strings := make([]string, len(values))
	for i, value := range values {
		strings[i] = formatValue(value)
	}
	return strings, nil
}

func (c *column[V]) slice(i, j int) Column {
	return &column[V]{name: c.name, kind: c.kind, data: c.data.Slice(i, j)}
}

// Frame is a dataset of multiple named, typed columns aligned against a
// single index. All columns must have the same length as the index.
type Frame[L any] struct {
	index   Index[L]
	columns []Column
}

// NewFrame composes an index and a set of columns into a frame, validating
// that column lengths match the index and that column names are unique.
func NewFrame[L any](index Index[L], columns ...Column) (*Frame[L], error) {
	names := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if col.Len() != index.Len() {
			return nil, fmt.Errorf("%w: index has %d labels but column %q has %d values",
				ErrLengthMismatch, index.Len(), col.Name(), col.Len())
		}
		if _, exists := names[col.Name()]; exists {
			return nil, fmt.Errorf("polarbear: duplicate column name: %q", col.Name())
		}
		names[col.Name()] = struct{}{}
	}
	return &Frame[L]{index: index, columns: columns}, nil
}

// NumRows returns the number of rows in the frame.
func (f *Frame[L]) NumRows() int { return f.index.Len() }

// NumColumns returns the number of columns in the frame.
func (f *Frame[L]) NumColumns() int { return len(f.columns) }

// Index returns the index of the frame.
func (f *Frame[L]) Index() Index[L] { return f.index }

// Columns returns the columns of the frame in declaration order.
func (f *Frame[L]) Columns() []Column {
	columns := make([]Column, len(f.columns))
	copy(columns, f.columns)
	return columns
}

// Column returns the column with the given name, and whether it exists.
func (f *Frame[L]) Column(name string) (Column, bool) {
	for _, col := range f.columns {
		if col.Name() == name {
			return col, true
		}
	}
	return nil, false
}

// Select returns a frame over the same index holding only the named columns,
// in the order the names are given.
func (f *Frame[L]) Select(names ...string) (*Frame[L], error) {
	columns := make([]Column, len(names))
	for i, name := range names {
		col, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("polarbear: no column named %q", name)
		}
		columns[i] = col
	}
	return &Frame[L]{index: f.index, columns: columns}, nil
}

// Slice returns the sub-frame over rows [i:j), sharing storage with the
// original.
func (f *Frame[L]) Slice(i, j int) *Frame[L] {
	columns := make([]Column, len(f.columns))
	for k, col := range f.columns {
		columns[k] = col.slice(i, j)
	}
	return &Frame[L]{index: f.index.Slice(i, j), columns: columns}
}

// Row returns the values of row i, one per column in declaration order. It
// panics if i is out of range.
func (f *Frame[L]) Row(i int) ([]any, error) {
	if i < 0 || i >= f.index.Len() {
		panic(fmt.Sprintf("polarbear: row index out of range: %d not in [0:%d]", i, f.index.Len()))
	}
	row := make([]any, len(f.columns))
	for k, col := range f.columns {
		value, err := col.Value(i)
		if err != nil {
			return nil, fmt.Errorf("reading column %q: %w", col.Name(), err)
		}
		row[k] = value
	}
	return row, nil
}

// Get returns the row associated with the given label, and whether the label
// exists in the index.
func (f *Frame[L]) Get(label L) ([]any, bool, error) {
	i, ok := f.index.Lookup(label)
	if !ok {
		return nil, false, nil
	}
	row, err := f.Row(i)
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}
