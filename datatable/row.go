package datatable

// Row is a handle to one row of a table. It owns no data; every access reads
// through the table's columns.
type Row struct {
	table *Table
	index int
}

// BuildRow returns a handle to row index of t, or ErrInvalidRowIndex.
func BuildRow(t *Table, index int) (Row, error) {
	notNil(t == nil, "table")

	if index < 0 || index >= t.RowCount() {
		return Row{}, &Error{
			Kind:   ErrInvalidRowIndex,
			Op:     "row.build",
			Table:  t.name,
			Index:  index,
			Reason: "invalid row index for row",
		}
	}
	return Row{table: t, index: index}, nil
}

// Table returns the table the row points into.
func (r Row) Table() *Table { return r.table }

// Index returns the row position within its table.
func (r Row) Index() int { return r.index }

// Data returns the row's values across all columns, in column order.
func (r Row) Data() []any {
	out := make([]any, 0, r.table.columns.Count())
	for _, col := range r.table.columns.All() {
		out = append(out, col.ValueAt(r.index))
	}
	return out
}

// Get returns the value in the column at colIndex.
func (r Row) Get(colIndex int) (any, error) {
	col, err := r.table.columns.TryGet(colIndex)
	if err != nil {
		return nil, err
	}
	return col.ValueAt(r.index), nil
}

// GetByName returns the value in the named column.
func (r Row) GetByName(name string) (any, error) {
	col, err := r.table.columns.TryGetByName(name)
	if err != nil {
		return nil, err
	}
	return col.ValueAt(r.index), nil
}

// GetAs returns the typed value in the column at colIndex. It panics if the
// index is invalid or the column does not hold T. Nulls return the zero value.
func GetAs[T Element](r Row, colIndex int) T {
	v, err := TryGetAs[T](r, colIndex)
	if err != nil {
		panic(err)
	}
	return v
}

// GetAsByName is GetAs for a named column.
func GetAsByName[T Element](r Row, name string) T {
	v, err := TryGetAsByName[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

// TryGetAs returns the typed value in the column at colIndex, failing with
// ErrIndexOutOfBounds or ErrTypeMismatch.
func TryGetAs[T Element](r Row, colIndex int) (T, error) {
	col, err := r.table.columns.TryGet(colIndex)
	if err != nil {
		var zero T
		return zero, err
	}
	return typedValue[T](col, r.index)
}

// TryGetAsByName returns the typed value in the named column, failing with
// ErrColumnNotFound or ErrTypeMismatch.
func TryGetAsByName[T Element](r Row, name string) (T, error) {
	col, err := r.table.columns.TryGetByName(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return typedValue[T](col, r.index)
}

func typedValue[T Element](col Column, index int) (T, error) {
	typed, err := AsType[T](col)
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := typed.Get(index)
	return v, nil
}
