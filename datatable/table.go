package datatable

import (
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/google/uuid"

	"github.com/leengari/datatable/internal/vector"
)

// Tabular is the surface shared by Table and View.
type Tabular interface {
	Name() string
	Table() *Table
	Columns() *ColumnSet
	Column(index int) Column
	ColumnByName(name string) Column
	RowCount() int
	Row(index int) Row
	All() iter.Seq2[int, Row]
	Filter(pred func(Row) bool) *View
	QuickSort(items ...SortItem) (*View, error)
	ToTable() *Table
	ToView() *View
}

var (
	_ Tabular = (*Table)(nil)
	_ Tabular = (*View)(nil)
)

// Table is a validated, immutable set of equal-length, uniquely named
// columns. It is safe for concurrent readers.
type Table struct {
	id        uuid.UUID
	name      string
	columns   *ColumnSet
	rows      *MutableRowSet
	observers []Observer
}

// Empty returns a table with no columns and no rows.
func Empty(name string, opts ...Option) *Table {
	o := applyOptions(opts)
	t := newTable(name, vector.Empty[Column](), o.observers)
	t.notify(EventTableBuilt, map[string]any{"columns": 0, "rows": 0})
	return t
}

// Build validates columns and returns a new table holding them. It fails
// with ErrDuplicateColumnNames or ErrUnevenColumnLengths.
func Build(name string, columns []Column, opts ...Option) (*Table, error) {
	columnsNotNil(columns, "columns")
	o := applyOptions(opts)

	t, err := build(name, columns, o.observers)
	if err != nil {
		notify(o.observers, Event{
			Type:  EventOperationFailed,
			Table: name,
			Data:  map[string]any{"op": "table.build", "error": err.Error()},
		})
		return nil, err
	}

	t.notify(EventTableBuilt, map[string]any{"columns": t.columns.Count(), "rows": t.RowCount()})
	return t, nil
}

func build(name string, columns []Column, observers []Observer) (*Table, error) {
	if err := validateColumns(name, columns); err != nil {
		return nil, err
	}
	return newTable(name, vector.FromSlice(columns), observers), nil
}

func newTable(name string, columns *immutable.List[Column], observers []Observer) *Table {
	t := &Table{
		id:        uuid.New(),
		name:      name,
		observers: observers,
	}
	t.columns = &ColumnSet{table: t, columns: columns}
	t.rows = &MutableRowSet{RowSet: allRows(t)}
	return t
}

// derive builds a new table from the columns of t after a structural edit.
// The new table keeps t's name and observers.
func (t *Table) derive(op string, event EventType, columns []Column) (*Table, error) {
	out, err := build(t.name, columns, t.observers)
	if err != nil {
		t.notifyFailure(op, err)
		return nil, err
	}
	out.notify(event, map[string]any{
		"op":     op,
		"source": t.ID(),
		"rows":   out.RowCount(),
	})
	return out, nil
}

// ID returns the identity assigned to this table when it was built.
func (t *Table) ID() string { return t.id.String() }

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Table returns t itself.
func (t *Table) Table() *Table { return t }

// Columns returns the table's columns.
func (t *Table) Columns() *ColumnSet { return t.columns }

// Rows returns the table's rows, with whole-row edit operations.
func (t *Table) Rows() *MutableRowSet { return t.rows }

// RowCount is the length of the first column, or 0 with no columns.
func (t *Table) RowCount() int {
	if t.columns.Count() == 0 {
		return 0
	}
	return t.columns.Get(0).Len()
}

// Row returns the row at index. It panics if index is out of range.
func (t *Table) Row(index int) Row { return t.rows.Get(index) }

// Column returns the column at index. It panics if index is out of range.
func (t *Table) Column(index int) Column { return t.columns.Get(index) }

// ColumnByName returns the named column. It panics if there is none.
func (t *Table) ColumnByName(name string) Column { return t.columns.GetByName(name) }

// All iterates the table rows in order.
func (t *Table) All() iter.Seq2[int, Row] { return t.rows.All() }

// Filter returns a view of the rows matching pred, in table order.
func (t *Table) Filter(pred func(Row) bool) *View { return t.rows.Filter(pred) }

// QuickSort returns a view of all rows ordered by items.
func (t *Table) QuickSort(items ...SortItem) (*View, error) {
	return quickSort(t, t.rows.rows, items)
}

// ToTable returns a new table over the same columns. Column storage is
// shared, the table identity is not.
func (t *Table) ToTable() *Table {
	out := newTable(t.name, t.columns.columns, t.observers)
	out.notify(EventTableBuilt, map[string]any{"op": "table.clone", "source": t.ID(), "rows": out.RowCount()})
	return out
}

// ToView returns a view over every row of t.
func (t *Table) ToView() *View {
	return newView(t, t.rows.rows)
}
