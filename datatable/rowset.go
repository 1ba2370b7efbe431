package datatable

import (
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/leengari/datatable/internal/vector"
)

// RowSource is anything that yields rows in order: Table, View, RowSet.
type RowSource interface {
	All() iter.Seq2[int, Row]
	RowCount() int
}

// RowSet is an ordered sequence of rows that all belong to one table.
type RowSet struct {
	table *Table
	rows  *immutable.List[Row]
}

// BuildRowSet validates that every row belongs to t (by identity) and
// returns them as a RowSet, or ErrRowsBelongToDifferentTable.
func BuildRowSet(t *Table, rows []Row) (*RowSet, error) {
	notNil(t == nil, "table")

	for i, r := range rows {
		if r.table != t {
			return nil, &Error{
				Kind:   ErrRowsBelongToDifferentTable,
				Op:     "rows.build",
				Table:  t.name,
				Index:  i,
				Reason: "rows do not all belong to the specified table",
			}
		}
	}
	return &RowSet{table: t, rows: vector.FromSlice(rows)}, nil
}

// allRows builds the rows 0..RowCount of t. It cannot fail.
func allRows(t *Table) *RowSet {
	b := immutable.NewListBuilder[Row]()
	for i := 0; i < t.RowCount(); i++ {
		b.Append(Row{table: t, index: i})
	}
	return &RowSet{table: t, rows: b.List()}
}

// Table returns the table the rows belong to.
func (rs *RowSet) Table() *Table { return rs.table }

// RowCount returns the number of rows.
func (rs *RowSet) RowCount() int { return rs.rows.Len() }

// Get returns the row at position index. It panics if index is out of range.
func (rs *RowSet) Get(index int) Row { return rs.rows.Get(index) }

// All iterates the rows in order.
func (rs *RowSet) All() iter.Seq2[int, Row] { return vector.All(rs.rows) }

// Slice copies the rows into a new slice.
func (rs *RowSet) Slice() []Row { return vector.ToSlice(rs.rows) }

// Indexes returns the table row index of each row, in order.
func (rs *RowSet) Indexes() []int {
	out := make([]int, 0, rs.rows.Len())
	for _, r := range rs.All() {
		out = append(out, r.index)
	}
	return out
}

// Filter returns a view of the rows matching pred, preserving order.
func (rs *RowSet) Filter(pred func(Row) bool) *View {
	notNil(pred == nil, "predicate")

	b := immutable.NewListBuilder[Row]()
	for _, r := range rs.All() {
		if pred(r) {
			b.Append(r)
		}
	}
	v := newView(rs.table, b.List())
	rs.table.notify(EventRowsFiltered, map[string]any{"in": rs.RowCount(), "out": v.RowCount()})
	return v
}

// Reduce combines the rows left to right with f. ok is false for an empty set.
func (rs *RowSet) Reduce(f func(acc, r Row) Row) (result Row, ok bool) {
	for i, r := range rs.All() {
		if i == 0 {
			result = r
			continue
		}
		result = f(result, r)
	}
	return result, rs.RowCount() > 0
}

// Map applies f to every row of src.
func Map[U any](src RowSource, f func(Row) U) []U {
	out := make([]U, 0, src.RowCount())
	for _, r := range src.All() {
		out = append(out, f(r))
	}
	return out
}

// FlatMap applies f to every row of src and concatenates the results.
func FlatMap[U any](src RowSource, f func(Row) []U) []U {
	var out []U
	for _, r := range src.All() {
		out = append(out, f(r)...)
	}
	return out
}

// FoldLeft folds the rows of src from first to last.
func FoldLeft[U any](src RowSource, zero U, f func(acc U, r Row) U) U {
	acc := zero
	for _, r := range src.All() {
		acc = f(acc, r)
	}
	return acc
}

// FoldRight folds the rows of src from last to first.
func FoldRight[U any](src RowSource, zero U, f func(r Row, acc U) U) U {
	rows := make([]Row, 0, src.RowCount())
	for _, r := range src.All() {
		rows = append(rows, r)
	}

	acc := zero
	for i := len(rows) - 1; i >= 0; i-- {
		acc = f(rows[i], acc)
	}
	return acc
}

// GroupBy groups the rows of src by key, keeping row order within groups.
func GroupBy[K comparable](src RowSource, key func(Row) K) map[K][]Row {
	out := make(map[K][]Row)
	for _, r := range src.All() {
		k := key(r)
		out[k] = append(out[k], r)
	}
	return out
}

// MutableRowSet is the row set of a Table. Its edits fan out across every
// column and return a new Table; the owning table is never modified.
type MutableRowSet struct {
	*RowSet
}

// Add appends a row. values map to columns by position.
func (m *MutableRowSet) Add(values ...any) (*Table, error) {
	return m.editRow("rows.add", -1, values, func(col Column, v any) (Column, error) {
		return col.Add(v)
	})
}

// Insert places a row at index.
func (m *MutableRowSet) Insert(index int, values ...any) (*Table, error) {
	return m.editRow("rows.insert", index, values, func(col Column, v any) (Column, error) {
		return col.Insert(index, v)
	})
}

// Replace swaps the row at index for values.
func (m *MutableRowSet) Replace(index int, values ...any) (*Table, error) {
	return m.editRow("rows.replace", index, values, func(col Column, v any) (Column, error) {
		return col.Replace(index, v)
	})
}

// Remove drops the row at index.
func (m *MutableRowSet) Remove(index int) (*Table, error) {
	t := m.table
	if t.columns.Count() == 0 {
		return nil, m.fail("rows.remove", newIndexOutOfBounds("rows.remove", t.name, index, 0))
	}

	cols := make([]Column, 0, t.columns.Count())
	for _, col := range t.columns.All() {
		next, err := col.Remove(index)
		if err != nil {
			return nil, m.fail("rows.remove", err)
		}
		cols = append(cols, next)
	}
	return t.derive("rows.remove", EventRowsChanged, cols)
}

// editRow applies edit to every column with its value. Nothing is built
// unless every column accepts its value.
func (m *MutableRowSet) editRow(op string, index int, values []any, edit func(Column, any) (Column, error)) (*Table, error) {
	t := m.table
	if len(values) != t.columns.Count() {
		return nil, m.fail(op, &Error{
			Kind:   ErrColumnCountMismatch,
			Op:     op,
			Table:  t.name,
			Index:  NoIndex,
			Reason: fmt.Sprintf("number of values (%d) does not match number of columns (%d)", len(values), t.columns.Count()),
		})
	}

	// With no columns there is nothing to hold the row, so only an append
	// is meaningful.
	if t.columns.Count() == 0 && index >= 0 {
		return nil, m.fail(op, newIndexOutOfBounds(op, t.name, index, 0))
	}

	cols := make([]Column, 0, len(values))
	for i, col := range t.columns.All() {
		next, err := edit(col, values[i])
		if err != nil {
			return nil, m.fail(op, err)
		}
		cols = append(cols, next)
	}
	return t.derive(op, EventRowsChanged, cols)
}

// fail reports err to the table's observers and returns it unchanged.
func (m *MutableRowSet) fail(op string, err error) error {
	m.table.notifyFailure(op, err)
	return err
}
