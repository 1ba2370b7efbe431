package datatable

import (
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/leengari/datatable/internal/vector"
)

// ColumnSet is the ordered, name-indexed collection of columns owned by one
// table. Structural edits return a new, fully validated Table; the owning
// table is never modified.
type ColumnSet struct {
	table   *Table
	columns *immutable.List[Column]
}

// Table returns the table owning the columns.
func (cs *ColumnSet) Table() *Table { return cs.table }

// Count returns the number of columns.
func (cs *ColumnSet) Count() int { return cs.columns.Len() }

// All iterates the columns in order.
func (cs *ColumnSet) All() iter.Seq2[int, Column] { return vector.All(cs.columns) }

// Slice copies the columns into a new slice.
func (cs *ColumnSet) Slice() []Column { return vector.ToSlice(cs.columns) }

// Names returns the column names in order.
func (cs *ColumnSet) Names() []string {
	names := make([]string, 0, cs.Count())
	for _, c := range cs.All() {
		names = append(names, c.Name())
	}
	return names
}

// IndexOf returns the position of the first column named name, or -1.
func (cs *ColumnSet) IndexOf(name string) int {
	return vector.IndexWhere(cs.columns, func(c Column) bool { return c.Name() == name })
}

// IndexOfColumn returns the position of col by identity, or -1.
func (cs *ColumnSet) IndexOfColumn(col Column) int {
	return vector.IndexWhere(cs.columns, func(c Column) bool { return c == col })
}

// Get returns the column at index. It panics on an invalid index; use
// TryGet when the index has not been validated.
func (cs *ColumnSet) Get(index int) Column {
	c, err := cs.TryGet(index)
	if err != nil {
		panic(err)
	}
	return c
}

// GetByName returns the named column. It panics if there is none; use
// TryGetByName when the name has not been validated.
func (cs *ColumnSet) GetByName(name string) Column {
	c, err := cs.TryGetByName(name)
	if err != nil {
		panic(err)
	}
	return c
}

// TryGet returns the column at index or ErrIndexOutOfBounds.
func (cs *ColumnSet) TryGet(index int) (Column, error) {
	if vector.OutOfBounds(cs.Count(), index) {
		return nil, newIndexOutOfBounds("columns.get", cs.table.name, index, cs.Count())
	}
	return cs.columns.Get(index), nil
}

// TryGetByName returns the named column or ErrColumnNotFound.
func (cs *ColumnSet) TryGetByName(name string) (Column, error) {
	idx := cs.IndexOf(name)
	if idx < 0 {
		return nil, newColumnNotFound("columns.get", cs.table.name, name)
	}
	return cs.columns.Get(idx), nil
}

// Add appends col.
func (cs *ColumnSet) Add(col Column) (*Table, error) {
	notNil(col == nil || col.isNil(), "column")
	return cs.checkColumnsAndBuild("adding", "columns.add", vector.Append(cs.columns, col), nil)
}

// Insert places col at index, shifting later columns right.
func (cs *ColumnSet) Insert(index int, col Column) (*Table, error) {
	notNil(col == nil || col.isNil(), "column")
	cols, err := vector.Insert(cs.columns, index, col)
	return cs.checkColumnsAndBuild("inserting", "columns.insert", cols, err)
}

// Replace swaps the column at index for col.
func (cs *ColumnSet) Replace(index int, col Column) (*Table, error) {
	notNil(col == nil || col.isNil(), "column")
	cols, err := vector.Replace(cs.columns, index, col)
	return cs.checkColumnsAndBuild("replacing", "columns.replace", cols, err)
}

// Remove drops the column at index.
func (cs *ColumnSet) Remove(index int) (*Table, error) {
	cols, err := vector.Remove(cs.columns, index)
	return cs.checkColumnsAndBuild("removing", "columns.remove", cols, err)
}

// InsertByName places col at the position of the named column.
func (cs *ColumnSet) InsertByName(name string, col Column) (*Table, error) {
	return cs.byName("columns.insert", name, func(idx int) (*Table, error) { return cs.Insert(idx, col) })
}

// ReplaceByName swaps the named column for col.
func (cs *ColumnSet) ReplaceByName(name string, col Column) (*Table, error) {
	return cs.byName("columns.replace", name, func(idx int) (*Table, error) { return cs.Replace(idx, col) })
}

// RemoveByName drops the named column.
func (cs *ColumnSet) RemoveByName(name string) (*Table, error) {
	return cs.byName("columns.remove", name, cs.Remove)
}

// InsertColumn places col at the position of existing.
func (cs *ColumnSet) InsertColumn(existing, col Column) (*Table, error) {
	return cs.byIdentity("columns.insert", existing, func(idx int) (*Table, error) { return cs.Insert(idx, col) })
}

// ReplaceColumn swaps old for col.
func (cs *ColumnSet) ReplaceColumn(old, col Column) (*Table, error) {
	return cs.byIdentity("columns.replace", old, func(idx int) (*Table, error) { return cs.Replace(idx, col) })
}

// RemoveColumn drops col.
func (cs *ColumnSet) RemoveColumn(col Column) (*Table, error) {
	return cs.byIdentity("columns.remove", col, cs.Remove)
}

func (cs *ColumnSet) byName(op, name string, action func(int) (*Table, error)) (*Table, error) {
	idx := cs.IndexOf(name)
	if idx < 0 {
		err := newColumnNotFound(op, cs.table.name, name)
		cs.table.notifyFailure(op, err)
		return nil, err
	}
	return action(idx)
}

func (cs *ColumnSet) byIdentity(op string, col Column, action func(int) (*Table, error)) (*Table, error) {
	notNil(col == nil || col.isNil(), "column")

	idx := cs.IndexOfColumn(col)
	if idx < 0 {
		err := newColumnNotFound(op, cs.table.name, col.Name())
		err.Reason = "column is not part of this table"
		cs.table.notifyFailure(op, err)
		return nil, err
	}
	return action(idx)
}

// checkColumnsAndBuild turns a candidate column list into a new table,
// wrapping any failure with the kind of change attempted.
func (cs *ColumnSet) checkColumnsAndBuild(change, op string, cols *immutable.List[Column], err error) (*Table, error) {
	if err != nil {
		err = fmt.Errorf("error %s column: %w", change, boundsError(op, "", err))
		cs.table.notifyFailure(op, err)
		return nil, err
	}

	t, err := cs.table.derive(op, EventColumnsChanged, vector.ToSlice(cols))
	if err != nil {
		return nil, fmt.Errorf("error %s column: %w", change, err)
	}
	return t, nil
}
