package datatable

import (
	"fmt"
	"slices"

	"github.com/benbjohnson/immutable"

	"github.com/leengari/datatable/internal/vector"
)

// SortOrder is the direction of a sort key.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}

// ColumnIdentity refers to a column by name or by index. It is resolved
// against a ColumnSet only when a sort runs.
type ColumnIdentity struct {
	name   string
	index  int
	byName bool
}

// ColumnNamed identifies a column by name.
func ColumnNamed(name string) ColumnIdentity {
	return ColumnIdentity{name: name, byName: true}
}

// ColumnAt identifies a column by position.
func ColumnAt(index int) ColumnIdentity {
	return ColumnIdentity{index: index}
}

// Resolve finds the identified column in cs.
func (id ColumnIdentity) Resolve(cs *ColumnSet) (Column, error) {
	if id.byName {
		return cs.TryGetByName(id.name)
	}
	return cs.TryGet(id.index)
}

func (id ColumnIdentity) String() string {
	if id.byName {
		return fmt.Sprintf("name %q", id.name)
	}
	return fmt.Sprintf("index %d", id.index)
}

// SortItem is one key of a multi-column sort.
type SortItem struct {
	Column ColumnIdentity
	Order  SortOrder
}

// ByName sorts ascending on the named column.
func ByName(name string) SortItem {
	return SortItem{Column: ColumnNamed(name), Order: Ascending}
}

// ByIndex sorts ascending on the column at index.
func ByIndex(index int) SortItem {
	return SortItem{Column: ColumnAt(index), Order: Ascending}
}

// Desc returns the item with descending order.
func (s SortItem) Desc() SortItem {
	s.Order = Descending
	return s
}

// Asc returns the item with ascending order.
func (s SortItem) Asc() SortItem {
	s.Order = Ascending
	return s
}

// quickSort validates every sort item against t, then stably reorders rows.
// Column storage is untouched; the result is a new View over t.
func quickSort(t *Table, rows *immutable.List[Row], items []SortItem) (*View, error) {
	cols, err := validateSortColumns(t, items)
	if err != nil {
		t.notifyFailure("sort", err)
		return nil, err
	}

	sorted := vector.ToSlice(rows)
	slices.SortStableFunc(sorted, func(a, b Row) int {
		for i, item := range items {
			var c int
			if item.Order == Descending {
				c = cols[i].compareAt(b.index, a.index)
			} else {
				c = cols[i].compareAt(a.index, b.index)
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	t.notify(EventRowsSorted, map[string]any{"keys": len(items), "rows": len(sorted)})
	return newView(t, vector.FromSlice(sorted)), nil
}

// validateSortColumns resolves every item, then checks every resolved
// column is comparable. No comparison runs unless both pass.
func validateSortColumns(t *Table, items []SortItem) ([]Column, error) {
	cols := make([]Column, 0, len(items))
	for _, item := range items {
		col, err := item.Column.Resolve(t.columns)
		if err != nil {
			return nil, &Error{
				Kind:   ErrColumnForSortItemNotFound,
				Op:     "sort",
				Table:  t.name,
				Index:  NoIndex,
				Reason: "no column with " + item.Column.String(),
				Err:    err,
			}
		}
		cols = append(cols, col)
	}

	for _, col := range cols {
		if !col.IsComparable() {
			return nil, &Error{
				Kind:   ErrColumnNotComparable,
				Op:     "sort",
				Table:  t.name,
				Column: col.Name(),
				Index:  NoIndex,
				Reason: fmt.Sprintf("column type %s doesn't support ordering", col.Type()),
			}
		}
	}
	return cols, nil
}
