package datatable

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// View is an ordered selection of a table's rows. It shares the table's
// columns and copies nothing until ToTable is called.
type View struct {
	table *Table
	rows  *RowSet
}

// BuildView returns a view of t over rows, or ErrRowsBelongToDifferentTable.
func BuildView(t *Table, rows []Row) (*View, error) {
	rs, err := BuildRowSet(t, rows)
	if err != nil {
		return nil, err
	}
	return &View{table: t, rows: rs}, nil
}

// newView wraps rows already known to belong to t.
func newView(t *Table, rows *immutable.List[Row]) *View {
	return &View{table: t, rows: &RowSet{table: t, rows: rows}}
}

func (v *View) Name() string                    { return v.table.name }
func (v *View) Table() *Table                   { return v.table }
func (v *View) Columns() *ColumnSet             { return v.table.columns }
func (v *View) Rows() *RowSet                   { return v.rows }
func (v *View) RowCount() int                   { return v.rows.RowCount() }
func (v *View) Row(index int) Row               { return v.rows.Get(index) }
func (v *View) Column(index int) Column         { return v.table.Column(index) }
func (v *View) ColumnByName(name string) Column { return v.table.ColumnByName(name) }
func (v *View) All() iter.Seq2[int, Row]        { return v.rows.All() }

// Filter narrows the view to the rows matching pred.
func (v *View) Filter(pred func(Row) bool) *View { return v.rows.Filter(pred) }

// QuickSort reorders the rows of this view by items.
func (v *View) QuickSort(items ...SortItem) (*View, error) {
	return quickSort(v.table, v.rows.rows, items)
}

// ToTable materializes the view: a new table whose columns hold only the
// referenced rows, in view order.
func (v *View) ToTable() *Table {
	indexes := v.rows.Indexes()

	b := immutable.NewListBuilder[Column]()
	for _, col := range v.table.columns.All() {
		b.Append(col.BuildFromRows(indexes))
	}

	out := newTable(v.table.name, b.List(), v.table.observers)
	out.notify(EventViewMaterialized, map[string]any{"source": v.table.ID(), "rows": out.RowCount()})
	return out
}

// ToView returns an equivalent view.
func (v *View) ToView() *View {
	return newView(v.table, v.rows.rows)
}
