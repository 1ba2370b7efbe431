package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leengari/datatable/datatable"
)

// MustBuild builds a table from columns and fails the test on error.
func MustBuild(t *testing.T, name string, columns ...datatable.Column) *datatable.Table {
	t.Helper()
	table, err := datatable.Build(name, columns)
	if err != nil {
		t.Fatalf("building %s: %v", name, err)
	}
	return table
}

// CreateScenarioTable creates the four-row StrCol/IntCol/BoolCol table.
func CreateScenarioTable(t *testing.T) *datatable.Table {
	t.Helper()
	return MustBuild(t, "scenario",
		datatable.NewColumn("StrCol", "AA", "BB", "CC", "DD"),
		datatable.NewColumn("IntCol", 3, 5, 9, 11),
		datatable.NewColumn("BoolCol", true, false, true, false),
	)
}

// CreateSortTable creates a table with repeated NumberCol keys, distinct
// StringCol values and a 1-based IndexCol recording the original order.
func CreateSortTable(t *testing.T) *datatable.Table {
	t.Helper()
	return MustBuild(t, "sortable",
		datatable.NewColumn("NumberCol", 2, 3, 3, 4, 4, 5, 5),
		datatable.NewColumn("StringCol", "aa", "bb", "cc", "dd", "ee", "ff", "gg"),
		datatable.NewColumn("IndexCol", 1, 2, 3, 4, 5, 6, 7),
	)
}

// CreateOrdersTable creates a table using every column type.
func CreateOrdersTable(t *testing.T) *datatable.Table {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return MustBuild(t, "orders",
		datatable.NewColumn("id", int64(1), int64(2), int64(3)),
		datatable.NewColumn("customer", "alice", "bob", "charlie"),
		datatable.NewColumn("quantity", 2, 1, 5),
		datatable.NewColumn("weight", 1.5, 0.25, 12.0),
		datatable.NewColumn("paid", true, false, true),
		datatable.NewColumn("placed", base, base.Add(time.Hour), base.Add(48*time.Hour)),
		datatable.NewColumn("total",
			decimal.RequireFromString("19.99"),
			decimal.RequireFromString("5.00"),
			decimal.RequireFromString("120.50")),
		datatable.NewColumn("payload", []byte("a"), []byte("bb"), []byte{}),
	)
}
