package datatable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/datatable/datatable"
	"github.com/leengari/datatable/internal/testutil"
)

func TestBuildRowSet(t *testing.T) {
	table := testutil.CreateScenarioTable(t)
	other := testutil.CreateScenarioTable(t)

	rs, err := datatable.BuildRowSet(table, []datatable.Row{table.Row(3), table.Row(0)})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, rs.Indexes())
	assert.Same(t, table, rs.Table())

	_, err = datatable.BuildRowSet(table, []datatable.Row{table.Row(0), other.Row(1)})
	require.ErrorIs(t, err, datatable.ErrRowsBelongToDifferentTable)

	var dtErr *datatable.Error
	require.ErrorAs(t, err, &dtErr)
	assert.Equal(t, 1, dtErr.Index)
}

func TestRowSetAdd(t *testing.T) {
	table := testutil.CreateScenarioTable(t)

	t.Run("appends across columns", func(t *testing.T) {
		next, err := table.Rows().Add("EE", 13, true)
		require.NoError(t, err)
		testutil.AssertRowCount(t, next, 5, "after add")
		testutil.AssertRowCount(t, table, 4, "original")
		assert.Equal(t, []any{"EE", 13, true}, next.Row(4).Data())
	})

	t.Run("wrong type is atomic", func(t *testing.T) {
		next, err := table.Rows().Add("EE", "13", true)
		assert.Nil(t, next)
		require.ErrorIs(t, err, datatable.ErrInvalidCast)

		var dtErr *datatable.Error
		require.ErrorAs(t, err, &dtErr)
		assert.Equal(t, "IntCol", dtErr.Column)
		testutil.AssertRowCount(t, table, 4, "original")
	})

	t.Run("wrong value count", func(t *testing.T) {
		_, err := table.Rows().Add("EE", 13)
		require.ErrorIs(t, err, datatable.ErrColumnCountMismatch)
		assert.Contains(t, err.Error(), "number of values (2) does not match number of columns (3)")
	})

	t.Run("table without columns", func(t *testing.T) {
		_, err := datatable.Empty("blank").Rows().Add()
		assert.NoError(t, err)
	})
}

func TestRowSetInsertReplaceRemove(t *testing.T) {
	table := testutil.CreateScenarioTable(t)
	rows := table.Rows()

	next, err := rows.Insert(0, "00", 0, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"00", "AA", "BB", "CC", "DD"}, testutil.ColumnValues[string](t, next, "StrCol"))

	next, err = rows.Insert(4, "EE", 13, true)
	require.NoError(t, err)
	assert.Equal(t, "EE", datatable.GetAs[string](next.Row(4), 0))

	next, err = rows.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 9, 11}, testutil.ColumnValues[int](t, next, "IntCol"))

	_, err = rows.Replace(0, "AA", 1, 2)
	assert.ErrorIs(t, err, datatable.ErrInvalidCast)

	t.Run("out of bounds", func(t *testing.T) {
		_, err := rows.Remove(rows.RowCount())
		assert.ErrorIs(t, err, datatable.ErrIndexOutOfBounds)
		_, err = rows.Replace(4, "x", 1, true)
		assert.ErrorIs(t, err, datatable.ErrIndexOutOfBounds)
		_, err = rows.Insert(5, "x", 1, true)
		assert.ErrorIs(t, err, datatable.ErrIndexOutOfBounds)
		_, err = datatable.Empty("blank").Rows().Remove(0)
		assert.ErrorIs(t, err, datatable.ErrIndexOutOfBounds)
	})
}

func TestRowSetTraversals(t *testing.T) {
	table := testutil.CreateScenarioTable(t)
	rows := table.Rows()
	intOf := func(r datatable.Row) int { return datatable.GetAsByName[int](r, "IntCol") }

	assert.Equal(t, []int{3, 5, 9, 11}, datatable.Map(rows, intOf))
	assert.Equal(t, 28, datatable.FoldLeft(rows, 0, func(acc int, r datatable.Row) int { return acc + intOf(r) }))

	var order []string
	datatable.FoldRight(rows, "", func(r datatable.Row, acc string) string {
		order = append(order, datatable.GetAs[string](r, 0))
		return acc
	})
	assert.Equal(t, []string{"DD", "CC", "BB", "AA"}, order)

	letters := datatable.FlatMap(rows, func(r datatable.Row) []string {
		return strings.Split(datatable.GetAs[string](r, 0), "")
	})
	assert.Len(t, letters, 8)

	groups := datatable.GroupBy(rows, func(r datatable.Row) bool { return datatable.GetAsByName[bool](r, "BoolCol") })
	require.Len(t, groups, 2)
	assert.Equal(t, 0, groups[true][0].Index())
	assert.Equal(t, 2, groups[true][1].Index())

	widest, ok := rows.Reduce(func(acc, r datatable.Row) datatable.Row {
		if intOf(r) > intOf(acc) {
			return r
		}
		return acc
	})
	require.True(t, ok)
	assert.Equal(t, 3, widest.Index())

	_, ok = datatable.Empty("blank").Rows().Reduce(func(acc, r datatable.Row) datatable.Row { return acc })
	assert.False(t, ok)
}
