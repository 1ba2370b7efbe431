package datatable_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/datatable/datatable"
	"github.com/leengari/datatable/internal/testutil"
)

func TestConcurrentReaders(t *testing.T) {
	observer := &testutil.RecordingObserver{}
	table, err := datatable.Build("shared", []datatable.Column{
		datatable.NewColumn("NumberCol", 2, 3, 3, 4, 4, 5, 5),
		datatable.NewColumn("StringCol", "aa", "bb", "cc", "dd", "ee", "ff", "gg"),
		datatable.NewColumn("IndexCol", 1, 2, 3, 4, 5, 6, 7),
		datatable.NewColumn("Blob", []byte("a"), []byte("b"), []byte("c"), []byte("d"), []byte("e"), []byte("f"), []byte("g")),
	}, datatable.WithObserver(observer))
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			view, err := table.
				Filter(func(r datatable.Row) bool { return datatable.GetAsByName[int](r, "NumberCol") >= w%5 }).
				QuickSort(datatable.ByName("NumberCol"), datatable.ByName("StringCol").Desc())
			if err != nil {
				errs <- err
				return
			}
			out := view.ToTable()
			for _, r := range out.All() {
				_ = r.Data()
			}
			if _, err := table.Rows().Add(8, "hh", 8, []byte("h")); err != nil {
				errs <- err
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Expected no error, got %v", err)
	}

	testutil.AssertRowCount(t, table, 7, "shared after readers")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, testutil.ColumnValues[int](t, table, "IndexCol"))
	// build + (filter, sort, materialize, row add) per worker
	assert.Equal(t, 1+4*workers, observer.Count())
}

func TestReadsAreIdempotent(t *testing.T) {
	table := testutil.CreateOrdersTable(t)

	for ci, col := range table.Columns().All() {
		for r := 0; r < table.RowCount(); r++ {
			first := table.Column(ci).ValueAt(r)
			for range 3 {
				assert.Equal(t, first, table.Column(ci).ValueAt(r), "%s[%d]", col.Name(), r)
			}
		}
	}

	row := table.Row(1)
	assert.Equal(t, row.Data(), table.Row(1).Data())
	assert.Equal(t, datatable.GetAsByName[string](row, "customer"), datatable.GetAsByName[string](row, "customer"))
}
