package testutil

import (
	"sync"
	"testing"

	"github.com/leengari/datatable/datatable"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, table datatable.Tabular, expected int, context string) {
	t.Helper()
	if actual := table.RowCount(); actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if the table has the expected number of columns
func AssertColumnCount(t *testing.T, table datatable.Tabular, expected int, context string) {
	t.Helper()
	if actual := table.Columns().Count(); actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// ColumnValues returns the values of the named column in row order of src.
func ColumnValues[T datatable.Element](t *testing.T, src datatable.Tabular, column string) []T {
	t.Helper()
	out := make([]T, 0, src.RowCount())
	for _, row := range src.All() {
		v, err := datatable.TryGetAsByName[T](row, column)
		if err != nil {
			t.Fatalf("reading %s: %v", column, err)
		}
		out = append(out, v)
	}
	return out
}

// RecordingObserver is a test observer that records events. It is safe
// for concurrent use; read Events directly only once writers are done.
type RecordingObserver struct {
	mu     sync.Mutex
	Events []datatable.Event
}

func (r *RecordingObserver) OnEvent(event datatable.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

// Count returns the number of recorded events.
func (r *RecordingObserver) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Events)
}

// Types returns the recorded event types in order.
func (r *RecordingObserver) Types() []datatable.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]datatable.EventType, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Type
	}
	return out
}

// Last returns the most recent event, failing the test if none was recorded.
func (r *RecordingObserver) Last(t *testing.T) datatable.Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Events) == 0 {
		t.Fatal("expected at least one event, got none")
	}
	return r.Events[len(r.Events)-1]
}
