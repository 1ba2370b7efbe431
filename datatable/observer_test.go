package datatable_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/leengari/datatable/datatable"
	"github.com/leengari/datatable/internal/testutil"
)

func observedTable(t *testing.T, observers ...datatable.Observer) *datatable.Table {
	t.Helper()
	opts := make([]datatable.Option, 0, len(observers))
	for _, o := range observers {
		opts = append(opts, datatable.WithObserver(o))
	}
	table, err := datatable.Build("observed", []datatable.Column{
		datatable.NewColumn("id", 1, 2, 3),
		datatable.NewColumn("name", "a", "b", "c"),
	}, opts...)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return table
}

func TestNotifyOnBuild(t *testing.T) {
	observer := &testutil.RecordingObserver{}
	table := observedTable(t, observer)

	if len(observer.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(observer.Events))
	}
	event := observer.Events[0]
	if event.Type != datatable.EventTableBuilt {
		t.Errorf("Expected EventTableBuilt, got %v", event.Type)
	}
	if event.TableID != table.ID() {
		t.Errorf("Expected table ID %s, got %s", table.ID(), event.TableID)
	}
	if event.Table != "observed" {
		t.Errorf("Expected table name observed, got %s", event.Table)
	}
	if event.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set, got zero value")
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	table := observedTable(t)

	// Should not panic
	if _, err := table.Rows().Add(4, "d"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	observer1 := &testutil.RecordingObserver{}
	observer2 := &testutil.RecordingObserver{}
	observedTable(t, observer1, observer2)

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}
}

func TestObserversAreInherited(t *testing.T) {
	observer := &testutil.RecordingObserver{}
	table := observedTable(t, observer)

	next, err := table.Rows().Add(4, "d")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	next, err = next.Columns().Add(datatable.NewColumn("flag", true, false, true, false))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	view, err := next.Filter(func(r datatable.Row) bool { return datatable.GetAs[bool](r, 2) }).
		QuickSort(datatable.ByName("id").Desc())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	out := view.ToTable()

	want := []datatable.EventType{
		datatable.EventTableBuilt,
		datatable.EventRowsChanged,
		datatable.EventColumnsChanged,
		datatable.EventRowsFiltered,
		datatable.EventRowsSorted,
		datatable.EventViewMaterialized,
	}
	got := observer.Types()
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	last := observer.Last(t)
	if last.TableID != out.ID() {
		t.Errorf("Expected materialized table ID %s, got %s", out.ID(), last.TableID)
	}
	if last.Data["source"] != next.ID() {
		t.Errorf("Expected source %s, got %v", next.ID(), last.Data["source"])
	}
}

func TestNotifyOnFailure(t *testing.T) {
	observer := &testutil.RecordingObserver{}
	table := observedTable(t, observer)

	if _, err := table.Rows().Add("four", "d"); err == nil {
		t.Fatal("Expected an error, got nil")
	}

	event := observer.Last(t)
	if event.Type != datatable.EventOperationFailed {
		t.Errorf("Expected EventOperationFailed, got %v", event.Type)
	}
	if event.Data["op"] != "rows.add" {
		t.Errorf("Expected op rows.add, got %v", event.Data["op"])
	}
	if msg, _ := event.Data["error"].(string); !strings.Contains(msg, "invalid cast") {
		t.Errorf("Expected invalid cast error, got %q", msg)
	}
}

func TestNotifyOnBuildFailure(t *testing.T) {
	observer := &testutil.RecordingObserver{}
	_, err := datatable.Build("broken", []datatable.Column{
		datatable.NewColumn("a", 1),
		datatable.NewColumn("a", 2),
	}, datatable.WithObserver(observer))
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}

	event := observer.Last(t)
	if event.Type != datatable.EventOperationFailed || event.Table != "broken" {
		t.Errorf("Expected failure event for broken, got %v for %s", event.Type, event.Table)
	}
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	table := observedTable(t, datatable.NewLoggingObserver(logger))

	if _, err := table.Rows().Remove(10); err == nil {
		t.Fatal("Expected an error, got nil")
	}

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG msg=table_lifecycle event=table_built") {
		t.Errorf("Expected debug build event, got: %s", out)
	}
	if !strings.Contains(out, "level=WARN msg=table_lifecycle event=operation_failed") {
		t.Errorf("Expected warn failure event, got: %s", out)
	}
	if !strings.Contains(out, "table_id="+table.ID()) {
		t.Errorf("Expected table id in log output, got: %s", out)
	}
}
