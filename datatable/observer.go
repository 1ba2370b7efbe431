package datatable

import "time"

// EventType names a table lifecycle event.
type EventType string

const (
	EventTableBuilt       EventType = "table_built"
	EventColumnsChanged   EventType = "columns_changed"
	EventRowsChanged      EventType = "rows_changed"
	EventRowsFiltered     EventType = "rows_filtered"
	EventRowsSorted       EventType = "rows_sorted"
	EventViewMaterialized EventType = "view_materialized"
	EventOperationFailed  EventType = "operation_failed"
)

// Event describes something that happened to a table.
type Event struct {
	Type      EventType      // Type of event
	TableID   string         // ID of the table the event concerns
	Table     string         // Table name
	Timestamp time.Time      // When the event occurred
	Data      map[string]any // Event-specific details (op, row counts, error)
}

// Observer receives table events. OnEvent is called synchronously by the
// goroutine performing the operation.
type Observer interface {
	OnEvent(event Event)
}

// Option configures a table at build time.
type Option func(*buildOptions)

type buildOptions struct {
	observers []Observer
}

// WithObserver attaches an observer. Tables derived from an observed table
// inherit its observers.
func WithObserver(o Observer) Option {
	notNil(o == nil, "observer")
	return func(b *buildOptions) {
		b.observers = append(b.observers, o)
	}
}

func applyOptions(opts []Option) buildOptions {
	var b buildOptions
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func notify(observers []Observer, event Event) {
	if len(observers) == 0 {
		return
	}
	event.Timestamp = time.Now()
	for _, o := range observers {
		o.OnEvent(event)
	}
}

// notify sends an event about t to its observers.
func (t *Table) notify(typ EventType, data map[string]any) {
	notify(t.observers, Event{Type: typ, TableID: t.ID(), Table: t.name, Data: data})
}

// notifyFailure reports a failed operation on t.
func (t *Table) notifyFailure(op string, err error) {
	t.notify(EventOperationFailed, map[string]any{"op": op, "error": err.Error()})
}
