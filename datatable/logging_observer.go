package datatable

import (
	"context"
	"log/slog"
)

// LoggingObserver writes every event through structured logging.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer. A nil logger means
// slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface.
// Failed operations are logged at warn level, everything else at debug.
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	if event.Type == EventOperationFailed {
		level = slog.LevelWarn
	}

	lo.logger.Log(context.Background(), level, "table_lifecycle",
		"event", event.Type,
		"table_id", event.TableID,
		"table", event.Table,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
