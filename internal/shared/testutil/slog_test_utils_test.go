package testutil

import (
	"log/slog"
	"testing"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("test message", slog.String("key", "value"))
		logger.Error("error message", slog.Int("rows", 7972))

		if handler.Count() != 2 {
			t.Errorf("Expected 2 records, got %d", handler.Count())
		}
		if !handler.ContainsMessage("test message") {
			t.Error("Expected to find 'test message'")
		}
		if !handler.ContainsAttr("key", "value") {
			t.Error("Expected to find attribute key=value")
		}
	})

	t.Run("keeps attributes added with With", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With("activity_id", "abc").Info("Data file already acquired")
		logger.WithGroup("table").Info("loaded", "rows", 3)

		if !handler.ContainsAttr("activity_id", "abc") {
			t.Error("Expected attribute from With to be captured")
		}
		if !handler.ContainsAttr("table.rows", int64(3)) {
			t.Error("Expected grouped attribute to be captured")
		}
		if handler.Count() != 2 {
			t.Errorf("Derived loggers must share the record store, got %d records", handler.Count())
		}
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")
		logger.Error("error msg")

		if n := len(handler.GetRecordsByLevel(slog.LevelInfo)); n != 1 {
			t.Errorf("Expected 1 info record, got %d", n)
		}
		if n := len(handler.GetRecordsByLevel(slog.LevelError)); n != 1 {
			t.Errorf("Expected 1 error record, got %d", n)
		}
	})

	t.Run("counts and clears", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("notice")
		logger.Info("notice")
		if n := handler.CountMessage("notice"); n != 2 {
			t.Errorf("Expected 2 notices, got %d", n)
		}

		handler.Clear()
		if handler.Count() != 0 {
			t.Errorf("Expected 0 records after clear, got %d", handler.Count())
		}
	})
}
