package logger

import (
	"testing"
	"time"

	"sacred-journey/internal/database"

	"go.uber.org/zap/zapcore"
)

// The worker never touches the database handle unless an entry is
// queued, so a nil handle is enough to exercise the shutdown path.
func newIdleWriter() *DBLogWriter {
	return NewDBLogWriter(&database.MongodbDB{})
}

func TestDBLogWriter_CloseStopsWorker(t *testing.T) {
	w := newIdleWriter()

	finished := make(chan struct{})
	go func() {
		w.Close()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() did not return, worker still running")
	}

	select {
	case <-w.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker goroutine did not exit after Close()")
	}
}

func TestDBLogWriter_AddLogAfterCloseIsDropped(t *testing.T) {
	w := newIdleWriter()
	w.Close()

	// Must not panic on the closed channel
	w.AddLog(LogEntry{Level: zapcore.InfoLevel, Message: "late entry"})
}

func TestDBLogWriter_CloseIsIdempotent(t *testing.T) {
	w := newIdleWriter()
	w.Close()
	w.Close()
}
