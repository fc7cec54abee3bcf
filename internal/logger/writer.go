package logger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sacred-journey/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	UserID  string
	Path    string
	Caller  string
}

type logDocument struct {
	Message   string    `bson:"message"`
	Level     string    `bson:"level"`
	UserID    string    `bson:"user_id,omitempty"`
	Path      string    `bson:"path,omitempty"`
	Caller    string    `bson:"caller,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	db      *mongo.Database
	logChan chan LogEntry
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(mongodb *database.MongodbDB) *DBLogWriter {
	writer := &DBLogWriter{
		db:      mongodb.DB,
		logChan: make(chan LogEntry, 1000),
		done:    make(chan struct{}),
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook. Entries arriving after Close are
// dropped.
func (w *DBLogWriter) AddLog(entry LogEntry) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}

	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop the log rather than block a request
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

// Close stops the worker and waits for the buffered entries to drain.
// Safe to call more than once.
func (w *DBLogWriter) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.logChan)
	w.mu.Unlock()

	<-w.done
}

func (w *DBLogWriter) processLogs() {
	defer close(w.done)

	for entry := range w.logChan {
		doc := logDocument{
			Message:   entry.Message,
			Level:     entry.Level.String(),
			UserID:    entry.UserID,
			Path:      entry.Path,
			Caller:    entry.Caller,
			CreatedAt: time.Now().UTC(),
		}

		// Insert errors are ignored so logging can never take the app down
		w.db.Collection("logs").InsertOne(context.Background(), doc)
	}
}
