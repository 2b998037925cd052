package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to the writer goroutine
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	RequestID string
	IPAddress string
	Caller    string
	Fields    map[string]interface{}
	Time      time.Time
}

// LogRecord is the persisted shape of a log entry.
type LogRecord struct {
	AppID      string                 `bson:"appId"`
	LogLevelID int                    `bson:"logLevelId"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	RequestID  string                 `bson:"requestId,omitempty"`
	IPAddress  string                 `bson:"ipAddress,omitempty"`
	Caller     string                 `bson:"caller,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
	CreatedAt  time.Time              `bson:"createdAt"`
}

// LogSink is the part of *mongo.Collection the writer needs.
type LogSink interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	sink    LogSink
	logChan chan LogEntry
	appID   string
	flushed chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDBLogWriter(sink LogSink, appID string) *DBLogWriter {
	writer := &DBLogWriter{
		sink:    sink,
		logChan: make(chan LogEntry, 1000),
		appID:   appID,
		flushed: make(chan struct{}),
	}

	go writer.processLogs()

	return writer
}

// AddLog never blocks the caller; entries are dropped when the buffer is full.
func (w *DBLogWriter) AddLog(entry LogEntry) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}

	select {
	case w.logChan <- entry:
	default:
		fmt.Fprintln(os.Stderr, "DB log channel full, dropping log:", entry.Message)
	}
}

// Close stops accepting entries and waits for the buffered ones to be written.
func (w *DBLogWriter) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.logChan)
	}
	w.mu.Unlock()
	<-w.flushed
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		record := LogRecord{
			AppID:      w.appID,
			LogLevelID: mapLevelToInt(entry.Level),
			Level:      entry.Level.String(),
			Message:    entry.Message,
			RequestID:  entry.RequestID,
			IPAddress:  entry.IPAddress,
			Caller:     entry.Caller,
			Fields:     entry.Fields,
			CreatedAt:  entry.Time.UTC(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		// Insert failures are ignored to keep the API running.
		_, _ = w.sink.InsertOne(ctx, record)
		cancel()
	}
	close(w.flushed)
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	case zapcore.FatalLevel:
		return 50
	default:
		return 20
	}
}
