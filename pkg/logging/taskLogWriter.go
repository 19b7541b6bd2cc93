package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// MaxPayloadSize is the maximum size in bytes for a single log request (1MB)
	MaxPayloadSize = 1024 * 1024

	// DefaultMaxBufferSize is the default maximum buffer size in bytes (10MB)
	DefaultMaxBufferSize = 10 * 1024 * 1024
)

// TaskLogEntry is a single log line forwarded to the task run on the platform.
type TaskLogEntry struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (l *TaskLogEntry) toJSON() ([]byte, error) {
	return json.Marshal(l)
}

// TaskLogSender appends log entries to a task run. It is implemented by the
// platform tasks service.
type TaskLogSender interface {
	AppendTaskLogs(ctx context.Context, taskID int, entries []TaskLogEntry) error
}

// Batch represents a collection of log entries that will be sent together
type Batch []TaskLogEntry

// Size returns the approximate serialized JSON size of the batch in bytes
func (b Batch) Size() (int, error) {
	if len(b) == 0 {
		return 2, nil // Empty array: []
	}

	totalSize := 2 // Account for array brackets []
	for i, entry := range b {
		entryBytes, err := entry.toJSON()
		if err != nil {
			return 0, err
		}
		totalSize += len(entryBytes)
		if i < len(b)-1 {
			totalSize++ // Add comma separator
		}
	}
	return totalSize, nil
}

// TaskLogWriterConfig holds configuration for the task log writer
type TaskLogWriterConfig struct {
	// MaxBufferSize is the maximum buffer size in bytes (default: 10MB)
	MaxBufferSize int
	// TriggerLevel is the minimum log level that triggers sending the buffer
	TriggerLevel zerolog.Level
	// Sender forwards batched entries to the platform
	Sender TaskLogSender
	// TaskID identifies the task run the entries belong to
	TaskID int
	// OnError is called when sending logs fails (optional)
	OnError func(error)
}

// TaskLogWriter buffers log messages and forwards them to the platform task
// when a log message with level >= TriggerLevel is received
type TaskLogWriter struct {
	mu                sync.RWMutex
	config            TaskLogWriterConfig
	buffer            []TaskLogEntry
	currentBufferSize int // Current buffer size in bytes
	underlyingWriter  zerolog.LevelWriter
}

// NewTaskLogWriter creates a new task log writer with the given configuration
func NewTaskLogWriter(config TaskLogWriterConfig, underlyingWriter zerolog.LevelWriter) *TaskLogWriter {
	if config.MaxBufferSize <= 0 {
		config.MaxBufferSize = DefaultMaxBufferSize
	}
	// If TriggerLevel is not set (default zero value is DebugLevel),
	// set it to ErrorLevel as a reasonable default for forwarded logging
	if config.TriggerLevel == 0 {
		config.TriggerLevel = zerolog.ErrorLevel // default trigger level
	}
	return &TaskLogWriter{
		config:            config,
		buffer:            make([]TaskLogEntry, 0),
		currentBufferSize: 0,
		underlyingWriter:  underlyingWriter,
	}
}

// WriteLevel implements zerolog.LevelWriter
func (w *TaskLogWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	// First write to underlying writer if present
	var writeErr error
	bytesWritten := len(p)
	if w.underlyingWriter != nil {
		bytesWritten, writeErr = w.underlyingWriter.WriteLevel(level, p)
	}

	// Add to buffer
	w.mu.Lock()
	entry := TaskLogEntry{
		Level:     convertLogLevel(level),
		Message:   string(p),
		Timestamp: time.Now(),
	}

	// Calculate approximate entry size
	entrySize := len(p) + 50 // Message + overhead for level, timestamp, JSON structure

	// Add entry to buffer
	w.buffer = append(w.buffer, entry)
	w.currentBufferSize += entrySize

	// Trim buffer if it exceeds max size (keep most recent entries)
	for w.currentBufferSize > w.config.MaxBufferSize && len(w.buffer) > 0 {
		// Remove oldest entry
		removedEntry := w.buffer[0]
		removedSize := len(removedEntry.Message) + 50
		w.buffer = w.buffer[1:]
		w.currentBufferSize -= removedSize
	}

	// Check if we should trigger a send
	shouldSend := level >= w.config.TriggerLevel
	var bufferCopy []TaskLogEntry
	if shouldSend {
		// Create a copy of the buffer to send
		bufferCopy = make([]TaskLogEntry, len(w.buffer))
		copy(bufferCopy, w.buffer)
		// Clear the buffer after copying
		w.buffer = make([]TaskLogEntry, 0)
		w.currentBufferSize = 0
	}
	w.mu.Unlock()

	// Send logs asynchronously if triggered
	if shouldSend && len(bufferCopy) > 0 {
		go w.sendLogs(bufferCopy)
	}

	return bytesWritten, writeErr
}

// Write implements io.Writer interface
func (w *TaskLogWriter) Write(p []byte) (int, error) {
	// Default to Info level when no level is specified
	return w.WriteLevel(zerolog.InfoLevel, p)
}

// sendLogs sends the buffered logs to the platform in batches to ensure
// each payload is under MaxPayloadSize (1MB)
func (w *TaskLogWriter) sendLogs(entries []TaskLogEntry) {
	if w.config.Sender == nil {
		return
	}

	// Split entries into batches based on payload size
	batches := w.batchEntriesBySize(entries)

	// Send each batch
	for _, batch := range batches {
		w.sendBatch(batch)
	}
}

// batchEntriesBySize splits log entries into batches where each batch's
// serialized JSON payload is less than MaxPayloadSize
func (w *TaskLogWriter) batchEntriesBySize(entries []TaskLogEntry) []Batch {
	if len(entries) == 0 {
		return nil
	}

	var batches []Batch
	var currentBatch Batch
	var currentSize int

	for _, entry := range entries {
		entryBytes, err := entry.toJSON()
		if err != nil {
			// If we can't marshal, skip this entry
			continue
		}
		entrySize := len(entryBytes) + 1 // +1 for comma in JSON array

		// If this single entry exceeds max size, skip it (log error)
		if entrySize > MaxPayloadSize {
			w.handleError(fmt.Errorf("single log entry exceeds maximum payload size: %d bytes", entrySize))
			continue
		}

		// If adding this entry would exceed max size, start a new batch
		// Account for JSON array overhead: [], commas between entries
		estimatedBatchSize := currentSize + entrySize + 2 // +2 for array brackets
		if len(currentBatch) > 0 && estimatedBatchSize > MaxPayloadSize {
			batches = append(batches, currentBatch)
			currentBatch = Batch{entry}
			currentSize = entrySize
		} else {
			currentBatch = append(currentBatch, entry)
			currentSize += entrySize
		}
	}

	// Add the last batch if it has entries
	if len(currentBatch) > 0 {
		batches = append(batches, currentBatch)
	}

	return batches
}

// sendBatch sends a single batch of log entries to the platform
func (w *TaskLogWriter) sendBatch(batch Batch) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := w.config.Sender.AppendTaskLogs(ctx, w.config.TaskID, batch)
	if err != nil {
		w.handleError(fmt.Errorf("failed to send logs: %w", err))
	}
}

// convertLogLevel converts zerolog.Level to the platform log level
func convertLogLevel(level zerolog.Level) string {
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return "debug"
	case zerolog.InfoLevel:
		return "info"
	case zerolog.WarnLevel:
		return "warn"
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return "error"
	default:
		return "info"
	}
}

// handleError calls the OnError callback if configured
func (w *TaskLogWriter) handleError(err error) {
	if w.config.OnError != nil {
		w.config.OnError(err)
	}
}

// Flush sends any remaining buffered logs to the platform
func (w *TaskLogWriter) Flush() error {
	w.mu.Lock()
	bufferCopy := make([]TaskLogEntry, len(w.buffer))
	copy(bufferCopy, w.buffer)
	w.buffer = make([]TaskLogEntry, 0)
	w.currentBufferSize = 0
	w.mu.Unlock()

	if len(bufferCopy) > 0 {
		w.sendLogs(bufferCopy)
	}

	return nil
}

// GetBufferSize returns the current buffer size in bytes
func (w *TaskLogWriter) GetBufferSize() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.currentBufferSize
}

// GetBufferEntryCount returns the current number of entries in the buffer
func (w *TaskLogWriter) GetBufferEntryCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.buffer)
}

// Clear removes all entries from the buffer
func (w *TaskLogWriter) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buffer = make([]TaskLogEntry, 0)
	w.currentBufferSize = 0
}
