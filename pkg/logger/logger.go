package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level.
type Level int

const (
	// DEBUG level for detailed information.
	DEBUG Level = iota
	// INFO level for general information.
	INFO
	// ERROR level for error conditions.
	ERROR
)

// ErrNoFile is returned by GetEntries when the logger does not write to a file.
var ErrNoFile = errors.New("logger has no backing file")

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name into a Level. Matching is case-insensitive.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", name)
	}
}

// Entry represents a log entry.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Component string    `json:"component,omitempty"`
	Event     string    `json:"event"`
	Status    string    `json:"status"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes JSON-lines entries and optionally forwards them to a callback.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	file      *os.File
	path      string
	level     Level
	component string
	callback  func(Entry)
}

// New creates a logger writing to out.
func New(out io.Writer, level Level, callback func(Entry)) *Logger {
	return &Logger{
		out:      out,
		level:    level,
		callback: callback,
	}
}

// NewFile creates a logger appending to the file at logPath.
func NewFile(logPath string, level Level, callback func(Entry)) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		out:      file,
		file:     file,
		path:     logPath,
		level:    level,
		callback: callback,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(io.Discard, ERROR+1, nil)
}

// With returns a logger sharing the output of l that tags entries with component.
// The returned logger must not be closed; close the parent instead.
func (l *Logger) With(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &Logger{
		out:       lockedWriter{mu: &l.mu, w: l.out},
		path:      l.path,
		level:     l.level,
		component: component,
		callback:  l.callback,
	}
}

// SetCallback replaces the entry callback.
func (l *Logger) SetCallback(callback func(Entry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callback = callback
}

// Log writes a log entry.
func (l *Logger) Log(level Level, event, status, details string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	entry := Entry{
		Timestamp: time.Now(),
		Level:     level,
		Component: l.component,
		Event:     event,
		Status:    status,
		Details:   details,
	}

	data, err := json.Marshal(entry)
	if err == nil {
		fmt.Fprintln(l.out, string(data))
	}

	if l.callback != nil {
		l.callback(entry)
	}
}

// Debug logs a debug level message.
func (l *Logger) Debug(event, status, details string) {
	l.Log(DEBUG, event, status, details)
}

// Info logs an info level message.
func (l *Logger) Info(event, status, details string) {
	l.Log(INFO, event, status, details)
}

// Error logs an error level message.
func (l *Logger) Error(event, status, details string) {
	l.Log(ERROR, event, status, details)
}

// Close closes the backing file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetEntries reads back entries logged between start and end (inclusive).
// A non-empty filter keeps only entries whose component, event, status or
// details contain it, ignoring case.
func (l *Logger) GetEntries(start, end time.Time, filter string) ([]Entry, error) {
	l.mu.Lock()
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return nil, ErrNoFile
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	needle := strings.ToLower(filter)
	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		if entry.Timestamp.Before(start) || entry.Timestamp.After(end) {
			continue
		}
		if needle != "" && !entry.matches(needle) {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	return entries, nil
}

func (e Entry) matches(needle string) bool {
	for _, field := range []string{e.Component, e.Event, e.Status, e.Details} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// lockedWriter serializes writes of child loggers through the parent's mutex.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	return lw.w.Write(p)
}
