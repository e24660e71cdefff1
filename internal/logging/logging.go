// Package logging provides leveled, categorized key=value logging for
// studydash. Logging is off until Init or InitWriter is called, so the core
// packages can log unconditionally.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Category groups related log messages.
type Category string

const (
	CatPomodoro  Category = "pomodoro"
	CatStopwatch Category = "stopwatch"
	CatAudio     Category = "audio"
	CatSettings  Category = "settings"
	CatWatcher   Category = "watcher"
	CatUI        Category = "ui"
	CatPlatform  Category = "platform"
)

type logger struct {
	mu       sync.Mutex
	writer   io.Writer
	closer   io.Closer
	minLevel Level
	now      func() time.Time
}

var (
	stateMu sync.RWMutex
	current *logger
)

// Init opens path for appending and routes all logging there. An empty path
// logs to stderr. The returned function closes the file.
func Init(path string, minLevel Level) (func(), error) {
	if path == "" {
		InitWriter(os.Stderr, minLevel)
		return func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	install(&logger{writer: file, closer: file, minLevel: minLevel, now: time.Now})
	return closeCurrent, nil
}

// InitWithTeaLog routes logging through tea.LogToFile so it does not
// corrupt a running terminal UI.
func InitWithTeaLog(path string, minLevel Level) (func(), error) {
	file, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("open tea log file: %w", err)
	}
	install(&logger{writer: file, closer: file, minLevel: minLevel, now: time.Now})
	return closeCurrent, nil
}

// InitWriter routes logging to writer.
func InitWriter(writer io.Writer, minLevel Level) {
	install(&logger{writer: writer, minLevel: minLevel, now: time.Now})
}

// Disable turns logging off.
func Disable() {
	install(nil)
}

func install(next *logger) {
	stateMu.Lock()
	defer stateMu.Unlock()
	current = next
}

func closeCurrent() {
	stateMu.Lock()
	defer stateMu.Unlock()
	if current != nil && current.closer != nil {
		_ = current.closer.Close()
	}
	current = nil
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs err under the "error" key.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	stateMu.RLock()
	active := current
	stateMu.RUnlock()
	if active == nil || level < active.minLevel {
		return
	}

	// 2024-03-01T09:00:00 [INFO] [pomodoro] message key=value
	var entry strings.Builder
	fmt.Fprintf(&entry, "%s [%s] [%s] %s", active.now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&entry, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&entry, " %v=", fields[len(fields)-1])
	}
	entry.WriteByte('\n')

	active.mu.Lock()
	defer active.mu.Unlock()
	_, _ = io.WriteString(active.writer, entry.String())
}
