// Package logger provides the leveled logger used by the CLI and the engine.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel reads a level name. Unknown names are an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes leveled lines through the standard log package.
type Logger struct {
	out   *log.Logger
	level Level
}

// New returns a logger writing entries at or above level to w.
func New(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

// Setup returns a logger writing to stderr and to a rotating file.
// The returned closer releases the file. When the file cannot be
// opened the logger falls back to stderr only and reports the error.
func Setup(filename string, maxSizeMB int64, maxBackups int, level Level) (*Logger, io.Closer, error) {
	if filename == "" {
		return New(os.Stderr, level), nopCloser{}, nil
	}
	rotator, err := NewRotator(filename, maxSizeMB, maxBackups)
	if err != nil {
		return New(os.Stderr, level), nopCloser{}, fmt.Errorf("opening log file, using stderr only: %w", err)
	}
	return New(io.MultiWriter(os.Stderr, rotator), level), rotator, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Level returns the minimum level written.
func (l *Logger) Level() Level { return l.level }

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
