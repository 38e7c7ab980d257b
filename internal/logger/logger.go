package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when no path is configured, relative to the working directory.
const DefaultPath = "logs/compound2d.txt"

// Logger stores lines in memory and appends them to a file on disk. Echo, when set, also
// receives every line (the CLI points it at stderr).
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	Echo  io.Writer
}

// New returns a Logger writing to path (DefaultPath if empty) and ensures its directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0)}
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Log appends a line prefixed with [timestamp] to memory, the log file and Echo.
// File errors are ignored; the in-memory copy is always kept.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if l.Echo != nil {
		_, _ = io.WriteString(l.Echo, stamped+"\n")
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
