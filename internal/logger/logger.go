// Package logger writes structured debug logs to a file.
//
// The terminal belongs to the TUI, so nothing here ever writes to stdout or
// stderr once the program is running. Components obtain a pre-tagged logger
// with WithComponent and log key/value pairs through it.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is where the log goes when Init is never called.
const DefaultLogPath = "/tmp/dotide-debug.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	logFile  *os.File
	logPath  string
	levelVar = new(slog.LevelVar)
	debug    bool
)

// SetDebug switches between debug and info level. Safe to call before Init.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// IsDebug reports whether debug logging is enabled.
func IsDebug() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

// Init opens path for appending and routes all component loggers to it.
// Calling Init again after a successful Init is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if base != nil {
		return nil
	}
	return openLocked(path)
}

func openLocked(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

func ensureLocked() *slog.Logger {
	if base == nil {
		if err := openLocked(DefaultLogPath); err != nil {
			// Nowhere sensible to report this; drop logs instead of corrupting the screen.
			base = slog.New(slog.NewTextHandler(discard{}, nil))
		}
	}
	return base
}

// WithComponent returns a logger tagged with component=name.
//
//	log := logger.WithComponent("build")
//	log.Info("build finished", "project", p.Name, "success", res.Success)
func WithComponent(name string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return ensureLocked().With(slog.String("component", name))
}

// Path returns the active log file path, or "" before the first log call.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// Reset returns the package to its initial state. Tests use it to point the
// logger at a temp file.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	logPath = ""
	debug = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the default log file. It returns the number of files removed.
func ClearLogs() (int, error) {
	if err := os.Remove(DefaultLogPath); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
