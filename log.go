package tvision

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// The engine owns the terminal, so it never logs to stdout or stderr.
// Logging is discarded until InitLogging points it at a file.
var (
	logger   = slog.New(slog.DiscardHandler)
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	logMu    sync.Mutex
)

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger
}

// SetLogger replaces the package logger. Passing nil discards logs.
func SetLogger(l *slog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// SetLogLevel changes the minimum level of a logger created by InitLogging.
func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

// ParseLogLevel accepts debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// InitLogging appends text-formatted logs at or above level to path.
func InitLogging(path string, level slog.Level) error {
	logMu.Lock()
	defer logMu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	levelVar.Set(level)
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	logger.Info("logger initialized", "path", path, "level", level)
	return nil
}

// CloseLogging closes the log file and goes back to discarding.
func CloseLogging() error {
	logMu.Lock()
	defer logMu.Unlock()
	logger = slog.New(slog.DiscardHandler)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// viewName returns the bare type name of v for log records.
func viewName(v View) string {
	name := fmt.Sprintf("%T", v)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
