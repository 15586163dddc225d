// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// EnvLevel selects the log level: debug, info, warn, error, or a number.
	EnvLevel = "TOUGH_LOG_LEVEL"

	defaultFileName   = "setup.log"
	defaultMaxSize    = 1
	defaultMaxBackups = 3
	defaultMaxAge     = 28
)

// DefaultPath returns the installer log location under the user cache
// directory (%LOCALAPPDATA%\tough on Windows).
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tough", defaultFileName), nil
}

// ParseLevel converts a level name or number, falling back to defaultLevel.
func ParseLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	switch level {
	case "":
		return defaultLevel
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}
	return defaultLevel
}

// ConfigureFile sends the default logger to a rotating file at logPath.
// The caller closes the returned writer on exit.
func ConfigureFile(logPath string, level slog.Level) io.Closer {
	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    defaultMaxSize,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAge,
	}
	Configure(writer, level)
	return writer
}

// Configure sends the default logger to w.
func Configure(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
