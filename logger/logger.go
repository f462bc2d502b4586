package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/chlnedo/calorie-tracker/config"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// Init initializes the global structured logger. The level is taken from the
// LOG_LEVEL env var (debug, info, warn, error) and defaults to info.
func Init() {
	once.Do(func() {
		level := slog.LevelInfo
		switch strings.ToLower(config.GetEnv("LOG_LEVEL", "info")) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
}

// L returns the global logger instance
func L() *slog.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

// Info is a shorthand for L().Info
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Error is a shorthand for L().Error
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// Debug is a shorthand for L().Debug
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Warn is a shorthand for L().Warn
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}
