// Package logging configures the process-wide structured loggers.
// It provides a JSON logger for machine consumption and per-service
// sub-loggers carrying a "service" attribute.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var structuredLogger *slog.Logger

// levelVar allows changing the minimum level without rebuilding handlers.
var levelVar = new(slog.LevelVar)

// Init initializes the logging system. Structured JSON goes to stdout;
// when logFile is non-empty the same stream is duplicated into a rotating
// file. Call once at startup before any ForService use.
func Init(debug bool, logFile string) {
	if debug {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}

	var out io.Writer = os.Stdout
	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: levelVar})
	structuredLogger = slog.New(handler)
	slog.SetDefault(structuredLogger)
}

// SetLevel sets the minimum logging level for the structured logger.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// Structured returns the globally configured structured (JSON) logger.
// Returns the slog default if Init() has not been called.
func Structured() *slog.Logger {
	if structuredLogger == nil {
		return slog.Default()
	}
	return structuredLogger
}

// ForService creates a new logger instance with the 'service' attribute
// added, using the global structured logger as the base.
func ForService(serviceName string) *slog.Logger {
	return Structured().With("service", serviceName)
}
