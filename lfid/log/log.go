package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// stringer is anything that can name itself in a log line, so every
// log call is tagged with the component that produced it.
type stringer interface {
	String() string
}

var handlerLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: handlerLevel,
}))

var minLevel = LevelInfo

// SetLevel sets the minimum level that will actually be emitted.
func SetLevel(level Level) {
	minLevel = level
	handlerLevel.Set(toSlogLevel(level))
}

func toSlogLevel(level Level) slog.Level {
	return slog.Level(level)
}

func emit(level Level, comp any, msg string, kv ...any) {
	if level < minLevel {
		return
	}
	name := "-"
	if s, ok := comp.(stringer); ok {
		name = s.String()
	} else if comp != nil {
		name = fmt.Sprintf("%v", comp)
	}
	args := append([]any{"component", name}, kv...)
	logger.Log(context.Background(), toSlogLevel(level), msg, args...)
}

// Trace logs a trace-level message attributed to comp, which should
// implement String() to identify itself (a FIB, a pruner run, a table).
func Trace(comp any, msg string, kv ...any) { emit(LevelTrace, comp, msg, kv...) }

// Debug logs a debug-level message attributed to comp.
func Debug(comp any, msg string, kv ...any) { emit(LevelDebug, comp, msg, kv...) }

// Info logs an info-level message attributed to comp.
func Info(comp any, msg string, kv ...any) { emit(LevelInfo, comp, msg, kv...) }

// Warn logs a warn-level message attributed to comp.
func Warn(comp any, msg string, kv ...any) { emit(LevelWarn, comp, msg, kv...) }

// Error logs an error-level message attributed to comp.
func Error(comp any, msg string, kv ...any) { emit(LevelError, comp, msg, kv...) }

// Fatal logs a fatal-level message attributed to comp and terminates the
// process. The core never calls this for invariant violations -- those
// panic with a typed error instead -- and the CLI reports setup failures
// (e.g. a malformed topology file) by returning an error.
func Fatal(comp any, msg string, kv ...any) {
	emit(LevelFatal, comp, msg, kv...)
	os.Exit(1)
}
