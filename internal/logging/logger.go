package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field represents a single structured logging field as a key/value pair.
// It is backend-agnostic: adapters translate fields into their native
// representation.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field value. Supported types are string, int, int64,
	// uint64, float64, bool and error; anything else is logged via its
	// default formatting.
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the minimal structured logging interface used throughout the
// application. It decouples components from the concrete logging backend.
type Logger interface {
	// Info logs an informational message with optional structured fields.
	Info(msg string, fields ...Field)
	// Error logs an error message together with the causing error and
	// optional structured fields.
	Error(msg string, err error, fields ...Field)
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...Field)
	// Printf logs a formatted message at info level (fmt.Printf semantics).
	Printf(format string, args ...any)
	// Println logs its arguments at info level (fmt.Println semantics).
	Println(args ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps an existing zerolog.Logger.
//
// Parameters:
//   - logger: The zerolog logger to adapt.
//
// Returns:
//   - *ZerologAdapter: The adapted logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a ZerologAdapter writing JSON lines to w, tagged with a
// component field. This is the standard constructor for package-level loggers.
//
// Parameters:
//   - w: The destination writer.
//   - component: The component name attached to every entry.
//
// Returns:
//   - *ZerologAdapter: The configured logger.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates the application default logger writing to stderr.
//
// Returns:
//   - Logger: A ready-to-use logger.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, "parsum")
}

// Info logs an informational message with optional structured fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	ev := a.logger.Info()
	applyFields(ev, fields)
	ev.Msg(msg)
}

// Error logs an error message with the causing error and optional fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	ev := a.logger.Error().Err(err)
	applyFields(ev, fields)
	ev.Msg(msg)
}

// Debug logs a debug-level message with optional structured fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	ev := a.logger.Debug()
	applyFields(ev, fields)
	ev.Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(fmt.Sprintln(args...))
}

// applyFields translates Fields into zerolog event fields, dispatching on the
// dynamic type of each value.
func applyFields(ev *zerolog.Event, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev.Str(f.Key, v)
		case int:
			ev.Int(f.Key, v)
		case int64:
			ev.Int64(f.Key, v)
		case uint64:
			ev.Uint64(f.Key, v)
		case float64:
			ev.Float64(f.Key, v)
		case bool:
			ev.Bool(f.Key, v)
		case error:
			ev.AnErr(f.Key, v)
		default:
			ev.Interface(f.Key, v)
		}
	}
}

// StdLoggerAdapter adapts the standard library log.Logger to the Logger
// interface. It is used where a dependency hands us a *log.Logger, and as a
// plain-text fallback in tests.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// Verify interface compliance.
var _ Logger = (*StdLoggerAdapter)(nil)

// NewStdLoggerAdapter wraps a standard library logger.
//
// Parameters:
//   - logger: The *log.Logger to adapt.
//
// Returns:
//   - *StdLoggerAdapter: The adapted logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs an informational message with optional structured fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs an error message with the causing error and optional fields.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		a.logger.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
		return
	}
	a.logger.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug logs a debug-level message with optional structured fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf logs a formatted message at info level.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.logger.Printf(format, args...)
}

// Println logs its arguments at info level.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.logger.Println(args...)
}

// formatFields renders fields as " key=value" pairs for plain-text output.
func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	out := ""
	for _, f := range fields {
		out += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return out
}
