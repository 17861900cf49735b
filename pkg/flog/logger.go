// Package flog provides the CLI-facing logger. Output is meant for a
// human at a terminal, not a log collector: one line per record, a level
// glyph, the message, then key=value attributes.
package flog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with convenience methods.
type Logger struct {
	*slog.Logger
}

// cliHandler formats records in a clean, CLI-friendly way.
type cliHandler struct {
	level    slog.Level
	output   io.Writer
	preattrs []slog.Attr
}

var levelGlyphs = map[slog.Level]string{
	slog.LevelDebug: "🔍 ",
	slog.LevelInfo:  "ℹ️  ",
	slog.LevelWarn:  "⚠️  ",
	slog.LevelError: "❌ ",
}

func (h *cliHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *cliHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if glyph, ok := levelGlyphs[r.Level]; ok {
		b.WriteString(glyph)
	}
	b.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(a.Value.String())
	}
	for _, a := range h.preattrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	b.WriteString("\n")
	_, err := h.output.Write([]byte(b.String()))
	return err
}

func (h *cliHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.preattrs)+len(attrs))
	merged = append(merged, h.preattrs...)
	merged = append(merged, attrs...)
	return &cliHandler{level: h.level, output: h.output, preattrs: merged}
}

func (h *cliHandler) WithGroup(name string) slog.Handler {
	// Groups are not rendered; attribute keys stay flat for terminal output.
	return h
}

// NewLogger creates a logger with the specified level and output.
func NewLogger(level slog.Level, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}
	return &Logger{Logger: slog.New(&cliHandler{level: level, output: output})}
}

// NewDefault creates a logger with INFO level writing to stderr, leaving
// stdout to command output.
func NewDefault() *Logger {
	return NewLogger(slog.LevelInfo, os.Stderr)
}

// NewQuiet creates a logger with WARN level (suppresses info/debug).
func NewQuiet() *Logger {
	return NewLogger(slog.LevelWarn, os.Stderr)
}

// NewVerbose creates a logger with DEBUG level.
func NewVerbose() *Logger {
	return NewLogger(slog.LevelDebug, os.Stderr)
}

// With returns a logger that adds the given attributes to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Fatal logs at ERROR level and exits with code 1.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}

// Fatalf formats and logs at ERROR level, then exits with code 1.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
