// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout the exporter.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Diagnostics are written to the error stream; operator-facing progress is
// printed separately on standard output.
package logger

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "exporter")
// that writes JSON entries to out.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format).
func NewLogger(role string, out io.Writer) *Logger {
	configureGlobals()

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger is like NewLogger but renders human-readable lines through
// zerolog.ConsoleWriter. Used when the exporter runs in a terminal.
func NewConsoleLogger(role string, out io.Writer) *Logger {
	configureGlobals()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// New picks the constructor matching format and applies level.
// An empty format means console output; an empty level means debug.
func New(role, format, level string, out io.Writer) (*Logger, error) {
	var l *Logger
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		l = NewConsoleLogger(role, out)
	case FormatJSON:
		l = NewLogger(role, out)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	if level == "" {
		return l, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	l.Logger = l.Level(lvl)

	return l, nil
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithRunID returns a child logger tagging every entry with runID.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{l.With().Str("run_id", runID).Logger()}
}
