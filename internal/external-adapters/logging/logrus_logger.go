// Package logging provides the logrus-backed implementation of the
// domain Logger port.
package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/ochairo/sbomview/internal/domain/interfaces"
)

// logrusLogger adapts a logrus entry to the domain Logger port
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a structured logger at the given level.
// Unknown levels fall back to logrus's default (info).
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewLogrusLogger(level string) *logrusLogger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

// Debug logs debug-level messages
func (l *logrusLogger) Debug(msg string, fields ...interfaces.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Debug(msg)
}

// Info logs informational messages
func (l *logrusLogger) Info(msg string, fields ...interfaces.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs warning messages
func (l *logrusLogger) Warn(msg string, fields ...interfaces.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs error messages
func (l *logrusLogger) Error(msg string, fields ...interfaces.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Error(msg)
}

// With returns a logger that attaches the fields to every message
func (l *logrusLogger) With(fields ...interfaces.Field) interfaces.Logger {
	return &logrusLogger{entry: l.entry.WithFields(toLogrusFields(fields))}
}

func toLogrusFields(fields []interfaces.Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
