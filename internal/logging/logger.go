// Package logging decouples the pipeline from the logging backend.
// Stages log through the Logger interface; main wires a logrus-backed
// implementation and tests substitute MockLogger.
package logging

// Logger is the structured logger the pipeline stages write to.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with the error attached to every
	// subsequent entry.
	WithError(err error) Logger

	// WithField returns a logger with one field attached.
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger with the fields attached.
	WithFields(fields ...Field) Logger
}

// Field is one key-value pair of log context, keyed by the constants in
// this package where one fits.
type Field struct {
	Key   string
	Value interface{}
}
