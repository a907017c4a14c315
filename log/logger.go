// Package log provides an interface to setup logging for the heap types in this module.
package log

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// nopLogger discards everything, it's used when the user hasn't provided a logger.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}
