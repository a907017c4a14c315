package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// WriterLogger writes one line per log statement to the given writer, prefixed with a timestamp and the level tag.
//
// NOTE: Statements below 'MinLevel' are discarded.
type WriterLogger struct {
	lock     sync.Mutex
	w        io.Writer
	now      func() time.Time
	MinLevel Level
}

// NewStdoutLogger returns a logger which prints every statement at or above the given level to stdout.
func NewStdoutLogger(level Level) *WriterLogger {
	return NewWriterLogger(os.Stdout, level)
}

// NewWriterLogger returns a logger which prints every statement at or above the given level to w.
func NewWriterLogger(w io.Writer, level Level) *WriterLogger {
	return &WriterLogger{w: w, now: time.Now, MinLevel: level}
}

// Log formats the message and writes it to the underlying writer; write errors are ignored.
func (l *WriterLogger) Log(level Level, format string, args ...any) {
	if level < l.MinLevel {
		return
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	fmt.Fprintf(l.w, "%s %s: %s\n", l.now().Format(time.RFC3339Nano), level.Prefix(), fmt.Sprintf(format, args...))
}
