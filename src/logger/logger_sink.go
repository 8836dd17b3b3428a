package logger

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Sink receives every message the logger emits, after it has been written
// to the primary output.
type Sink func(level zerolog.Level, msg string, at time.Time)

func AddSink(l *Logger, sink Sink) {
	l.sink = sink
}

func (l *Logger) activateSinkFormatted(level zerolog.Level, format string, v ...interface{}) {
	if l.sink != nil {
		l.sink(level, fmt.Sprintf(format, v...), time.Now().UTC())
	}
}

func (l *Logger) activateSink(level zerolog.Level, msg string) {
	if l.sink != nil {
		l.sink(level, msg, time.Now().UTC())
	}
}
