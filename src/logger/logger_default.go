package logger

import "sync"

var (
	defaultLogger *Logger
	once          sync.Once
)

// InitDefaultLogger sets up the process-wide logger. Subsequent calls are
// no-ops, so every package can call Default() without ordering concerns.
func InitDefaultLogger() {
	once.Do(func() {
		defaultLogger = New()
	})
}

func Default() *Logger {
	if defaultLogger == nil {
		InitDefaultLogger()
	}
	return defaultLogger
}
