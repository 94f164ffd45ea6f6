package logger

import (
	"sync"
)

// Log levels accepted by the log.level setting.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	shared *Logger
	once   sync.Once
)

// Get returns the process-wide logger. Only the level passed on the first call is used.
func Get(level string) *Logger {
	once.Do(func() {
		shared = New(level)
	})
	return shared
}
