package log

import "sync"

var (
	globalMu sync.RWMutex
	global   *Logger
)

// SetDefaultLogger installs the process-wide logger. The command layer
// calls this once per invocation, after flags decide level and format.
func SetDefaultLogger(l *Logger) {
	globalMu.Lock()
	global = l
	globalMu.Unlock()
}

// DefaultLogger returns the process-wide logger. Before the command layer
// installs one, callers get a logger with the CLI defaults, so packages
// constructed early (stores, clients) can always log.
func DefaultLogger() *Logger {
	globalMu.RLock()
	l := global
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = Default()
	}
	return global
}
