package twentyfour

import (
	"log"
	"os"
	"sync/atomic"
)

// Lightweight, opt-in tracing for the solver and the puzzle generator.
// Enable by setting env var TWENTYFOUR_TRACE=1 or by calling EnableTrace.

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("TWENTYFOUR_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

// EnableTrace turns on trace logging through the standard logger.
func EnableTrace() { traceEnabled.Store(true) }

// DisableTrace turns trace logging off.
func DisableTrace() { traceEnabled.Store(false) }

func tracef(component, format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("["+component+"] "+format, args...)
}
