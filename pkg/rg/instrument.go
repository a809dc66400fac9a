package rg

import (
	"log"
	"time"
)

// debugLog receives operation timings when set. Nil means no
// instrumentation overhead beyond a single comparison.
var debugLog *log.Logger

// SetDebugLogger installs a logger that receives the duration of every
// Run and structured-output access, for diagnosing slow searches. Pass nil
// to turn timing off again. Not safe to call while searches are in flight.
func SetDebugLogger(l *log.Logger) {
	debugLog = l
}

// timed is the cross-cutting timing wrapper: defer timed("op")() at the
// top of an operation logs its wall-clock duration on completion.
func timed(op string) func() {
	if debugLog == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		debugLog.Printf("rg: %s took %s", op, time.Since(start).Round(time.Microsecond))
	}
}
