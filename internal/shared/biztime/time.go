// Package biztime is the single source of wall-clock time for the service.
// All timestamps are produced and stored in UTC.
package biztime

import (
	"sync"
	"time"
)

var (
	clockMu sync.RWMutex
	clock   = time.Now
)

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	clockMu.RLock()
	now := clock
	clockMu.RUnlock()
	return now().UTC()
}

// SetClock replaces the time source and returns a function restoring the previous one.
// Tests use it to pin timestamps.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = fn
	clockMu.Unlock()

	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}
