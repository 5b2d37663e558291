package util

import "time"

// Timer measures elapsed wall time from a start instant.
type Timer struct {
	start time.Time
	now   func() time.Time
}

// StartTimer creates a timer starting at the current time.
func StartTimer() Timer {
	return Timer{start: time.Now(), now: time.Now}
}

// Elapsed returns the duration since start, or zero for an unstarted timer.
func (t Timer) Elapsed() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	now := t.now
	if now == nil {
		now = time.Now
	}
	return now().Sub(t.start)
}

// ElapsedMs returns the elapsed milliseconds since start.
func (t Timer) ElapsedMs() int64 {
	return t.Elapsed().Milliseconds()
}
