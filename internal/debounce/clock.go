package debounce

import "time"

// Clock is the time source a Debouncer arms its timer on.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f in its own goroutine after d. The returned stop
	// function reports whether it prevented the call.
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// System is the wall clock.
var System Clock = systemClock{}
