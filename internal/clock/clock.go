// Package clock abstracts the time source used for interaction debounce and
// the delayed video encode enable, so tests can drive both deterministically.
package clock

import "time"

type Clock interface {
	// Now returns the current time. Real clocks carry a monotonic reading.
	Now() time.Time

	// AfterFunc calls f in its own goroutine (real) or during Advance (fake)
	// once d has elapsed. The returned Timer can cancel the pending call.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the Timer from firing. It reports false if the call
// already ran or was already stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }
