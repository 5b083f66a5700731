package kernel

import "time"

// Clock returns the current wall-clock time.
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() Clock {
	return time.Now
}

// Now returns the current time, falling back to the system clock for a nil Clock.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
