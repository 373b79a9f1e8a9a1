package recur

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Consumers resolve "today" through it and pass the result into the pure
// recurrence functions.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
