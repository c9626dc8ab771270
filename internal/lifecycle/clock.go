package lifecycle

import (
	"time"
)

// Clock supplies the current time to state resolution.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now reports the wall clock in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns the real clock.
func SystemClock() Clock {
	return systemClock{}
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
