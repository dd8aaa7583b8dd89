package clock

import "time"

// Clock stamps session start and end times.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed reports the same instant on every call.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Seed derives the encouragement picker seed from c.
func Seed(c Clock) int64 {
	return c.Now().UnixNano()
}
