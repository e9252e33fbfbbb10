package clock

import "time"

// Clock abstracts time so login stamps and request durations stay testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed reports the same instant forever.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
