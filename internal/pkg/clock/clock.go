package clock

import "time"

// Clock stamps quotes. Tests swap in MockClock for deterministic times.
type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

func NewRealClock() Clock {
	return &realClock{loc: time.UTC}
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
