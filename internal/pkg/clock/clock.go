package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

// NewRealClockIn reports wall time in loc; reservation start times are entered in the lot's zone.
func NewRealClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
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

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
