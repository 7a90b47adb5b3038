package clock

import (
	"sync"
	"time"
)

// Clock provides an abstraction for time operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the duration since the given time
	Since(t time.Time) time.Duration
	// Until returns the duration until the given time
	Until(t time.Time) time.Duration
}

// Real uses the actual system time
type Real struct{}

// NewReal creates a new Real clock
func NewReal() *Real {
	return &Real{}
}

func (c *Real) Now() time.Time {
	return time.Now()
}

func (c *Real) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (c *Real) Until(t time.Time) time.Duration {
	return time.Until(t)
}

// Simulated allows time manipulation in tests. It is safe for concurrent use.
type Simulated struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulated creates a new Simulated clock starting at the given time
func NewSimulated(start time.Time) *Simulated {
	return &Simulated{current: start}
}

// Now returns the simulated current time
func (c *Simulated) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Simulated) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *Simulated) Until(t time.Time) time.Duration {
	return t.Sub(c.Now())
}

// Advance moves the simulated time forward by the given duration
func (c *Simulated) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// AdvanceDays moves the simulated time forward by whole calendar days
func (c *Simulated) AdvanceDays(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.AddDate(0, 0, days)
}

// Set sets the simulated time to a specific value
func (c *Simulated) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// NextMidnight returns the start of the calendar day after now, in now's location
func NextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}
