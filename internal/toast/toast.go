// Package toast is the transient notification mechanism shared by every
// screen. A toast replaces the previous one and auto-dismisses after a
// fixed duration (3 seconds by default).
package toast

import (
	"sync"
	"time"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
)

const DefaultDuration = 3 * time.Second

type Toast struct {
	Message   string
	Level     Level
	ExpiresAt time.Time
}

// Center holds at most one active toast. It is injected into screens
// instead of living as an ambient singleton.
type Center struct {
	mu       sync.Mutex
	duration time.Duration
	current  *Toast

	// now is swappable in tests
	now func() time.Time
}

func NewCenter(duration time.Duration) *Center {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{duration: duration, now: time.Now}
}

// Show displays a toast for the default duration, replacing any active one.
func (c *Center) Show(message string, level Level) Toast {
	return c.ShowFor(message, level, c.duration)
}

// ShowFor displays a toast with an explicit duration.
func (c *Center) ShowFor(message string, level Level, d time.Duration) Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := Toast{Message: message, Level: level, ExpiresAt: c.now().Add(d)}
	c.current = &t
	return t
}

// Active returns the visible toast, or nil once it has expired.
func (c *Center) Active() *Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil || !c.now().Before(c.current.ExpiresAt) {
		c.current = nil
		return nil
	}
	out := *c.current
	return &out
}
