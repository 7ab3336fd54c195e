package timeutil

import "time"

// Clock supplies the current wall-clock time. The classifier and day-key
// derivation take a Clock instead of calling time.Now so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewClock returns a Clock backed by the system clock.
func NewClock() Clock { return realClock{} }

// FixedClock is a Clock frozen at a single instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
