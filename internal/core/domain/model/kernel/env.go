package kernel

import "time"

// Clock reports the current instant. Aggregates read time only through a Clock
// so that timestamps and date rules can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the default Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Env carries the capabilities an aggregate needs from outside the domain:
// a clock and an identifier generator.
type Env struct {
	Clock Clock
	IDs   IDGenerator
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithClock sets the clock used for timestamps and date checks.
func WithClock(clock Clock) EnvOption {
	return func(e *Env) {
		if clock != nil {
			e.Clock = clock
		}
	}
}

// WithIDGenerator sets the generator used for new identifiers.
func WithIDGenerator(ids IDGenerator) EnvOption {
	return func(e *Env) {
		if ids != nil {
			e.IDs = ids
		}
	}
}

// NewEnv builds an Env from opts on top of the system clock and the
// time-ordered identifier generator.
func NewEnv(opts ...EnvOption) Env {
	env := Env{
		Clock: SystemClock{},
		IDs:   TimeOrderedIDGenerator{},
	}
	for _, opt := range opts {
		opt(&env)
	}
	return env
}

// Today returns the calendar date of the current instant, at midnight in the
// clock's location.
func (e Env) Today() time.Time {
	return DateOf(e.Clock.Now())
}

// DateOf truncates t to midnight of its calendar day in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
