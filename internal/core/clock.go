package core

import "time"

// Clock reports simulation time elapsed since the run started.
// Cooldowns are measured against it, never against tick counts.
type Clock interface {
	Now() time.Duration
}

// StepClock is a Clock advanced explicitly by the host update loop.
type StepClock struct {
	now time.Duration
}

// NewStepClock creates a clock at time zero.
func NewStepClock() *StepClock {
	return &StepClock{}
}

// Now returns the current simulation time.
func (c *StepClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by dt. Negative steps are ignored.
func (c *StepClock) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}
}

// Reset rewinds the clock to zero.
func (c *StepClock) Reset() {
	c.now = 0
}
