package core

import "time"

// DefaultDelay is the pause between scheduled growth ticks.
const DefaultDelay = 100 * time.Millisecond

// FixedStep decides when a frame-driven loop should run the next tick so that
// ticks are spaced by a fixed delay regardless of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing every delay. The first call to
// ShouldStep fires immediately.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetDelay(delay)
	fs.accumulator = fs.step
	return fs
}

// SetDelay changes the spacing between ticks. Non-positive values fall back to
// DefaultDelay.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	f.step = delay
}

// Delay reports the configured spacing.
func (f *FixedStep) Delay() time.Duration { return f.step }

// Restart arms the scheduler so the next ShouldStep fires at once.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			// Drop backlog after a stall instead of bursting ticks.
			f.accumulator = 0
		}
		return true
	}
	return false
}
