// Package core holds host-side helpers shared by the drivers.
package core

import "time"

const defaultTPS = 15

// FixedStep decouples the frame rate of a driver loop from the number of
// generations advanced per second.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first call to ShouldStep always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to the default.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = defaultTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after stalls instead of replaying it in a burst.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
