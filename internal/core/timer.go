package core

import "time"

// FixedStep helps advance at a steady rate measured in steps per second.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first call to ShouldStep fires immediately.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate; non-positive rates fall back to one step
// per second.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 1
	}
	f.step = time.Duration(float64(time.Second) / rate)
}

// Restart discards accumulated time so the next step is a full period away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether another step is due.
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
		return true
	}
	return false
}
