package utils

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid repeated triggers into a single callback fired
// after a quiet period. Every Trigger restarts the timer, so only the final
// pending value is delivered.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(value string)
}

// NewDebouncer creates a Debouncer that invokes fn with the most recent
// triggered value once delay has elapsed without further triggers.
func NewDebouncer(delay time.Duration, fn func(value string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn(value), cancelling any previously pending invocation.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fn(value)
	})
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
