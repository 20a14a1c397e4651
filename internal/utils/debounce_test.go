package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerFiresOnceWithLatestValue(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	d := NewDebouncer(50*time.Millisecond, func(v string) {
		mu.Lock()
		calls = append(calls, v)
		mu.Unlock()
	})
	defer d.Stop()

	d.Trigger("m")
	d.Trigger("ma")
	d.Trigger("mar")
	d.Trigger("martillo")

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"martillo"}, calls)
}

func TestDebouncerTriggerRestartsWindow(t *testing.T) {
	var mu sync.Mutex
	fired := 0

	d := NewDebouncer(60*time.Millisecond, func(string) {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer d.Stop()

	d.Trigger("a")
	time.Sleep(30 * time.Millisecond)
	d.Trigger("b") // restarts the window before the first fires

	time.Sleep(40 * time.Millisecond)
	mu.Lock()
	assert.Zero(t, fired)
	mu.Unlock()

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, fired)
	mu.Unlock()
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var mu sync.Mutex
	fired := 0

	d := NewDebouncer(30*time.Millisecond, func(string) {
		mu.Lock()
		fired++
		mu.Unlock()
	})

	d.Trigger("a")
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	assert.Zero(t, fired)
	mu.Unlock()
}
