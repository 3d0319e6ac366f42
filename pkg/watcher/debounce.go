package watcher

import (
	"sync"
	"time"
)

// DebounceQueue coalesces bursts of photo events per album directory so a
// republish only starts once writes have settled.
type DebounceQueue struct {
	entries  map[string]*debounceEntry
	duration time.Duration
	mu       sync.Mutex
}

type debounceEntry struct {
	lastEvent time.Time
	timer     *time.Timer
}

// NewDebounceQueue creates a DebounceQueue with the given quiet period.
func NewDebounceQueue(duration time.Duration) *DebounceQueue {
	return &DebounceQueue{
		entries:  make(map[string]*debounceEntry),
		duration: duration,
	}
}

// Add schedules callback for key after the quiet period, resetting the timer
// if the key is already pending.
func (d *DebounceQueue) Add(key string, callback func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if entry, exists := d.entries[key]; exists {
		entry.timer.Stop()
		delete(d.entries, key)
	}

	timer := time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		delete(d.entries, key)
		d.mu.Unlock()

		callback(key)
	})

	d.entries[key] = &debounceEntry{
		lastEvent: time.Now(),
		timer:     timer,
	}
}

// Stop cancels all pending timers and clears the queue.
func (d *DebounceQueue) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, entry := range d.entries {
		entry.timer.Stop()
	}
	d.entries = make(map[string]*debounceEntry)
}

// Pending returns the number of album directories awaiting their quiet period.
func (d *DebounceQueue) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}
