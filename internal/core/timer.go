package core

import (
	"sync"
	"time"
)

// Ticker calls a function once per fixed interval on its own goroutine.
// Stop never blocks, so it may be called while the callback is waiting on a
// lock held by the caller; callbacks that must not run after Stop have to
// guard themselves.
type Ticker struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker constructs a stopped Ticker. Non-positive intervals default to one
// second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Running reports whether the ticker goroutine is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Start begins calling fn every interval. A running ticker is stopped first,
// so the first tick always lands one full interval after Start.
func (t *Ticker) Start(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
	}
	stop := make(chan struct{})
	t.stop = stop
	go run(t.interval, stop, fn)
}

// Stop halts the ticker. Calling Stop on a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func run(interval time.Duration, stop <-chan struct{}, fn func()) {
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			select {
			case <-stop:
				return
			default:
			}
			fn()
		}
	}
}
