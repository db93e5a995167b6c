package reflow

import (
	"context"
	"sync"
	"time"
)

// FrameSource schedules a callback for the next display refresh.
type FrameSource interface {
	RequestFrame(callback func())
}

// queue is the callback list shared by the frame sources.
type queue struct {
	mu        sync.Mutex
	callbacks []func()
}

func (q *queue) push(cb func()) {
	if cb == nil {
		return
	}
	q.mu.Lock()
	q.callbacks = append(q.callbacks, cb)
	q.mu.Unlock()
}

// drain takes the current callbacks. Callbacks requested while they run
// land in the next frame.
func (q *queue) drain() []func() {
	q.mu.Lock()
	cbs := q.callbacks
	q.callbacks = nil
	q.mu.Unlock()
	return cbs
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.callbacks)
}

// ManualFrames runs frame callbacks only when Flush is called.
// Tests and synchronous tools use it to step frames deterministically.
type ManualFrames struct {
	q queue
}

// RequestFrame queues callback for the next Flush.
func (f *ManualFrames) RequestFrame(callback func()) { f.q.push(callback) }

// Pending returns the number of queued callbacks.
func (f *ManualFrames) Pending() int { return f.q.len() }

// Flush runs one frame and returns how many callbacks ran.
func (f *ManualFrames) Flush() int {
	cbs := f.q.drain()
	for _, cb := range cbs {
		cb()
	}
	return len(cbs)
}

// DefaultFrameInterval is roughly one 60 Hz refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// TickerFrames runs frame callbacks on a fixed interval from Run's goroutine.
type TickerFrames struct {
	Interval time.Duration
	q        queue
	wake     chan struct{}
	once     sync.Once
}

// NewTickerFrames returns a ticker frame source. A zero interval uses
// DefaultFrameInterval.
func NewTickerFrames(interval time.Duration) *TickerFrames {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerFrames{Interval: interval}
}

func (f *TickerFrames) init() {
	f.once.Do(func() { f.wake = make(chan struct{}, 1) })
}

// RequestFrame queues callback for the next tick. Safe from any goroutine.
func (f *TickerFrames) RequestFrame(callback func()) {
	f.init()
	f.q.push(callback)
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// Run delivers frames until ctx is done. The ticker only runs while
// callbacks are queued, so an idle UI costs nothing.
func (f *TickerFrames) Run(ctx context.Context) error {
	f.init()
	interval := f.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.wake:
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		for _, cb := range f.q.drain() {
			cb()
		}
		if f.q.len() > 0 {
			select {
			case f.wake <- struct{}{}:
			default:
			}
		}
	}
}
