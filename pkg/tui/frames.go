package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/floatdock/pkg/reflow"
)

// FrameMsg is delivered when a requested frame is due.
type FrameMsg time.Time

// TeaFrames is a reflow.FrameSource driven by the bubbletea event loop.
// Requests are queued; Cmd turns them into a single tick, and the model
// calls Flush when the resulting FrameMsg arrives.
type TeaFrames struct {
	Interval time.Duration

	mu        sync.Mutex
	callbacks []func()
	ticking   bool
}

var _ reflow.FrameSource = (*TeaFrames)(nil)

// RequestFrame queues callback for the next frame.
func (f *TeaFrames) RequestFrame(callback func()) {
	if callback == nil {
		return
	}
	f.mu.Lock()
	f.callbacks = append(f.callbacks, callback)
	f.mu.Unlock()
}

// Cmd returns a tick for pending callbacks, or nil when nothing is queued
// or a tick is already in flight.
func (f *TeaFrames) Cmd() tea.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.callbacks) == 0 || f.ticking {
		return nil
	}
	f.ticking = true
	interval := f.Interval
	if interval <= 0 {
		interval = reflow.DefaultFrameInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Flush runs the queued callbacks and returns how many ran. Callbacks
// requested while they run wait for the next frame.
func (f *TeaFrames) Flush() int {
	f.mu.Lock()
	cbs := f.callbacks
	f.callbacks = nil
	f.ticking = false
	f.mu.Unlock()
	for _, cb := range cbs {
		cb()
	}
	return len(cbs)
}

// Pending returns the number of queued callbacks.
func (f *TeaFrames) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.callbacks)
}
