// Package reflow batches layout recomputation to at most one pass per frame.
//
// Anything that changes docked geometry (a viewport resize, toggling a
// toolbar, scaling a panel) calls RequestReflow. The first request in a
// frame asks the FrameSource for a callback; later requests in the same
// frame are absorbed. The pass recomputes offsets from live geometry, writes
// toolbars, then panels, then the workspace, and finally resizes the
// drawing surface attached to the workspace.
package reflow

import (
	"sync"
	"time"

	"github.com/go-drift/floatdock/pkg/canvas"
	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/surface"
)

// Stats counts scheduler activity.
type Stats struct {
	// Requests is the number of RequestReflow calls.
	Requests int
	// Passes is the number of reflow passes that ran.
	Passes int
	// LastPass is when the most recent pass finished.
	LastPass time.Time
	// LastDuration is how long the most recent pass took.
	LastDuration time.Duration
}

// Scheduler coordinates reflow passes.
type Scheduler struct {
	registry *dock.Registry
	host     surface.Host
	frames   FrameSource

	mu       sync.Mutex
	pending  bool
	canvas   *canvas.Surface
	onReflow func(dock.Layout)
	last     dock.Layout
	stats    Stats
}

// New creates a scheduler and subscribes it to registry changes.
func New(reg *dock.Registry, host surface.Host, frames FrameSource) *Scheduler {
	s := &Scheduler{registry: reg, host: host, frames: frames}
	reg.OnChange(s.RequestReflow)
	return s
}

// RequestReflow asks for a pass on the next frame. Calls made before that
// frame runs collapse into the same pass.
func (s *Scheduler) RequestReflow() {
	s.mu.Lock()
	s.stats.Requests++
	if s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()
	s.frames.RequestFrame(s.run)
}

// Pending reports whether a pass is scheduled.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Attach sets the drawing surface resized with the workspace. nil detaches.
func (s *Scheduler) Attach(c *canvas.Surface) {
	s.mu.Lock()
	s.canvas = c
	s.mu.Unlock()
}

// OnReflow sets a callback run after each pass with its layout.
// A later call replaces the earlier callback.
func (s *Scheduler) OnReflow(fn func(dock.Layout)) {
	s.mu.Lock()
	s.onReflow = fn
	s.mu.Unlock()
}

// Layout returns the layout produced by the most recent pass.
func (s *Scheduler) Layout() dock.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Stats returns a copy of the activity counters.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ReflowNow runs a pass immediately, outside the frame cycle. A pass
// already scheduled still runs on its frame.
func (s *Scheduler) ReflowNow() dock.Layout {
	return s.pass()
}

func (s *Scheduler) run() {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
	s.pass()
}

func (s *Scheduler) pass() (l dock.Layout) {
	start := time.Now()
	defer errors.Recover("reflow.pass")

	l = dock.Compute(dock.Snapshot(s.registry, s.host))
	dock.ApplyToolbars(l)
	dock.ApplyPanels(l)
	dock.ApplyWorkspace(l)

	s.mu.Lock()
	c := s.canvas
	s.mu.Unlock()
	if c != nil && l.Workspace.Visible {
		// A surface that does not exist yet is simply skipped.
		_ = c.ResizeTo(l.Workspace.Rect)
	}

	s.mu.Lock()
	s.last = l
	s.stats.Passes++
	s.stats.LastPass = time.Now()
	s.stats.LastDuration = s.stats.LastPass.Sub(start)
	fn := s.onReflow
	s.mu.Unlock()
	if fn != nil {
		fn(l)
	}
	return l
}
