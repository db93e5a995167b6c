// Package engine wires the measurer, the anchor resolver, the docking
// registry and the reflow scheduler into one entry point.
//
// Widget code talks to an Engine instead of the individual packages:
//
//	doc := surface.NewDocument(graphics.Size{Width: 1280, Height: 800})
//	eng := engine.New(engine.Options{Host: doc})
//	eng.RegisterDocked(toolbar, "top")
//	p := eng.ResolvePlacement(button, tooltip, "bottom-center", "top-center",
//		engine.WithUniformOffset(8))
//
// Placement is synchronous. Docking changes are batched into one reflow per
// frame by the scheduler.
package engine

import (
	"context"
	"sync"

	"github.com/go-drift/floatdock/pkg/anchor"
	"github.com/go-drift/floatdock/pkg/canvas"
	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/measure"
	"github.com/go-drift/floatdock/pkg/reflow"
	"github.com/go-drift/floatdock/pkg/surface"
)

// DefaultMargin is the viewport inset used when Options.Margin is zero.
const DefaultMargin = 4

// DefaultViewport is the viewport of the document created by Default.
var DefaultViewport = graphics.Size{Width: 1280, Height: 800}

// Resizer is implemented by hosts whose viewport the engine can change.
type Resizer interface {
	Resize(viewport graphics.Size)
}

// Runner is implemented by frame sources that deliver frames from a loop.
type Runner interface {
	Run(ctx context.Context) error
}

// Options configures New.
type Options struct {
	// Host is the presentation layer. Required.
	Host surface.Host
	// Frames delivers reflow passes. Nil uses a ticker frame source.
	Frames reflow.FrameSource
	// Margin is the default viewport inset for placements. Zero uses
	// DefaultMargin; a negative value means no inset.
	Margin float64
}

// Engine is the floating-layout entry point.
type Engine struct {
	host      surface.Host
	frames    reflow.FrameSource
	margin    float64
	measurer  *measure.Measurer
	resolver  *anchor.Resolver
	registry  *dock.Registry
	acc       *dock.Accumulator
	scheduler *reflow.Scheduler

	// selfDriven is set when the frame loop is already running on a
	// goroutine the engine owns.
	selfDriven bool

	debugMu sync.Mutex
	debug   *debugServer
}

// New creates an engine over opts.Host.
func New(opts Options) *Engine {
	if opts.Host == nil {
		panic("engine: Options.Host is required")
	}
	frames := opts.Frames
	if frames == nil {
		frames = reflow.NewTickerFrames(0)
	}
	margin := opts.Margin
	switch {
	case margin == 0:
		margin = DefaultMargin
	case margin < 0:
		margin = 0
	}
	reg := dock.NewRegistry()
	m := measure.New(opts.Host)
	return &Engine{
		host:      opts.Host,
		frames:    frames,
		margin:    margin,
		measurer:  m,
		resolver:  &anchor.Resolver{Reader: opts.Host, Measurer: m},
		registry:  reg,
		acc:       dock.NewAccumulator(reg, opts.Host),
		scheduler: reflow.New(reg, opts.Host, frames),
	}
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
	defaultDoc    *surface.Document
)

// Default returns the process-wide engine, creating it on first use over an
// in-memory document sized DefaultViewport. Its ticker frame loop starts
// with it and lives as long as the process, so reflow requests made through
// it are delivered without calling Run.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultDoc = surface.NewDocument(DefaultViewport)
		frames := reflow.NewTickerFrames(0)
		defaultEngine = New(Options{Host: defaultDoc, Frames: frames})
		defaultEngine.selfDriven = true
		go frames.Run(context.Background())
	})
	return defaultEngine
}

// DefaultDocument returns the document behind Default.
func DefaultDocument() *surface.Document {
	Default()
	return defaultDoc
}

// Host returns the presentation layer.
func (e *Engine) Host() surface.Host { return e.host }

// Registry returns the docking registry.
func (e *Engine) Registry() *dock.Registry { return e.registry }

// Scheduler returns the reflow scheduler.
func (e *Engine) Scheduler() *reflow.Scheduler { return e.scheduler }

// Resolver returns the anchor resolver.
func (e *Engine) Resolver() *anchor.Resolver { return e.resolver }

// Margin returns the default placement inset.
func (e *Engine) Margin() float64 { return e.margin }

// Measure returns el's natural size, even when it is hidden.
func (e *Engine) Measure(el surface.Element) graphics.Size {
	return e.measurer.NaturalSize(el)
}

// PlaceOption adjusts a single placement.
type PlaceOption func(*placeOptions)

type placeOptions struct {
	offset graphics.Offset
	margin float64
}

// WithOffset shifts the target by o before flipping and clamping.
func WithOffset(o graphics.Offset) PlaceOption {
	return func(p *placeOptions) { p.offset = o }
}

// WithUniformOffset is WithOffset with the same value on both axes.
func WithUniformOffset(v float64) PlaceOption {
	return WithOffset(graphics.Uniform(v))
}

// WithMargin overrides the viewport inset for one placement.
func WithMargin(m float64) PlaceOption {
	return func(p *placeOptions) { p.margin = m }
}

func (e *Engine) placeOptions(opts []PlaceOption) placeOptions {
	p := placeOptions{margin: e.margin}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// ResolvePlacement computes where target goes next to ref. It does not
// write anything; callers apply the result with surface.SetPosition.
func (e *Engine) ResolvePlacement(ref, target surface.Element, refAnchor, targetAnchor string, opts ...PlaceOption) anchor.Placement {
	p := e.placeOptions(opts)
	return e.resolver.Resolve(ref, target, refAnchor, targetAnchor, p.offset, p.margin)
}

// ResolveAt places target against a rectangle instead of an element.
func (e *Engine) ResolveAt(ref graphics.Rect, target surface.Element, refAnchor, targetAnchor string, opts ...PlaceOption) anchor.Placement {
	p := e.placeOptions(opts)
	return e.resolver.ResolveRect(ref, target, refAnchor, targetAnchor, p.offset, p.margin)
}

// RegisterDocked docks el as a toolbar on side, one of "top", "bottom",
// "left" or "right". Any other side is rejected and nothing is registered.
func (e *Engine) RegisterDocked(el surface.Element, side string) error {
	return e.registry.RegisterSide(el, side)
}

// UnregisterDocked removes el from docking.
func (e *Engine) UnregisterDocked(el surface.Element) {
	e.registry.Unregister(el)
}

// RequestReflow schedules a reflow pass on the next frame.
func (e *Engine) RequestReflow() {
	e.scheduler.RequestReflow()
}

// TotalOffset is the space docked chrome takes on side.
func (e *Engine) TotalOffset(side dock.Side) float64 {
	return e.acc.TotalOffset(side)
}

// OffsetBefore is the space docked chrome before el takes on side.
func (e *Engine) OffsetBefore(side dock.Side, el surface.Element) float64 {
	return e.acc.OffsetBefore(side, el)
}

// Resize changes the viewport, when the host allows it, and schedules a
// reflow.
func (e *Engine) Resize(viewport graphics.Size) {
	if r, ok := e.host.(Resizer); ok {
		r.Resize(viewport)
	}
	e.scheduler.RequestReflow()
}

// AttachCanvas sets the drawing surface kept sized to the workspace.
func (e *Engine) AttachCanvas(c *canvas.Surface) {
	e.scheduler.Attach(c)
}

// Layout computes the current layout without writing it.
func (e *Engine) Layout() dock.Layout {
	return dock.Compute(dock.Snapshot(e.registry, e.host))
}

// Run delivers frames until ctx is done when the frame source has its own
// loop. Other frame sources, and the Default engine whose loop is already
// running, return immediately.
func (e *Engine) Run(ctx context.Context) error {
	if e.selfDriven {
		return nil
	}
	if r, ok := e.frames.(Runner); ok {
		return r.Run(ctx)
	}
	return nil
}
