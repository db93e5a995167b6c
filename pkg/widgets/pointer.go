package widgets

import (
	"math"

	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

// Drag moves an element with the pointer. Every Move writes left and top
// immediately.
type Drag struct {
	Reader surface.GeometryReader
	El     surface.Element

	active bool
	start  graphics.Offset
	origin graphics.Offset
}

// Begin starts a drag at pointer p.
func (d *Drag) Begin(p graphics.Offset) {
	d.active = true
	d.start = p
	d.origin = d.Reader.Rect(d.El).TopLeft()
}

// Move follows the pointer. Ignored unless a drag is active.
func (d *Drag) Move(p graphics.Offset) {
	if !d.active {
		return
	}
	surface.SetPosition(d.El, graphics.Offset{
		X: d.origin.X + p.X - d.start.X,
		Y: d.origin.Y + p.Y - d.start.Y,
	})
}

// End finishes the drag.
func (d *Drag) End() { d.active = false }

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// ResizeHandle resizes an element from its bottom-right corner.
type ResizeHandle struct {
	Reader    surface.GeometryReader
	El        surface.Element
	MinWidth  float64
	MinHeight float64

	active bool
	start  graphics.Offset
	size   graphics.Size
}

// Begin starts a resize at pointer p.
func (r *ResizeHandle) Begin(p graphics.Offset) {
	r.active = true
	r.start = p
	r.size = r.Reader.Rect(r.El).Size()
}

// Move writes the new width and height, never below the minimums.
func (r *ResizeHandle) Move(p graphics.Offset) {
	if !r.active {
		return
	}
	w := math.Max(r.MinWidth, r.size.Width+p.X-r.start.X)
	h := math.Max(r.MinHeight, r.size.Height+p.Y-r.start.Y)
	surface.SetPx(r.El, surface.StyleWidth, w)
	surface.SetPx(r.El, surface.StyleHeight, h)
}

// End finishes the resize.
func (r *ResizeHandle) End() { r.active = false }
