// Package measure reads the natural size of elements that may currently be
// hidden.
package measure

import (
	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

// offscreen is far enough outside any viewport that a forced-visible element
// never flashes on screen while it is measured.
const offscreen = "-10000px"

// overrides is the measurable-but-invisible state applied to hidden
// elements. Order matters only for readability; each entry is restored
// independently.
var overrides = []struct{ name, value string }{
	{surface.StyleDisplay, "block"},
	{surface.StyleVisibility, "visible"},
	{surface.StylePosition, "fixed"},
	{surface.StyleLeft, offscreen},
	{surface.StyleTop, offscreen},
	{surface.StylePointerEvents, "none"},
	{surface.StyleTransition, "none"},
}

// Measurer obtains the natural size of elements.
type Measurer struct {
	Reader surface.GeometryReader
}

// New returns a Measurer reading geometry from r.
func New(r surface.GeometryReader) *Measurer {
	return &Measurer{Reader: r}
}

// NaturalSize returns el's width and height.
//
// Hidden elements are forced into an offscreen, fixed, non-interactive
// state for the duration of the read; every overridden property is restored
// to its exact prior value, including when the reader panics. Detached
// elements measure {0,0}.
func (m *Measurer) NaturalSize(el surface.Element) (size graphics.Size) {
	if el == nil || !el.Attached() || m.Reader == nil {
		return graphics.Size{}
	}
	if !surface.IsHidden(el) {
		return m.read(el)
	}

	saved := make([]string, len(overrides))
	for i, o := range overrides {
		saved[i] = el.Style(o.name)
	}
	defer func() {
		for i, o := range overrides {
			el.SetStyle(o.name, saved[i])
		}
	}()
	for _, o := range overrides {
		el.SetStyle(o.name, o.value)
	}
	return m.read(el)
}

// read recovers reader panics so the caller's deferred restore still runs
// and the caller gets a zero size instead of a crash.
func (m *Measurer) read(el surface.Element) (size graphics.Size) {
	defer errors.Recover("measure.NaturalSize", func(any) {
		size = graphics.Size{}
	})
	return m.Reader.Rect(el).Size()
}
