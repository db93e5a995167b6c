// Package surface describes the presentation layer the layout engine reads
// geometry from and writes positions into.
//
// The engine never owns the presentation layer. It reads rectangles through a
// GeometryReader, asks an Orderer for document order, and writes px-valued
// style properties back onto Elements. Document is an in-memory host that
// implements all three and is what tests and the terminal host use.
package surface

import (
	"strconv"
	"strings"

	"github.com/go-drift/floatdock/pkg/graphics"
)

// Style property names the engine reads or writes.
const (
	StyleDisplay       = "display"
	StyleVisibility    = "visibility"
	StylePosition      = "position"
	StyleLeft          = "left"
	StyleTop           = "top"
	StyleWidth         = "width"
	StyleHeight        = "height"
	StylePointerEvents = "pointer-events"
	StyleTransition    = "transition"
)

// Element is a node in the presentation layer.
type Element interface {
	// ID returns a stable identifier used in diagnostics.
	ID() string
	// Attached reports whether the element is part of a document.
	Attached() bool
	// Style returns the inline value of a style property, or "" when unset.
	Style(name string) string
	// SetStyle sets a style property. An empty value removes it.
	SetStyle(name, value string)
}

// GeometryReader reads current on-screen rectangles.
type GeometryReader interface {
	// Rect returns the element's rectangle in viewport coordinates.
	// Detached or undisplayed elements report a zero rect.
	Rect(el Element) graphics.Rect
	// Viewport returns the current viewport size.
	Viewport() graphics.Size
}

// Orderer reports document order.
type Orderer interface {
	// Index returns the element's position in document order, or -1 when
	// the element is not attached.
	Index(el Element) int
}

// Host is the full presentation layer contract.
type Host interface {
	GeometryReader
	Orderer
}

// IsHidden reports whether el is laid out with a zero-revealing style.
func IsHidden(el Element) bool {
	return el.Style(StyleDisplay) == "none" || el.Style(StyleVisibility) == "hidden"
}

// Px formats v as a CSS pixel length.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParsePx parses a pixel length such as "12px" or "12". The second result
// is false for empty or malformed values.
func ParsePx(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetPx writes a pixel-valued style property.
func SetPx(el Element, name string, v float64) {
	el.SetStyle(name, Px(v))
}

// SetRect writes left/top/width/height for r.
func SetRect(el Element, r graphics.Rect) {
	SetPx(el, StyleLeft, r.Left)
	SetPx(el, StyleTop, r.Top)
	SetPx(el, StyleWidth, r.Width())
	SetPx(el, StyleHeight, r.Height())
}

// SetPosition writes left/top for o.
func SetPosition(el Element, o graphics.Offset) {
	SetPx(el, StyleLeft, o.X)
	SetPx(el, StyleTop, o.Y)
}
