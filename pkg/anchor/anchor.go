// Package anchor places floating elements (tooltips, context menus, popovers)
// next to a reference element inside the viewport.
//
// An anchor names a point on a rectangle: a primary edge plus a position
// along that edge, written "edge-sub" (e.g. "bottom-right", "left-center").
// The reference anchor picks the point on the reference rectangle; the
// target anchor picks which point of the floating element is pinned there.
package anchor

import "strings"

// Edge is one side of a rectangle, or its midline.
type Edge int

const (
	Center Edge = iota
	Left
	Right
	Top
	Bottom
)

func (e Edge) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "center"
	}
}

func (e Edge) horizontal() bool { return e == Left || e == Right }
func (e Edge) vertical() bool   { return e == Top || e == Bottom }

func parseEdge(s string) Edge {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left
	case "right":
		return Right
	case "top":
		return Top
	case "bottom":
		return Bottom
	default:
		return Center
	}
}

// Anchor is a point on a rectangle expressed by its horizontal and vertical
// components. H is Left, Right or Center; V is Top, Bottom or Center.
type Anchor struct {
	H, V Edge
	// PrimaryVertical is true when the vertical edge was named first
	// ("top-left"), false for "left-top".
	PrimaryVertical bool
}

// Common anchors.
var (
	TopLeft      = Anchor{H: Left, V: Top, PrimaryVertical: true}
	TopCenter    = Anchor{H: Center, V: Top, PrimaryVertical: true}
	TopRight     = Anchor{H: Right, V: Top, PrimaryVertical: true}
	BottomLeft   = Anchor{H: Left, V: Bottom, PrimaryVertical: true}
	BottomCenter = Anchor{H: Center, V: Bottom, PrimaryVertical: true}
	BottomRight  = Anchor{H: Right, V: Bottom, PrimaryVertical: true}
	LeftTop      = Anchor{H: Left, V: Top}
	LeftCenter   = Anchor{H: Left, V: Center}
	LeftBottom   = Anchor{H: Left, V: Bottom}
	RightTop     = Anchor{H: Right, V: Top}
	RightCenter  = Anchor{H: Right, V: Center}
	RightBottom  = Anchor{H: Right, V: Bottom}
)

// Parse reads an anchor such as "bottom-right". Tokens outside the
// vocabulary, and a missing sub-position, resolve to center on their axis.
// Parse never fails.
func Parse(s string) Anchor {
	primary, sub, _ := strings.Cut(s, "-")
	p, q := parseEdge(primary), parseEdge(sub)

	var a Anchor
	switch {
	case p.vertical():
		a = Anchor{V: p, PrimaryVertical: true}
		if q.horizontal() {
			a.H = q
		}
	case p.horizontal():
		a = Anchor{H: p}
		if q.vertical() {
			a.V = q
		}
	default:
		// Primary edge unrecognized: keep whatever the sub-position names.
		switch {
		case q.horizontal():
			a = Anchor{H: q, PrimaryVertical: true}
		case q.vertical():
			a = Anchor{V: q}
		}
	}
	return a
}

// Primary returns the edge named first.
func (a Anchor) Primary() Edge {
	if a.PrimaryVertical {
		return a.V
	}
	return a.H
}

// Sub returns the position along the primary edge.
func (a Anchor) Sub() Edge {
	if a.PrimaryVertical {
		return a.H
	}
	return a.V
}

func (a Anchor) String() string {
	return a.Primary().String() + "-" + a.Sub().String()
}

// MirrorHorizontal swaps left and right.
func (a Anchor) MirrorHorizontal() Anchor {
	switch a.H {
	case Left:
		a.H = Right
	case Right:
		a.H = Left
	}
	return a
}

// MirrorVertical swaps top and bottom.
func (a Anchor) MirrorVertical() Anchor {
	switch a.V {
	case Top:
		a.V = Bottom
	case Bottom:
		a.V = Top
	}
	return a
}
