package anchor

import "github.com/go-drift/floatdock/pkg/graphics"

// Placement is a resolved floating position.
type Placement struct {
	// X and Y are the target's top-left corner in viewport coordinates.
	X, Y float64
	// RefAnchor and TargetAnchor are the anchors actually used, after any
	// flip. Consumers use them to orient arrows.
	RefAnchor    Anchor
	TargetAnchor Anchor
}

// Offset returns the top-left corner.
func (p Placement) Offset() graphics.Offset {
	return graphics.Offset{X: p.X, Y: p.Y}
}

// Rect returns the target rectangle for a target of the given size.
func (p Placement) Rect(size graphics.Size) graphics.Rect {
	return graphics.RectFromLTWH(p.X, p.Y, size.Width, size.Height)
}

// Arrow returns the target edge that faces the reference.
func (p Placement) Arrow() Edge {
	switch p.RefAnchor.Primary() {
	case Bottom:
		return Top
	case Top:
		return Bottom
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Center
	}
}

// Place computes where a target of size target goes relative to ref.
//
// Each axis is flipped independently: when the reference anchor sits on the
// right (left) and the space between the reference and that viewport edge
// is less than the target width plus margin, both anchors are mirrored and
// offset.X is negated. The vertical axis follows the same rule with top and
// bottom. The result is then clamped so the whole target stays within
// margin of every viewport edge; impossible placements are pinned to the
// leading margin instead of failing.
func Place(ref graphics.Rect, target, viewport graphics.Size, refAnchor, targetAnchor Anchor, offset graphics.Offset, margin float64) Placement {
	spaceLeft := ref.Left
	spaceRight := viewport.Width - ref.Right
	spaceAbove := ref.Top
	spaceBelow := viewport.Height - ref.Bottom

	needW := target.Width + margin
	if (refAnchor.H == Right && spaceRight < needW) || (refAnchor.H == Left && spaceLeft < needW) {
		refAnchor = refAnchor.MirrorHorizontal()
		targetAnchor = targetAnchor.MirrorHorizontal()
		offset.X = -offset.X
	}
	needH := target.Height + margin
	if (refAnchor.V == Bottom && spaceBelow < needH) || (refAnchor.V == Top && spaceAbove < needH) {
		refAnchor = refAnchor.MirrorVertical()
		targetAnchor = targetAnchor.MirrorVertical()
		offset.Y = -offset.Y
	}

	x := pointOn(refAnchor.H, ref.Left, ref.Right)
	y := pointOn(refAnchor.V, ref.Top, ref.Bottom)

	x -= pull(targetAnchor.H, target.Width)
	y -= pull(targetAnchor.V, target.Height)

	x += offset.X
	y += offset.Y

	x = graphics.Clamp(x, margin, viewport.Width-target.Width-margin)
	y = graphics.Clamp(y, margin, viewport.Height-target.Height-margin)

	return Placement{X: x, Y: y, RefAnchor: refAnchor, TargetAnchor: targetAnchor}
}

// pointOn returns the coordinate named by e on the span [lo, hi].
func pointOn(e Edge, lo, hi float64) float64 {
	switch e {
	case Left, Top:
		return lo
	case Right, Bottom:
		return hi
	default:
		return (lo + hi) / 2
	}
}

// pull is how far the target's own anchor moves its origin back.
func pull(e Edge, extent float64) float64 {
	switch e {
	case Right, Bottom:
		return extent
	case Center:
		return extent / 2
	default:
		return 0
	}
}
