package anchor

import (
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/measure"
	"github.com/go-drift/floatdock/pkg/surface"
)

// Resolver places live elements using current geometry.
type Resolver struct {
	Reader   surface.GeometryReader
	Measurer *measure.Measurer
}

// NewResolver returns a Resolver reading from r.
func NewResolver(r surface.GeometryReader) *Resolver {
	return &Resolver{Reader: r, Measurer: measure.New(r)}
}

// Resolve places target next to ref. The target may be hidden; its natural
// size is measured without disturbing its styles.
func (r *Resolver) Resolve(ref, target surface.Element, refAnchor, targetAnchor string, offset graphics.Offset, margin float64) Placement {
	return r.ResolveRect(r.Reader.Rect(ref), target, refAnchor, targetAnchor, offset, margin)
}

// ResolveRect places target against an arbitrary reference rectangle, such
// as a zero-size rect at the pointer for context menus.
func (r *Resolver) ResolveRect(ref graphics.Rect, target surface.Element, refAnchor, targetAnchor string, offset graphics.Offset, margin float64) Placement {
	size := r.Measurer.NaturalSize(target)
	return Place(ref, size, r.Reader.Viewport(), Parse(refAnchor), Parse(targetAnchor), offset, margin)
}
