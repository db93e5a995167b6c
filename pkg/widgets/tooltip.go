package widgets

import (
	"github.com/go-drift/floatdock/pkg/anchor"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/surface"
)

// Tooltip shows text next to a reference element. All tooltips share the
// tooltip layer, so showing one replaces any other.
type Tooltip struct {
	Engine *engine.Engine
	Layers *Layers
	// RefAnchor and TargetAnchor default to "bottom-center" and
	// "top-center".
	RefAnchor    string
	TargetAnchor string
	// Gap is the distance kept from the reference on both axes.
	Gap float64

	shown     bool
	placement anchor.Placement
}

// Show places the tooltip next to ref with text and reveals it.
func (t *Tooltip) Show(ref surface.Element, text string) anchor.Placement {
	el := t.Layers.Layer(LayerTooltip)
	el.SetText(text)
	refAnchor, targetAnchor := t.RefAnchor, t.TargetAnchor
	if refAnchor == "" {
		refAnchor = "bottom-center"
	}
	if targetAnchor == "" {
		targetAnchor = "top-center"
	}
	t.placement = t.Engine.ResolvePlacement(ref, el, refAnchor, targetAnchor,
		engine.WithUniformOffset(t.Gap))
	surface.SetPosition(el, t.placement.Offset())
	show(el)
	t.shown = true
	return t.placement
}

// Arrow returns the tooltip edge facing the reference for the last Show.
func (t *Tooltip) Arrow() anchor.Edge { return t.placement.Arrow() }

// Visible reports whether the tooltip is showing.
func (t *Tooltip) Visible() bool { return t.shown }

// Hide hides the tooltip layer.
func (t *Tooltip) Hide() {
	if !t.shown {
		return
	}
	hide(t.Layers.Layer(LayerTooltip))
	t.shown = false
}
