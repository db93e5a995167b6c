package anchor

import (
	"testing"

	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

func TestResolver_MeasuresHiddenTarget(t *testing.T) {
	doc := surface.NewDocument(graphics.Size{Width: 1000, Height: 800})

	ref := doc.CreateElement("button")
	ref.SetNaturalSize(graphics.Size{Width: 50, Height: 20})
	surface.SetPosition(ref, graphics.Offset{X: 900, Y: 10})
	_ = doc.Append(ref)

	tip := doc.CreateElement("tooltip")
	tip.SetNaturalSize(graphics.Size{Width: 80, Height: 30})
	tip.SetStyle(surface.StyleDisplay, "none")
	_ = doc.Append(tip)

	p := NewResolver(doc).Resolve(ref, tip, "right-bottom", "top-left", graphics.Offset{}, 0)

	if p.X != 820 || p.Y != 30 {
		t.Fatalf("position = (%v,%v), want (820,30)", p.X, p.Y)
	}
	if tip.Style(surface.StyleDisplay) != "none" {
		t.Errorf("resolve must not leave the target displayed")
	}
}

func TestResolver_DetachedTargetStillOnScreen(t *testing.T) {
	doc := surface.NewDocument(graphics.Size{Width: 1000, Height: 800})
	ref := doc.CreateElement("button")
	ref.SetNaturalSize(graphics.Size{Width: 50, Height: 20})
	_ = doc.Append(ref)
	loose := doc.CreateElement("loose")

	p := NewResolver(doc).Resolve(ref, loose, "bottom-center", "top-center", graphics.Uniform(-50), 4)

	if p.X != 4 || p.Y != 4 {
		t.Fatalf("position = (%v,%v), want clamped (4,4)", p.X, p.Y)
	}
}

func TestResolver_ResolveRectAtPointer(t *testing.T) {
	doc := surface.NewDocument(graphics.Size{Width: 1000, Height: 800})
	menu := doc.CreateElement("menu")
	menu.SetNaturalSize(graphics.Size{Width: 150, Height: 200})
	_ = doc.Append(menu)

	pointer := graphics.RectFromLTWH(950, 700, 0, 0)
	p := NewResolver(doc).ResolveRect(pointer, menu, "bottom-right", "top-left", graphics.Offset{}, 0)

	// Not enough room right or below: opens up and to the left.
	if p.X != 800 || p.Y != 500 {
		t.Fatalf("position = (%v,%v), want (800,500)", p.X, p.Y)
	}
}
