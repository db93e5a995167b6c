package measure

import (
	"testing"

	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

func newNode(t *testing.T, doc *surface.Document, id string, size graphics.Size) *surface.Node {
	t.Helper()
	n := doc.CreateElement(id)
	n.SetNaturalSize(size)
	if err := doc.Append(n); err != nil {
		t.Fatalf("Append: %v", err)
	}
	return n
}

func TestNaturalSize_Visible(t *testing.T) {
	doc := surface.NewDocument(graphics.Size{Width: 800, Height: 600})
	n := newNode(t, doc, "tip", graphics.Size{Width: 80, Height: 30})

	got := New(doc).NaturalSize(n)
	if got.Width != 80 || got.Height != 30 {
		t.Fatalf("NaturalSize = %+v, want 80x30", got)
	}
}

func TestNaturalSize_DisplayNoneRoundTrip(t *testing.T) {
	doc := surface.NewDocument(graphics.Size{Width: 800, Height: 600})
	n := newNode(t, doc, "tip", graphics.Size{Width: 80, Height: 30})
	n.SetStyle(surface.StyleDisplay, "none")
	n.SetStyle(surface.StyleLeft, "12px")
	before := n.Styles()

	got := New(doc).NaturalSize(n)
	if got.Width != 80 || got.Height != 30 {
		t.Fatalf("NaturalSize = %+v, want 80x30", got)
	}

	after := n.Styles()
	if len(after) != len(before) {
		t.Fatalf("style set changed: before %v after %v", before, after)
	}
	for k, v := range before {
		if after[k] != v {
			t.Errorf("style %s = %q after measure, want %q", k, after[k], v)
		}
	}
	if n.Style(surface.StyleDisplay) != "none" {
		t.Errorf("display = %q, want none", n.Style(surface.StyleDisplay))
	}
	if n.Style(surface.StylePosition) != "" {
		t.Errorf("position should be restored to unset, got %q", n.Style(surface.StylePosition))
	}
}

func TestNaturalSize_VisibilityHidden(t *testing.T) {
	doc := surface.NewDocument(graphics.Size{Width: 800, Height: 600})
	n := newNode(t, doc, "menu", graphics.Size{Width: 120, Height: 200})
	n.SetStyle(surface.StyleVisibility, "hidden")

	got := New(doc).NaturalSize(n)
	if got.Height != 200 {
		t.Fatalf("height = %v, want 200", got.Height)
	}
	if n.Style(surface.StyleVisibility) != "hidden" {
		t.Errorf("visibility not restored: %q", n.Style(surface.StyleVisibility))
	}
}

func TestNaturalSize_Detached(t *testing.T) {
	doc := surface.NewDocument(graphics.Size{Width: 800, Height: 600})
	n := doc.CreateElement("loose")
	n.SetNaturalSize(graphics.Size{Width: 10, Height: 10})

	if got := New(doc).NaturalSize(n); !got.IsZero() {
		t.Fatalf("detached NaturalSize = %+v, want zero", got)
	}
}

type panicReader struct{ surface.GeometryReader }

func (panicReader) Rect(surface.Element) graphics.Rect { panic("no layout") }

func TestNaturalSize_RestoresOnPanic(t *testing.T) {
	rec := &errors.Recorder{}
	errors.SetHandler(rec)
	defer errors.SetHandler(nil)

	doc := surface.NewDocument(graphics.Size{Width: 800, Height: 600})
	n := newNode(t, doc, "tip", graphics.Size{Width: 80, Height: 30})
	n.SetStyle(surface.StyleDisplay, "none")

	m := &Measurer{Reader: panicReader{doc}}
	if got := m.NaturalSize(n); !got.IsZero() {
		t.Fatalf("NaturalSize after panic = %+v, want zero", got)
	}
	if n.Style(surface.StyleDisplay) != "none" {
		t.Errorf("display = %q after panic, want none", n.Style(surface.StyleDisplay))
	}
	if n.Style(surface.StyleLeft) != "" {
		t.Errorf("left = %q after panic, want unset", n.Style(surface.StyleLeft))
	}
	if len(rec.Panics) != 1 {
		t.Errorf("expected panic to be reported, got %d", len(rec.Panics))
	}
}
