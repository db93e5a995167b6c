package surface

import (
	"sync"
	"testing"

	"github.com/go-drift/floatdock/pkg/graphics"
)

func TestDocument_RectFromStylesAndNaturalSize(t *testing.T) {
	doc := NewDocument(graphics.Size{Width: 800, Height: 600})
	n := doc.CreateElement("box")
	n.SetNaturalSize(graphics.Size{Width: 40, Height: 20})
	if err := doc.Append(n); err != nil {
		t.Fatalf("Append: %v", err)
	}
	n.SetStyle(StyleLeft, "10px")
	n.SetStyle(StyleTop, "5px")

	got := doc.Rect(n)
	want := graphics.RectFromLTWH(10, 5, 40, 20)
	if !got.Equal(want) {
		t.Fatalf("Rect = %+v, want %+v", got, want)
	}

	n.SetStyle(StyleWidth, "100px")
	if w := doc.Rect(n).Width(); w != 100 {
		t.Fatalf("explicit width = %v, want 100", w)
	}
}

func TestDocument_DisplayNoneIsZero(t *testing.T) {
	doc := NewDocument(graphics.Size{Width: 800, Height: 600})
	n := doc.CreateElement("hidden")
	n.SetNaturalSize(graphics.Size{Width: 40, Height: 20})
	_ = doc.Append(n)
	n.SetStyle(StyleDisplay, "none")

	if r := doc.Rect(n); !r.IsEmpty() {
		t.Fatalf("expected empty rect for display:none, got %+v", r)
	}
}

func TestDocument_DetachedIsZero(t *testing.T) {
	doc := NewDocument(graphics.Size{Width: 800, Height: 600})
	n := doc.CreateElement("loose")
	n.SetNaturalSize(graphics.Size{Width: 40, Height: 20})
	if r := doc.Rect(n); !r.IsEmpty() {
		t.Fatalf("expected empty rect for detached node, got %+v", r)
	}
	if doc.Index(n) != -1 {
		t.Fatalf("expected index -1 for detached node")
	}
}

func TestDocument_Order(t *testing.T) {
	doc := NewDocument(graphics.Size{Width: 800, Height: 600})
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")
	_ = doc.Append(a)
	_ = doc.Append(c)
	if err := doc.InsertBefore(b, c); err != nil {
		t.Fatalf("InsertBefore: %v", err)
	}

	for i, n := range []*Node{a, b, c} {
		if got := doc.Index(n); got != i {
			t.Errorf("Index(%s) = %d, want %d", n.ID(), got, i)
		}
	}

	doc.Remove(b)
	if b.Attached() {
		t.Error("removed node should be detached")
	}
	if got := doc.Index(c); got != 1 {
		t.Errorf("Index(c) after remove = %d, want 1", got)
	}
	if _, ok := doc.Lookup("b"); ok {
		t.Error("Lookup should not find removed node")
	}
}

func TestDocument_DuplicateID(t *testing.T) {
	doc := NewDocument(graphics.Size{Width: 10, Height: 10})
	_ = doc.Append(doc.CreateElement("x"))
	if err := doc.Append(doc.CreateElement("x")); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestDocument_TextNaturalSize(t *testing.T) {
	doc := NewDocument(graphics.Size{Width: 800, Height: 600})
	n := doc.CreateElement("label")
	n.SetText("Hello\nWorld!")
	_ = doc.Append(n)

	// basicfont 7x13: 6 glyphs wide, two lines.
	got := doc.Rect(n).Size()
	if got.Width != 42 || got.Height != 26 {
		t.Fatalf("text size = %+v, want 42x26", got)
	}
}

func TestSetStyle_EmptyRemoves(t *testing.T) {
	doc := NewDocument(graphics.Size{})
	n := doc.CreateElement("n")
	n.SetStyle(StyleDisplay, "none")
	n.SetStyle(StyleDisplay, "")
	if _, ok := n.Styles()[StyleDisplay]; ok {
		t.Fatal("expected empty value to remove the property")
	}
}

func TestParsePx(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12px", 12, true},
		{"7.5", 7.5, true},
		{" -3px ", -3, true},
		{"", 0, false},
		{"auto", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePx(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePx(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if Px(12.5) != "12.5px" {
		t.Errorf("Px(12.5) = %q", Px(12.5))
	}
}

// Style writes and geometry reads from separate goroutines. Run with -race.
func TestNode_ConcurrentStyleAccess(t *testing.T) {
	doc := NewDocument(graphics.Size{Width: 800, Height: 600})
	n := doc.CreateElement("box")
	if err := doc.Append(n); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			SetPx(n, StyleTop, float64(i))
			n.SetText("x")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = doc.Rect(n)
			_ = n.Styles()
			_ = n.Attached()
		}
	}()
	wg.Wait()

	if got := doc.Rect(n).Top; got != 499 {
		t.Errorf("top = %v, want 499", got)
	}
}
