package anchor

import (
	"math/rand"
	"testing"

	"github.com/go-drift/floatdock/pkg/graphics"
)

var viewport = graphics.Size{Width: 1000, Height: 800}

func TestPlace_FlipsLeftWhenNoRoomOnRight(t *testing.T) {
	ref := graphics.RectFromLTWH(900, 10, 50, 20)
	target := graphics.Size{Width: 80, Height: 30}

	p := Place(ref, target, viewport, Parse("right-bottom"), Parse("top-left"), graphics.Offset{}, 0)

	if p.RefAnchor.String() != "left-bottom" || p.TargetAnchor.String() != "top-right" {
		t.Fatalf("anchors = %s/%s, want left-bottom/top-right", p.RefAnchor, p.TargetAnchor)
	}
	if p.X != 820 || p.Y != 30 {
		t.Fatalf("position = (%v,%v), want (820,30)", p.X, p.Y)
	}
}

func TestPlace_FlushRightReferenceFlips(t *testing.T) {
	ref := graphics.RectFromLTWH(950, 100, 50, 20)
	target := graphics.Size{Width: 80, Height: 30}

	p := Place(ref, target, viewport, RightTop, LeftTop, graphics.Offset{}, 0)

	if p.RefAnchor.String() != "left-top" || p.TargetAnchor.String() != "right-top" {
		t.Fatalf("anchors = %s/%s, want left-top/right-top", p.RefAnchor, p.TargetAnchor)
	}
	if p.X+target.Width != ref.Left {
		t.Fatalf("target right edge = %v, want flush with reference left %v", p.X+target.Width, ref.Left)
	}
	if p.Arrow() != Right {
		t.Errorf("Arrow = %v, want right", p.Arrow())
	}
}

func TestPlace_NoFlipWhenRoom(t *testing.T) {
	ref := graphics.RectFromLTWH(100, 100, 50, 20)
	target := graphics.Size{Width: 80, Height: 30}

	p := Place(ref, target, viewport, RightTop, LeftTop, graphics.Offset{X: 4}, 0)

	if p.RefAnchor != RightTop || p.TargetAnchor != LeftTop {
		t.Fatalf("unexpected flip: %s/%s", p.RefAnchor, p.TargetAnchor)
	}
	if p.X != 154 || p.Y != 100 {
		t.Fatalf("position = (%v,%v), want (154,100)", p.X, p.Y)
	}
}

func TestPlace_FlipNegatesOffset(t *testing.T) {
	ref := graphics.RectFromLTWH(950, 100, 50, 20)
	target := graphics.Size{Width: 80, Height: 30}

	p := Place(ref, target, viewport, RightTop, LeftTop, graphics.Offset{X: 10, Y: 5}, 0)

	if p.X != 860 || p.Y != 105 {
		t.Fatalf("position = (%v,%v), want (860,105)", p.X, p.Y)
	}
}

func TestPlace_FlipsBothAxes(t *testing.T) {
	ref := graphics.RectFromLTWH(950, 780, 50, 20)
	target := graphics.Size{Width: 80, Height: 30}

	p := Place(ref, target, viewport, BottomRight, TopLeft, graphics.Offset{}, 0)

	if p.RefAnchor != TopLeft || p.TargetAnchor != BottomRight {
		t.Fatalf("anchors = %s/%s, want top-left/bottom-right", p.RefAnchor, p.TargetAnchor)
	}
	if p.X != 870 || p.Y != 750 {
		t.Fatalf("position = (%v,%v), want (870,750)", p.X, p.Y)
	}
}

func TestPlace_MarginCountsTowardSpace(t *testing.T) {
	// 90px to the right: enough for 80 but not for 80 + 16.
	ref := graphics.RectFromLTWH(860, 100, 50, 20)
	target := graphics.Size{Width: 80, Height: 30}

	p := Place(ref, target, viewport, RightCenter, LeftCenter, graphics.Offset{}, 16)
	if p.RefAnchor != LeftCenter {
		t.Fatalf("expected flip with margin, got %s", p.RefAnchor)
	}
}

func TestPlace_CenterAnchors(t *testing.T) {
	ref := graphics.RectFromLTWH(400, 400, 100, 40)
	target := graphics.Size{Width: 60, Height: 20}

	p := Place(ref, target, viewport, BottomCenter, TopCenter, graphics.Offset{Y: 6}, 0)

	if p.X != 420 || p.Y != 446 {
		t.Fatalf("position = (%v,%v), want (420,446)", p.X, p.Y)
	}
	if p.Arrow() != Top {
		t.Errorf("Arrow = %v, want top", p.Arrow())
	}
}

func TestPlace_ClampsToMargin(t *testing.T) {
	ref := graphics.RectFromLTWH(0, 0, 10, 10)
	target := graphics.Size{Width: 100, Height: 20}

	p := Place(ref, target, viewport, BottomCenter, TopCenter, graphics.Offset{}, 8)

	if p.X != 8 {
		t.Fatalf("X = %v, want clamped to margin 8", p.X)
	}
}

func TestPlace_OversizedTargetPinnedToMargin(t *testing.T) {
	ref := graphics.RectFromLTWH(500, 400, 10, 10)
	target := graphics.Size{Width: 2000, Height: 2000}

	p := Place(ref, target, viewport, BottomLeft, TopLeft, graphics.Offset{}, 4)

	if p.X != 4 || p.Y != 4 {
		t.Fatalf("position = (%v,%v), want (4,4)", p.X, p.Y)
	}
}

func TestPlace_Idempotent(t *testing.T) {
	ref := graphics.RectFromLTWH(900, 10, 50, 20)
	target := graphics.Size{Width: 80, Height: 30}

	a := Place(ref, target, viewport, RightBottom, TopLeft, graphics.Uniform(3), 2)
	b := Place(ref, target, viewport, RightBottom, TopLeft, graphics.Uniform(3), 2)
	if a != b {
		t.Fatalf("Place not idempotent: %+v vs %+v", a, b)
	}
}

func TestPlace_StaysInsideMargin(t *testing.T) {
	names := []string{
		"top-left", "top-center", "top-right",
		"bottom-left", "bottom-center", "bottom-right",
		"left-top", "left-center", "left-bottom",
		"right-top", "right-center", "right-bottom",
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		margin := float64(rng.Intn(20))
		target := graphics.Size{
			Width:  float64(1 + rng.Intn(int(viewport.Width-2*margin))),
			Height: float64(1 + rng.Intn(int(viewport.Height-2*margin))),
		}
		ref := graphics.RectFromLTWH(
			float64(rng.Intn(1000)), float64(rng.Intn(800)),
			float64(rng.Intn(200)), float64(rng.Intn(200)),
		)
		offset := graphics.Offset{X: float64(rng.Intn(60) - 30), Y: float64(rng.Intn(60) - 30)}
		ra := Parse(names[rng.Intn(len(names))])
		ta := Parse(names[rng.Intn(len(names))])

		p := Place(ref, target, viewport, ra, ta, offset, margin)

		if p.X < margin || p.Y < margin ||
			p.X+target.Width > viewport.Width-margin ||
			p.Y+target.Height > viewport.Height-margin {
			t.Fatalf("case %d: placement %+v size %+v escapes viewport with margin %v", i, p, target, margin)
		}
	}
}
