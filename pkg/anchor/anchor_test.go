package anchor

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
		str  string
	}{
		{"bottom-right", BottomRight, "bottom-right"},
		{"left-center", LeftCenter, "left-center"},
		{"right-top", RightTop, "right-top"},
		{"top-left", TopLeft, "top-left"},
		{"TOP-center", TopCenter, "top-center"},
		{"bottom", BottomCenter, "bottom-center"},
		{"left-bogus", LeftCenter, "left-center"},
		{"diagonal-nowhere", Anchor{}, "center-center"},
		{"", Anchor{}, "center-center"},
		{"middle-right", Anchor{H: Right, PrimaryVertical: true}, "center-right"},
	}
	for _, tt := range tests {
		got := Parse(tt.in)
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if s := got.String(); s != tt.str {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, s, tt.str)
		}
	}
}

func TestParse_AllTwelveRoundTrip(t *testing.T) {
	names := []string{
		"top-left", "top-center", "top-right",
		"bottom-left", "bottom-center", "bottom-right",
		"left-top", "left-center", "left-bottom",
		"right-top", "right-center", "right-bottom",
	}
	for _, name := range names {
		if got := Parse(name).String(); got != name {
			t.Errorf("Parse(%q).String() = %q", name, got)
		}
	}
}

func TestMirror(t *testing.T) {
	if got := RightBottom.MirrorHorizontal(); got != LeftBottom {
		t.Errorf("RightBottom mirrored = %v, want left-bottom", got)
	}
	if got := TopLeft.MirrorHorizontal(); got != TopRight {
		t.Errorf("TopLeft mirrored = %v, want top-right", got)
	}
	if got := TopCenter.MirrorHorizontal(); got != TopCenter {
		t.Errorf("TopCenter mirrored = %v, want unchanged", got)
	}
	if got := BottomLeft.MirrorVertical(); got != TopLeft {
		t.Errorf("BottomLeft mirrored vertically = %v, want top-left", got)
	}
}
