package reflow

import (
	"image"
	"testing"

	"github.com/go-drift/floatdock/pkg/canvas"
	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

// recordingHost wraps a Document and logs style writes in order.
type recordingHost struct {
	*surface.Document
	writes *[]string
}

type recordingElement struct {
	*surface.Node
	writes *[]string
}

func (e recordingElement) SetStyle(name, value string) {
	*e.writes = append(*e.writes, e.ID())
	e.Node.SetStyle(name, value)
}

func (h recordingHost) unwrap(el surface.Element) surface.Element {
	if r, ok := el.(recordingElement); ok {
		return r.Node
	}
	return el
}

func (h recordingHost) Rect(el surface.Element) graphics.Rect { return h.Document.Rect(h.unwrap(el)) }
func (h recordingHost) Index(el surface.Element) int          { return h.Document.Index(h.unwrap(el)) }

type setup struct {
	doc    *surface.Document
	reg    *dock.Registry
	frames *ManualFrames
	sched  *Scheduler
}

func newSetup() *setup {
	doc := surface.NewDocument(graphics.Size{Width: 800, Height: 600})
	reg := dock.NewRegistry()
	frames := &ManualFrames{}
	return &setup{doc: doc, reg: reg, frames: frames, sched: New(reg, doc, frames)}
}

func (s *setup) node(t *testing.T, id string, w, h float64) *surface.Node {
	t.Helper()
	n := s.doc.CreateElement(id)
	n.SetNaturalSize(graphics.Size{Width: w, Height: h})
	if err := s.doc.Append(n); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestScheduler_CoalescesRequests(t *testing.T) {
	s := newSetup()
	for i := 0; i < 5; i++ {
		s.sched.RequestReflow()
	}
	if got := s.frames.Pending(); got != 1 {
		t.Fatalf("frame requests = %d, want 1", got)
	}
	s.frames.Flush()

	st := s.sched.Stats()
	if st.Requests != 5 || st.Passes != 1 {
		t.Fatalf("stats = %+v, want 5 requests / 1 pass", st)
	}
	if s.sched.Pending() {
		t.Fatal("scheduler still pending after flush")
	}

	s.sched.RequestReflow()
	s.frames.Flush()
	if got := s.sched.Stats().Passes; got != 2 {
		t.Fatalf("passes = %d, want 2 after a second frame", got)
	}
}

func TestScheduler_RegistryChangesTriggerReflow(t *testing.T) {
	s := newSetup()
	tb := s.node(t, "tb", 0, 30)
	ws := s.node(t, "ws", 0, 0)
	_ = s.reg.Register(tb, dock.Top)
	s.reg.SetWorkspace(ws)
	s.reg.SetHidden(tb, true)
	s.reg.SetHidden(tb, false)

	if got := s.frames.Pending(); got != 1 {
		t.Fatalf("frame requests = %d, want 1", got)
	}
	s.frames.Flush()

	if got := ws.Style(surface.StyleTop); got != "30px" {
		t.Errorf("workspace top = %q, want 30px", got)
	}
	if got := ws.Style(surface.StyleHeight); got != "570px" {
		t.Errorf("workspace height = %q, want 570px", got)
	}
}

func TestScheduler_ResizeRecomputes(t *testing.T) {
	s := newSetup()
	ws := s.node(t, "ws", 0, 0)
	s.reg.SetWorkspace(ws)
	s.frames.Flush()

	s.doc.Resize(graphics.Size{Width: 1024, Height: 768})
	s.sched.RequestReflow()
	s.frames.Flush()

	if got := ws.Style(surface.StyleWidth); got != "1024px" {
		t.Errorf("workspace width = %q, want 1024px", got)
	}
}

func TestScheduler_PassOrder(t *testing.T) {
	var writes []string
	doc := surface.NewDocument(graphics.Size{Width: 800, Height: 600})
	host := recordingHost{Document: doc, writes: &writes}
	reg := dock.NewRegistry()
	frames := &ManualFrames{}
	sched := New(reg, host, frames)

	wrap := func(id string, w, h float64) recordingElement {
		n := doc.CreateElement(id)
		n.SetNaturalSize(graphics.Size{Width: w, Height: h})
		_ = doc.Append(n)
		return recordingElement{Node: n, writes: &writes}
	}
	// Registration order deliberately differs from pass order.
	ws := wrap("ws", 0, 0)
	reg.SetWorkspace(ws)
	panel := wrap("panel", 0, 0)
	_ = reg.RegisterPanel(panel, dock.Left, 100)
	tb := wrap("tb", 0, 20)
	_ = reg.Register(tb, dock.Top)

	frames.Flush()

	var order []string
	for _, id := range writes {
		if len(order) == 0 || order[len(order)-1] != id {
			order = append(order, id)
		}
	}
	if got := sched.Stats().Passes; got != 1 {
		t.Errorf("passes = %d, want 1", got)
	}
	want := []string{"tb", "panel", "ws"}
	if len(order) != len(want) {
		t.Fatalf("write order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("write order = %v, want %v", order, want)
		}
	}
}

func TestScheduler_ResizesAttachedCanvas(t *testing.T) {
	s := newSetup()
	ws := s.node(t, "ws", 0, 0)
	tb := s.node(t, "tb", 0, 40)
	_ = s.reg.Register(tb, dock.Top)
	s.reg.SetWorkspace(ws)

	c := canvas.New(10, 10)
	c.Fill(image.Rect(0, 0, 1, 1), graphics.ColorRed)
	s.sched.Attach(c)
	s.frames.Flush()

	if got := c.Size(); got != (image.Point{X: 800, Y: 560}) {
		t.Fatalf("canvas size = %v, want 800x560", got)
	}
	if c.At(0, 0) != graphics.ColorRed {
		t.Error("canvas content lost across resize")
	}
}

func TestScheduler_UncreatedCanvasIsNoop(t *testing.T) {
	rec := &errors.Recorder{}
	errors.SetHandler(rec)
	defer errors.SetHandler(nil)

	s := newSetup()
	s.reg.SetWorkspace(s.node(t, "ws", 0, 0))
	s.sched.Attach(&canvas.Surface{})
	s.frames.Flush()

	if s.sched.Stats().Passes != 1 {
		t.Fatal("pass did not complete")
	}
	if len(rec.Errors)+len(rec.Panics) != 0 {
		t.Fatalf("surface failure should be silent, got %+v %+v", rec.Errors, rec.Panics)
	}
}

func TestScheduler_MissingElementsAreZero(t *testing.T) {
	s := newSetup()
	tb := s.node(t, "tb", 0, 30)
	ws := s.node(t, "ws", 0, 0)
	_ = s.reg.Register(tb, dock.Top)
	s.reg.SetWorkspace(ws)
	s.doc.Remove(tb)
	s.frames.Flush()

	if got := ws.Style(surface.StyleTop); got != "0px" {
		t.Errorf("workspace top = %q, want 0px", got)
	}
}

func TestScheduler_OnReflowLastWins(t *testing.T) {
	s := newSetup()
	var a, b int
	s.sched.OnReflow(func(dock.Layout) { a++ })
	s.sched.OnReflow(func(dock.Layout) { b++ })
	s.sched.RequestReflow()
	s.frames.Flush()
	if a != 0 || b != 1 {
		t.Fatalf("callbacks ran a=%d b=%d, want 0/1", a, b)
	}
}
