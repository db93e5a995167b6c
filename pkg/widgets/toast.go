package widgets

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

// DefaultToastGap separates stacked toasts.
const DefaultToastGap = 8

// ToastPrefix starts the layer name of every toast.
const ToastPrefix = "toast-"

// Toasts stacks notifications in the bottom-right corner, newest at the
// bottom, above the status bar and any bottom toolbars.
type Toasts struct {
	Engine *engine.Engine
	Layers *Layers
	// Gap separates toasts. Zero uses DefaultToastGap.
	Gap float64

	mu    sync.Mutex
	seq   int
	stack []string // layer names, oldest first
}

// Toast is a handle to a shown toast.
type Toast struct {
	name string
	El   *surface.Node
}

// Push shows a toast with text and restacks.
func (t *Toasts) Push(text string) Toast {
	t.mu.Lock()
	t.seq++
	name := fmt.Sprintf("%s%d", ToastPrefix, t.seq)
	t.stack = append(t.stack, name)
	t.mu.Unlock()

	el := t.Layers.Layer(name)
	el.SetText(text)
	show(el)
	t.Restack()
	return Toast{name: name, El: el}
}

// Dismiss removes a toast and restacks the rest.
func (t *Toasts) Dismiss(toast Toast) {
	t.mu.Lock()
	i := slices.Index(t.stack, toast.name)
	if i >= 0 {
		t.stack = slices.Delete(t.stack, i, i+1)
	}
	t.mu.Unlock()
	if i < 0 {
		return
	}
	t.Layers.Release(toast.name)
	t.Restack()
}

// DismissOldest removes the toast that has been showing longest.
func (t *Toasts) DismissOldest() {
	t.mu.Lock()
	if len(t.stack) == 0 {
		t.mu.Unlock()
		return
	}
	name := t.stack[0]
	t.mu.Unlock()
	t.Dismiss(Toast{name: name})
}

// Len returns the number of toasts showing.
func (t *Toasts) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.stack)
}

// Restack positions every toast. Call it after the docked chrome changes.
func (t *Toasts) Restack() {
	t.mu.Lock()
	names := slices.Clone(t.stack)
	t.mu.Unlock()

	gap := t.Gap
	if gap == 0 {
		gap = DefaultToastGap
	}
	vp := t.Engine.Host().Viewport()
	margin := t.Engine.Margin()
	bottom := vp.Height - t.Engine.TotalOffset(dock.Bottom) - margin
	right := vp.Width - t.Engine.TotalOffset(dock.Right) - margin

	// Newest sits lowest; walk from the newest up.
	for i := len(names) - 1; i >= 0; i-- {
		el := t.Layers.Layer(names[i])
		corner := graphics.RectFromLTWH(right, bottom, 0, 0)
		p := t.Engine.ResolveAt(corner, el, "top-left", "bottom-right")
		surface.SetPosition(el, p.Offset())
		bottom = p.Y - gap
	}
}
