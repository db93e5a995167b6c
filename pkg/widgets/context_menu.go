package widgets

import (
	"strings"

	"github.com/go-drift/floatdock/pkg/anchor"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

// MenuSelection is delivered to a context menu's observer.
type MenuSelection struct {
	Index int
	Item  string
}

// ContextMenu opens a list of items at the pointer.
type ContextMenu struct {
	Engine *engine.Engine
	Layers *Layers
	Items  []string

	open     bool
	selected Notifier[MenuSelection]
}

// OnSelect sets the selection observer. A later call replaces it.
func (m *ContextMenu) OnSelect(fn func(MenuSelection)) { m.selected.Subscribe(fn) }

// ShowAt opens the menu with its corner at the pointer. Near the right or
// bottom edge it opens to the left or upward instead.
func (m *ContextMenu) ShowAt(pointer graphics.Offset) anchor.Placement {
	el := m.Layers.Layer(LayerContextMenu)
	el.SetText(strings.Join(m.Items, "\n"))
	at := graphics.RectFromOffsetSize(pointer, graphics.Size{})
	p := m.Engine.ResolveAt(at, el, "bottom-right", "top-left")
	surface.SetPosition(el, p.Offset())
	show(el)
	m.open = true
	return p
}

// Open reports whether the menu is showing.
func (m *ContextMenu) Open() bool { return m.open }

// Select picks item i, closes the menu and notifies the observer. It
// reports false, and keeps the menu open, when i is out of range or the
// menu is closed.
func (m *ContextMenu) Select(i int) bool {
	if !m.open || i < 0 || i >= len(m.Items) {
		return false
	}
	m.Close()
	m.selected.Notify(MenuSelection{Index: i, Item: m.Items[i]})
	return true
}

// Close hides the menu.
func (m *ContextMenu) Close() {
	if !m.open {
		return
	}
	hide(m.Layers.Layer(LayerContextMenu))
	m.open = false
}
