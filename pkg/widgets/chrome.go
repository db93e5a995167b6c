package widgets

import (
	"math"

	"github.com/go-drift/floatdock/pkg/canvas"
	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/surface"
)

// DefaultCollapsedExtent is the strip a collapsed toolbar keeps.
const DefaultCollapsedExtent = 6

// Panel scale limits.
const (
	MinPanelScale = 0.25
	MaxPanelScale = 4
)

// ChromeState is the typed state of a piece of docked chrome.
type ChromeState struct {
	Hidden    bool
	Collapsed bool
	// Scale multiplies a panel's base width. Zero means 1.
	Scale float64
}

func (s ChromeState) scale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// setHidden shows or hides el and tells the registry, which schedules a
// reflow when the flag changes.
func setHidden(eng *engine.Engine, el surface.Element, hidden bool) {
	if hidden {
		hide(el)
	} else {
		show(el)
	}
	eng.Registry().SetHidden(el, hidden)
}

// Toolbar controls a toolbar docked on one side.
type Toolbar struct {
	Engine *engine.Engine
	El     surface.Element
	Side   dock.Side
	// CollapsedExtent is the height (top, bottom) or width (left, right)
	// kept while collapsed. Zero uses DefaultCollapsedExtent.
	CollapsedExtent float64

	state   ChromeState
	Changed Notifier[ChromeState]
}

// Mount registers the toolbar for docking.
func (t *Toolbar) Mount() error {
	return t.Engine.Registry().Register(t.El, t.Side)
}

// Unmount removes the toolbar from docking.
func (t *Toolbar) Unmount() {
	t.Engine.UnregisterDocked(t.El)
}

// State returns the current state.
func (t *Toolbar) State() ChromeState { return t.state }

// Toggle flips visibility.
func (t *Toolbar) Toggle() { t.SetHidden(!t.state.Hidden) }

// SetHidden shows or hides the toolbar.
func (t *Toolbar) SetHidden(hidden bool) {
	if t.state.Hidden == hidden {
		return
	}
	t.state.Hidden = hidden
	setHidden(t.Engine, t.El, hidden)
	t.Changed.Notify(t.state)
}

// Collapse shrinks the toolbar to a thin strip, or restores it.
func (t *Toolbar) Collapse(collapsed bool) {
	if t.state.Collapsed == collapsed {
		return
	}
	t.state.Collapsed = collapsed
	prop := surface.StyleHeight
	if t.Side.Horizontal() {
		prop = surface.StyleWidth
	}
	if collapsed {
		extent := t.CollapsedExtent
		if extent == 0 {
			extent = DefaultCollapsedExtent
		}
		surface.SetPx(t.El, prop, extent)
	} else {
		t.El.SetStyle(prop, "")
	}
	t.Engine.RequestReflow()
	t.Changed.Notify(t.state)
}

// SidePanel controls a panel docked left or right.
type SidePanel struct {
	Engine *engine.Engine
	El     surface.Element
	Side   dock.Side
	// Width is the unscaled panel width.
	Width float64
	// Canvas, when set, is a preview surface scaled with the panel.
	Canvas *canvas.Surface

	state   ChromeState
	Changed Notifier[ChromeState]
}

// Mount registers the panel for docking.
func (p *SidePanel) Mount() error {
	return p.Engine.Registry().RegisterPanel(p.El, p.Side, p.width())
}

// Unmount removes the panel from docking.
func (p *SidePanel) Unmount() {
	p.Engine.UnregisterDocked(p.El)
}

// State returns the current state.
func (p *SidePanel) State() ChromeState { return p.state }

func (p *SidePanel) width() float64 {
	if p.state.Collapsed {
		return 0
	}
	return p.Width * p.state.scale()
}

// Toggle flips visibility.
func (p *SidePanel) Toggle() { p.SetHidden(!p.state.Hidden) }

// SetHidden shows or hides the panel.
func (p *SidePanel) SetHidden(hidden bool) {
	if p.state.Hidden == hidden {
		return
	}
	p.state.Hidden = hidden
	setHidden(p.Engine, p.El, hidden)
	p.Changed.Notify(p.state)
}

// Collapse folds the panel to zero width while keeping it docked.
func (p *SidePanel) Collapse(collapsed bool) {
	if p.state.Collapsed == collapsed {
		return
	}
	p.state.Collapsed = collapsed
	p.Engine.Registry().SetPanelWidth(p.El, p.width())
	p.Changed.Notify(p.state)
}

// SetScale scales the panel width by f, clamped to
// [MinPanelScale, MaxPanelScale], and schedules a reflow. The preview
// canvas, if any, is resampled to match.
func (p *SidePanel) SetScale(f float64) {
	f = math.Min(math.Max(f, MinPanelScale), MaxPanelScale)
	prev := p.state.scale()
	if f == prev {
		return
	}
	p.state.Scale = f
	p.Engine.Registry().SetPanelWidth(p.El, p.width())
	if p.Canvas != nil {
		size := p.Canvas.Size()
		ratio := f / prev
		// A surface that was never allocated has nothing to resample.
		_ = p.Canvas.ScaleTo(int(math.Round(float64(size.X)*ratio)), int(math.Round(float64(size.Y)*ratio)))
	}
	p.Changed.Notify(p.state)
}

// MenuBar controls the bar pinned above every top toolbar.
type MenuBar struct {
	Engine *engine.Engine
	El     surface.Element

	state   ChromeState
	Changed Notifier[ChromeState]
}

// Mount installs the menu bar.
func (m *MenuBar) Mount() { m.Engine.Registry().SetMenuBar(m.El) }

// State returns the current state.
func (m *MenuBar) State() ChromeState { return m.state }

// Toggle flips visibility.
func (m *MenuBar) Toggle() {
	m.state.Hidden = !m.state.Hidden
	setHidden(m.Engine, m.El, m.state.Hidden)
	m.Changed.Notify(m.state)
}

// StatusBar controls the bar pinned below every bottom toolbar.
type StatusBar struct {
	Engine *engine.Engine
	El     *surface.Node

	state   ChromeState
	Changed Notifier[ChromeState]
}

// Mount installs the status bar.
func (s *StatusBar) Mount() { s.Engine.Registry().SetStatusBar(s.El) }

// State returns the current state.
func (s *StatusBar) State() ChromeState { return s.state }

// SetText replaces the status text.
func (s *StatusBar) SetText(text string) { s.El.SetText(text) }

// Toggle flips visibility.
func (s *StatusBar) Toggle() {
	s.state.Hidden = !s.state.Hidden
	setHidden(s.Engine, s.El, s.state.Hidden)
	s.Changed.Notify(s.state)
}
