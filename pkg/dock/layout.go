package dock

import (
	"math"

	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
)

// Item is one docked element captured for layout.
type Item struct {
	El      surface.Element
	Role    Role
	Side    Side
	Visible bool
	// Extent is the element's size across its side: height on top and
	// bottom, width on left and right. Panels use their declared width.
	Extent float64
}

// State is everything Compute needs. Build it with Snapshot or by hand.
type State struct {
	Viewport  graphics.Size
	MenuBar   *Item
	StatusBar *Item
	// Toolbars and Panels are grouped by side in Sides order and in
	// document order within a side.
	Toolbars  []Item
	Panels    []Item
	Workspace surface.Element
}

// Snapshot reads current geometry for every docked element, side by side in
// the fixed order top, bottom, left, right.
func Snapshot(reg *Registry, host surface.Host) State {
	acc := Accumulator{Registry: reg, Host: host}
	st := State{Viewport: host.Viewport(), Workspace: reg.Workspace()}

	capture := func(m member) Item {
		it := Item{El: m.el, Role: m.role, Side: m.side, Visible: m.visible()}
		if m.role == RolePanel {
			if it.Visible {
				it.Extent = m.width
			}
		} else {
			it.Extent = acc.extent(m)
		}
		return it
	}

	for _, side := range Sides {
		switch side {
		case Top:
			if m, ok := reg.barMember(RoleMenuBar); ok && host.Index(m.el) >= 0 {
				it := capture(m)
				st.MenuBar = &it
			}
		case Bottom:
			if m, ok := reg.barMember(RoleStatusBar); ok && host.Index(m.el) >= 0 {
				it := capture(m)
				st.StatusBar = &it
			}
		}
		for _, m := range reg.members(side, RoleToolbar, host) {
			st.Toolbars = append(st.Toolbars, capture(m))
		}
		for _, m := range reg.members(side, RolePanel, host) {
			st.Panels = append(st.Panels, capture(m))
		}
	}
	return st
}

// Box is a computed rectangle for one element.
type Box struct {
	El      surface.Element
	Role    Role
	Side    Side
	Visible bool
	Rect    graphics.Rect
}

// Layout is the result of Compute.
type Layout struct {
	Viewport graphics.Size
	// Offsets holds TotalOffset for each side, indexed by Side.
	Offsets [4]float64
	// PanelWidths holds the visible panel width for each side.
	PanelWidths [4]float64
	MenuBar     *Box
	StatusBar   *Box
	Toolbars    []Box
	Panels      []Box
	Workspace   Box
}

// Offset returns the toolbar total for side.
func (l Layout) Offset(side Side) float64 { return l.Offsets[side] }

// Compute derives every docked rectangle from st without touching the
// presentation layer.
func Compute(st State) Layout {
	vw, vh := st.Viewport.Width, st.Viewport.Height
	l := Layout{Viewport: st.Viewport}

	// before[side] is the running offset while walking a side in order.
	var before [4]float64
	if st.MenuBar != nil {
		before[Top] = visibleExtent(*st.MenuBar)
		b := Box{El: st.MenuBar.El, Role: RoleMenuBar, Side: Top, Visible: st.MenuBar.Visible}
		if b.Visible {
			b.Rect = graphics.RectFromLTWH(0, 0, vw, st.MenuBar.Extent)
		}
		l.MenuBar = &b
	}
	if st.StatusBar != nil {
		before[Bottom] = visibleExtent(*st.StatusBar)
		b := Box{El: st.StatusBar.El, Role: RoleStatusBar, Side: Bottom, Visible: st.StatusBar.Visible}
		if b.Visible {
			b.Rect = graphics.RectFromLTWH(0, vh-st.StatusBar.Extent, vw, st.StatusBar.Extent)
		}
		l.StatusBar = &b
	}

	// Top and bottom toolbars first: left and right toolbars span the
	// height those leave.
	for _, it := range st.Toolbars {
		if it.Side.Horizontal() {
			continue
		}
		b := Box{El: it.El, Role: RoleToolbar, Side: it.Side, Visible: it.Visible}
		if it.Visible {
			at := before[it.Side]
			if it.Side == Top {
				b.Rect = graphics.RectFromLTWH(0, at, vw, it.Extent)
			} else {
				b.Rect = graphics.RectFromLTWH(0, vh-at-it.Extent, vw, it.Extent)
			}
			before[it.Side] += it.Extent
		}
		l.Toolbars = append(l.Toolbars, b)
	}
	top, bottom := before[Top], before[Bottom]
	span := math.Max(0, vh-top-bottom)

	for _, it := range st.Toolbars {
		if !it.Side.Horizontal() {
			continue
		}
		b := Box{El: it.El, Role: RoleToolbar, Side: it.Side, Visible: it.Visible}
		if it.Visible {
			at := before[it.Side]
			if it.Side == Left {
				b.Rect = graphics.RectFromLTWH(at, top, it.Extent, span)
			} else {
				b.Rect = graphics.RectFromLTWH(vw-at-it.Extent, top, it.Extent, span)
			}
			before[it.Side] += it.Extent
		}
		l.Toolbars = append(l.Toolbars, b)
	}
	l.Offsets = before

	var panels [4]float64
	for _, it := range st.Panels {
		b := Box{El: it.El, Role: RolePanel, Side: it.Side, Visible: it.Visible}
		if it.Visible {
			at := l.Offsets[it.Side] + panels[it.Side]
			if it.Side == Left {
				b.Rect = graphics.RectFromLTWH(at, top, it.Extent, span)
			} else {
				b.Rect = graphics.RectFromLTWH(vw-at-it.Extent, top, it.Extent, span)
			}
			panels[it.Side] += it.Extent
		}
		l.Panels = append(l.Panels, b)
	}
	l.PanelWidths = panels

	left := l.Offsets[Left] + panels[Left]
	right := l.Offsets[Right] + panels[Right]
	l.Workspace = Box{
		El:      st.Workspace,
		Role:    RoleWorkspace,
		Visible: st.Workspace != nil,
		Rect:    graphics.RectFromLTWH(left, top, math.Max(0, vw-left-right), span),
	}
	return l
}

func visibleExtent(it Item) float64 {
	if !it.Visible {
		return 0
	}
	return it.Extent
}

// ApplyToolbars writes the menu bar, status bar and toolbar positions.
// Top and bottom elements keep their own height; left and right toolbars
// keep their own width.
func ApplyToolbars(l Layout) {
	if l.MenuBar != nil {
		applyAcross(*l.MenuBar)
	}
	if l.StatusBar != nil {
		applyAcross(*l.StatusBar)
	}
	for _, b := range l.Toolbars {
		applyAcross(b)
	}
}

// ApplyPanels writes panel rectangles.
func ApplyPanels(l Layout) {
	for _, b := range l.Panels {
		if b.Visible && b.El != nil {
			surface.SetRect(b.El, b.Rect)
		}
	}
}

// ApplyWorkspace writes the workspace rectangle.
func ApplyWorkspace(l Layout) {
	if l.Workspace.Visible && l.Workspace.El != nil {
		surface.SetRect(l.Workspace.El, l.Workspace.Rect)
	}
}

// Apply writes everything in reflow order.
func Apply(l Layout) {
	ApplyToolbars(l)
	ApplyPanels(l)
	ApplyWorkspace(l)
}

func applyAcross(b Box) {
	if !b.Visible || b.El == nil {
		return
	}
	surface.SetPx(b.El, surface.StyleLeft, b.Rect.Left)
	surface.SetPx(b.El, surface.StyleTop, b.Rect.Top)
	if b.Side.Horizontal() {
		surface.SetPx(b.El, surface.StyleHeight, b.Rect.Height())
	} else {
		surface.SetPx(b.El, surface.StyleWidth, b.Rect.Width())
	}
}
