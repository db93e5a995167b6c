package dock

import "github.com/go-drift/floatdock/pkg/surface"

// Accumulator answers offset queries from live geometry.
type Accumulator struct {
	Registry *Registry
	Host     surface.Host
}

// NewAccumulator returns an Accumulator over reg reading geometry from host.
func NewAccumulator(reg *Registry, host surface.Host) *Accumulator {
	return &Accumulator{Registry: reg, Host: host}
}

// TotalOffset is the space taken on side by every visible toolbar, plus the
// menu bar on top and the status bar on the bottom.
func (a *Accumulator) TotalOffset(side Side) float64 {
	total := a.base(side)
	for _, m := range a.Registry.members(side, RoleToolbar, a.Host) {
		total += a.extent(m)
	}
	return total
}

// OffsetBefore is where el starts on side: the space taken by the docked
// elements laid out before it. For a toolbar that is the menu bar or status
// bar plus the visible toolbars earlier in document order. Panels sit inside
// every toolbar on their side, so a panel gets TotalOffset plus the widths of
// the visible panels earlier in document order. An element with no document
// position precedes nothing.
func (a *Accumulator) OffsetBefore(side Side, el surface.Element) float64 {
	if role, ok := a.Registry.roleOn(el, side); ok && role == RolePanel {
		return a.TotalOffset(side) + a.panelsBefore(side, el)
	}
	total := a.base(side)
	at := a.Host.Index(el)
	if at < 0 {
		return total
	}
	for _, m := range a.Registry.members(side, RoleToolbar, a.Host) {
		if m.index >= at {
			break
		}
		total += a.extent(m)
	}
	return total
}

func (a *Accumulator) panelsBefore(side Side, el surface.Element) float64 {
	at := a.Host.Index(el)
	if at < 0 {
		return 0
	}
	total := 0.0
	for _, m := range a.Registry.members(side, RolePanel, a.Host) {
		if m.index >= at {
			break
		}
		if m.visible() {
			total += m.width
		}
	}
	return total
}

// PanelTotal is the declared width of every visible panel on side.
func (a *Accumulator) PanelTotal(side Side) float64 {
	total := 0.0
	for _, m := range a.Registry.members(side, RolePanel, a.Host) {
		if m.visible() {
			total += m.width
		}
	}
	return total
}

func (a *Accumulator) base(side Side) float64 {
	var role Role
	switch side {
	case Top:
		role = RoleMenuBar
	case Bottom:
		role = RoleStatusBar
	default:
		return 0
	}
	m, ok := a.Registry.barMember(role)
	if !ok || a.Host.Index(m.el) < 0 {
		return 0
	}
	return a.extent(m)
}

func (a *Accumulator) extent(m member) float64 {
	if !m.visible() {
		return 0
	}
	r := a.Host.Rect(m.el)
	if m.side.Horizontal() {
		return r.Width()
	}
	return r.Height()
}
