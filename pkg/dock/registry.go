package dock

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/surface"
)

type entry struct {
	el     surface.Element
	side   Side
	role   Role
	hidden bool
	width  float64 // declared width, panels only
	seq    int
}

// Registry tracks which elements participate in docking.
//
// Registration order is only a tie-break; stacking order is document order
// as reported by the host's Orderer.
type Registry struct {
	mu        sync.Mutex
	entries   map[surface.Element]*entry
	seq       int
	menuBar   *entry
	statusBar *entry
	workspace surface.Element
	onChange  func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[surface.Element]*entry)}
}

// OnChange sets the callback invoked after any change that affects layout.
// A later call replaces the earlier callback; nil removes it.
func (r *Registry) OnChange(fn func()) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

func (r *Registry) changed() {
	r.mu.Lock()
	fn := r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Register docks a toolbar on side. Registering an element again moves it.
func (r *Registry) Register(el surface.Element, side Side) error {
	return r.add(el, side, RoleToolbar, 0)
}

// RegisterSide is Register with a side name. Unknown names are rejected.
func (r *Registry) RegisterSide(el surface.Element, side string) error {
	s, err := ParseSide(side)
	if err != nil {
		return err
	}
	return r.Register(el, s)
}

// RegisterPanel docks a side panel of the given width on the left or right.
func (r *Registry) RegisterPanel(el surface.Element, side Side, width float64) error {
	if side != Left && side != Right {
		return errors.Config("dock.RegisterPanel", elementID(el),
			fmt.Errorf("%w: panels dock left or right, got %s", errors.ErrInvalidSide, side))
	}
	if width < 0 {
		return errors.Config("dock.RegisterPanel", elementID(el), fmt.Errorf("negative width %v", width))
	}
	return r.add(el, side, RolePanel, width)
}

func (r *Registry) add(el surface.Element, side Side, role Role, width float64) error {
	if el == nil {
		return errors.Config("dock.Register", "", errors.New("nil element"))
	}
	if !side.Valid() {
		return errors.Config("dock.Register", el.ID(), fmt.Errorf("%w: %s", errors.ErrInvalidSide, side))
	}
	r.mu.Lock()
	e, ok := r.entries[el]
	if !ok {
		r.seq++
		e = &entry{el: el, seq: r.seq}
		r.entries[el] = e
	}
	e.side, e.role, e.width = side, role, width
	r.mu.Unlock()
	r.changed()
	return nil
}

// Unregister removes el from docking. Unknown elements are ignored.
func (r *Registry) Unregister(el surface.Element) {
	r.mu.Lock()
	_, ok := r.entries[el]
	delete(r.entries, el)
	if r.menuBar != nil && r.menuBar.el == el {
		r.menuBar, ok = nil, true
	}
	if r.statusBar != nil && r.statusBar.el == el {
		r.statusBar, ok = nil, true
	}
	if r.workspace == el {
		r.workspace, ok = nil, true
	}
	r.mu.Unlock()
	if ok {
		r.changed()
	}
}

// SetMenuBar sets the element that always heads the top side. nil clears it.
func (r *Registry) SetMenuBar(el surface.Element) {
	r.mu.Lock()
	r.menuBar = r.bar(el, Top, RoleMenuBar)
	r.mu.Unlock()
	r.changed()
}

// SetStatusBar sets the element that always ends the bottom side. nil clears it.
func (r *Registry) SetStatusBar(el surface.Element) {
	r.mu.Lock()
	r.statusBar = r.bar(el, Bottom, RoleStatusBar)
	r.mu.Unlock()
	r.changed()
}

func (r *Registry) bar(el surface.Element, side Side, role Role) *entry {
	if el == nil {
		return nil
	}
	r.seq++
	return &entry{el: el, side: side, role: role, seq: r.seq}
}

// SetWorkspace sets the element that fills the space left by docked chrome.
func (r *Registry) SetWorkspace(el surface.Element) {
	r.mu.Lock()
	r.workspace = el
	r.mu.Unlock()
	r.changed()
}

// Workspace returns the workspace element, or nil.
func (r *Registry) Workspace() surface.Element {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.workspace
}

// SetHidden toggles whether el contributes to offsets.
func (r *Registry) SetHidden(el surface.Element, hidden bool) {
	r.mu.Lock()
	e := r.lookup(el)
	changed := e != nil && e.hidden != hidden
	if changed {
		e.hidden = hidden
	}
	r.mu.Unlock()
	if changed {
		r.changed()
	}
}

// Hidden reports whether el has been toggled off.
func (r *Registry) Hidden(el surface.Element) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.lookup(el)
	return e != nil && e.hidden
}

// SetPanelWidth changes a panel's declared width.
func (r *Registry) SetPanelWidth(el surface.Element, width float64) {
	r.mu.Lock()
	e := r.entries[el]
	changed := e != nil && e.role == RolePanel && e.width != width && width >= 0
	if changed {
		e.width = width
	}
	r.mu.Unlock()
	if changed {
		r.changed()
	}
}

// PanelWidth returns a panel's declared width.
func (r *Registry) PanelWidth(el surface.Element) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e := r.entries[el]; e != nil && e.role == RolePanel {
		return e.width
	}
	return 0
}

// SideOf returns the side el is docked on.
func (r *Registry) SideOf(el surface.Element) (Side, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.lookup(el)
	if e == nil {
		return 0, false
	}
	return e.side, true
}

// Len returns the number of registered toolbars and panels.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// roleOn returns el's role when it is docked on side.
func (r *Registry) roleOn(el surface.Element, side Side) (Role, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.lookup(el)
	if e == nil || e.side != side {
		return 0, false
	}
	return e.role, true
}

func (r *Registry) lookup(el surface.Element) *entry {
	if e, ok := r.entries[el]; ok {
		return e
	}
	if r.menuBar != nil && r.menuBar.el == el {
		return r.menuBar
	}
	if r.statusBar != nil && r.statusBar.el == el {
		return r.statusBar
	}
	return nil
}

// member is a registry entry copied out for lock-free reading.
type member struct {
	el     surface.Element
	side   Side
	role   Role
	hidden bool
	width  float64
	index  int
	seq    int
}

// members returns copies of the entries on side with role, sorted by
// document order. Detached elements are dropped.
func (r *Registry) members(side Side, role Role, order surface.Orderer) []member {
	r.mu.Lock()
	out := make([]member, 0, len(r.entries))
	for _, e := range r.entries {
		if e.side == side && e.role == role {
			out = append(out, member{el: e.el, side: e.side, role: e.role, hidden: e.hidden, width: e.width, seq: e.seq})
		}
	}
	r.mu.Unlock()
	return sortByDocument(out, order)
}

func (r *Registry) barMember(role Role) (member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.menuBar
	if role == RoleStatusBar {
		e = r.statusBar
	}
	if e == nil {
		return member{}, false
	}
	return member{el: e.el, side: e.side, role: e.role, hidden: e.hidden, seq: e.seq}, true
}

func sortByDocument(ms []member, order surface.Orderer) []member {
	kept := ms[:0]
	for _, m := range ms {
		m.index = m.seq
		if order != nil {
			m.index = order.Index(m.el)
			if m.index < 0 {
				continue
			}
		}
		kept = append(kept, m)
	}
	slices.SortFunc(kept, func(a, b member) int {
		if a.index != b.index {
			return a.index - b.index
		}
		return a.seq - b.seq
	})
	return kept
}

// visible reports whether m takes up space.
func (m member) visible() bool {
	return !m.hidden && m.el.Attached() && !surface.IsHidden(m.el)
}

func elementID(el surface.Element) string {
	if el == nil {
		return ""
	}
	return el.ID()
}
