// Package tui hosts the layout engine in a terminal.
//
// The presentation layer is a surface.Document measured in cells. Docked
// chrome comes from a config.File; keys toggle toolbars and panels, scale
// panels, show a tooltip and open a context menu. Reflow passes are driven
// by bubbletea ticks through TeaFrames.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/floatdock/pkg/config"
	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
	"github.com/go-drift/floatdock/pkg/widgets"
)

// DemoLayout is the chrome shown when no layout file is given. Sizes are
// in cells.
func DemoLayout() *config.File {
	f := &config.File{
		Name:      "demo",
		Viewport:  config.Viewport{Width: 80, Height: 24},
		Margin:    1,
		MenuBar:   &config.Bar{ID: "menu", Label: " File  Edit  View  Help", Height: 1},
		StatusBar: &config.Bar{ID: "status", Label: " Ready", Height: 1},
		Toolbars: []config.Toolbar{
			{ID: "tools", Side: "top", Size: 1, Label: " ▶ Run  ■ Stop  ⟳ Reload"},
			{ID: "palette", Side: "left", Size: 3, Label: " ✎\n ◻\n ◯"},
		},
		Panels: []config.Panel{
			{ID: "explorer", Side: "left", Width: 18, Label: " Explorer\n   main.go\n   go.mod"},
			{ID: "outline", Side: "right", Width: 16, Label: " Outline\n   Model\n   Update\n   View"},
		},
	}
	f.Normalize()
	return f
}

// Model is the bubbletea model of the terminal host.
type Model struct {
	eng    *engine.Engine
	doc    *surface.Document
	frames *TeaFrames
	chrome *config.Chrome
	layers *widgets.Layers

	tooltip *widgets.Tooltip
	menu    *widgets.ContextMenu
	toasts  *widgets.Toasts
	cursor  int
	notices int

	keys    KeyMap
	help    help.Model
	styles  map[styleID]lipgloss.Style
	roles   map[string]styleID
	width   int
	height  int
	lastMsg string
}

// New builds the chrome described by f into a cell-measured document.
func New(f *config.File) (*Model, error) {
	frames := &TeaFrames{}
	doc, eng := f.NewEngine(engine.Options{Frames: frames})
	doc.SetTextMeasure(CellMeasure)
	chrome, err := f.Build(doc, eng)
	if err != nil {
		return nil, err
	}
	layers := widgets.NewLayers(doc)

	m := &Model{
		eng:     eng,
		doc:     doc,
		frames:  frames,
		chrome:  chrome,
		layers:  layers,
		tooltip: &widgets.Tooltip{Engine: eng, Layers: layers},
		menu: &widgets.ContextMenu{
			Engine: eng,
			Layers: layers,
			Items:  []string{" Cut ", " Copy ", " Paste ", " Select all "},
		},
		toasts: &widgets.Toasts{Engine: eng, Layers: layers, Gap: 1},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultPalette.styles(),
		roles:  map[string]styleID{config.WorkspaceID: styleWorkspace},
		width:  int(f.Viewport.Width),
		height: int(f.Viewport.Height),
	}
	if chrome.MenuBar != nil {
		m.roles[chrome.MenuBar.El.ID()] = styleBar
	}
	if chrome.StatusBar != nil {
		m.roles[chrome.StatusBar.El.ID()] = styleBar
	}
	for _, t := range chrome.Toolbars {
		m.roles[t.El.ID()] = styleToolbar
	}
	for _, p := range chrome.Panels {
		m.roles[p.El.ID()] = stylePanel
	}

	m.menu.OnSelect(func(s widgets.MenuSelection) {
		m.lastMsg = strings.TrimSpace(s.Item)
		if chrome.StatusBar != nil {
			chrome.StatusBar.SetText(" " + m.lastMsg)
		}
		m.toasts.Push(" " + m.lastMsg + " ")
	})
	eng.Scheduler().OnReflow(func(dock.Layout) { m.toasts.Restack() })
	return m, nil
}

// Engine returns the layout engine.
func (m *Model) Engine() *engine.Engine { return m.eng }

// Document returns the cell document.
func (m *Model) Document() *surface.Document { return m.doc }

// Frames returns the frame source.
func (m *Model) Frames() *TeaFrames { return m.frames }

// Chrome returns the built chrome.
func (m *Model) Chrome() *config.Chrome { return m.chrome }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.eng.RequestReflow()
	return tea.Batch(tea.SetWindowTitle("floatdock"), m.frames.Cmd())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
	case FrameMsg:
		m.frames.Flush()
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}
	return m, m.frames.Cmd()
}

func (m *Model) resize() {
	rows := max(0, m.height-lipgloss.Height(m.help.View(m.keys)))
	m.eng.Resize(graphics.Size{Width: float64(m.width), Height: float64(rows)})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.menu.Open() {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(m.menu.Items) - 1) % len(m.menu.Items)
			return nil
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(m.menu.Items)
			return nil
		case key.Matches(msg, m.keys.Select):
			m.menu.Select(m.cursor)
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleToolbar):
		if len(m.chrome.Toolbars) > 0 {
			m.chrome.Toolbars[0].Toggle()
		}
	case key.Matches(msg, m.keys.Collapse):
		if len(m.chrome.Toolbars) > 0 {
			tb := m.chrome.Toolbars[0]
			tb.Collapse(!tb.State().Collapsed)
		}
	case key.Matches(msg, m.keys.TogglePanel):
		if len(m.chrome.Panels) > 0 {
			m.chrome.Panels[0].Toggle()
		}
	case key.Matches(msg, m.keys.ToggleMenuBar):
		if m.chrome.MenuBar != nil {
			m.chrome.MenuBar.Toggle()
		}
	case key.Matches(msg, m.keys.Grow):
		m.scalePanel(1.25)
	case key.Matches(msg, m.keys.Shrink):
		m.scalePanel(1 / 1.25)
	case key.Matches(msg, m.keys.Tooltip):
		m.toggleTooltip()
	case key.Matches(msg, m.keys.ContextMenu):
		m.openMenu()
	case key.Matches(msg, m.keys.Toast):
		m.notices++
		m.toasts.Push(fmt.Sprintf(" Notification %d ", m.notices))
	case key.Matches(msg, m.keys.Dismiss):
		m.dismiss()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return nil
}

func (m *Model) scalePanel(factor float64) {
	if len(m.chrome.Panels) == 0 {
		return
	}
	p := m.chrome.Panels[0]
	scale := p.State().Scale
	if scale == 0 {
		scale = 1
	}
	p.SetScale(scale * factor)
}

func (m *Model) toggleTooltip() {
	if m.tooltip.Visible() {
		m.tooltip.Hide()
		return
	}
	if len(m.chrome.Toolbars) == 0 {
		return
	}
	m.tooltip.Show(m.chrome.Toolbars[0].El, " Build and run the project ")
}

func (m *Model) openMenu() {
	ws := m.doc.Rect(m.chrome.Workspace)
	m.cursor = 0
	m.menu.ShowAt(ws.Center())
}

// dismiss closes the topmost floating element.
func (m *Model) dismiss() {
	switch {
	case m.menu.Open():
		m.menu.Close()
	case m.tooltip.Visible():
		m.tooltip.Hide()
	case m.toasts.Len() > 0:
		m.toasts.DismissOldest()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	vp := m.doc.Viewport()
	g := newGrid(int(vp.Width), int(vp.Height))
	for _, n := range m.doc.Elements() {
		if n.Style(surface.StyleDisplay) == "none" {
			continue
		}
		style, ok := m.styleOf(n)
		if !ok {
			continue
		}
		r := m.doc.Rect(n)
		g.fill(r, style)
		g.text(r, n.Text(), style)
	}
	if m.menu.Open() {
		r := m.doc.Rect(m.layers.Layer(widgets.LayerContextMenu))
		row := graphics.RectFromLTWH(r.Left, r.Top+float64(m.cursor), r.Width(), 1)
		g.fill(row, styleToolbar)
		g.text(row, m.menu.Items[m.cursor], styleToolbar)
	}
	return g.render(m.styles) + "\n" + m.help.View(m.keys)
}

func (m *Model) styleOf(n *surface.Node) (styleID, bool) {
	if s, ok := m.roles[n.ID()]; ok {
		return s, true
	}
	id := n.ID()
	switch {
	case id == widgets.LayerID(widgets.LayerTooltip):
		return styleTooltip, true
	case id == widgets.LayerID(widgets.LayerContextMenu):
		return styleMenu, true
	case strings.HasPrefix(id, widgets.LayerID(widgets.ToastPrefix)):
		return styleToast, true
	}
	return styleBlank, false
}

// Run starts the terminal host on the alternate screen and blocks until
// the user quits or ctx is done.
func Run(ctx context.Context, f *config.File) error {
	m, err := New(f)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
