package config

import (
	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/surface"
	"github.com/go-drift/floatdock/pkg/widgets"
)

// WorkspaceID is the id of the workspace element Build creates.
const WorkspaceID = "workspace"

// Chrome is a layout materialized into a document.
type Chrome struct {
	MenuBar   *widgets.MenuBar
	StatusBar *widgets.StatusBar
	Toolbars  []*widgets.Toolbar
	Panels    []*widgets.SidePanel
	Workspace *surface.Node
}

// Build creates an element for every entry in f, appends them to doc in
// file order and registers them with eng. Entries marked hidden start
// hidden. The workspace is appended last.
func (f *File) Build(doc *surface.Document, eng *engine.Engine) (*Chrome, error) {
	c := &Chrome{}
	create := func(id, label string, size graphics.Size) (*surface.Node, error) {
		n := doc.CreateElement(id)
		n.SetText(label)
		n.SetNaturalSize(size)
		if err := doc.Append(n); err != nil {
			return nil, errors.Config("config.Build", id, err)
		}
		return n, nil
	}

	if b := f.MenuBar; b != nil {
		n, err := create(b.ID, b.Label, graphics.Size{Height: b.Height})
		if err != nil {
			return nil, err
		}
		c.MenuBar = &widgets.MenuBar{Engine: eng, El: n}
		c.MenuBar.Mount()
		if b.Hidden {
			c.MenuBar.Toggle()
		}
	}

	for _, t := range f.Toolbars {
		side, err := dock.ParseSide(t.Side)
		if err != nil {
			return nil, errors.Config("config.Build", t.ID, err)
		}
		size := graphics.Size{Height: t.Size}
		if side.Horizontal() {
			size = graphics.Size{Width: t.Size}
		}
		n, err := create(t.ID, t.Label, size)
		if err != nil {
			return nil, err
		}
		tb := &widgets.Toolbar{Engine: eng, El: n, Side: side}
		if err := tb.Mount(); err != nil {
			return nil, err
		}
		tb.SetHidden(t.Hidden)
		c.Toolbars = append(c.Toolbars, tb)
	}

	for _, p := range f.Panels {
		side, err := dock.ParseSide(p.Side)
		if err != nil {
			return nil, errors.Config("config.Build", p.ID, err)
		}
		n, err := create(p.ID, p.Label, graphics.Size{Width: p.Width})
		if err != nil {
			return nil, err
		}
		sp := &widgets.SidePanel{Engine: eng, El: n, Side: side, Width: p.Width}
		if err := sp.Mount(); err != nil {
			return nil, err
		}
		sp.SetHidden(p.Hidden)
		c.Panels = append(c.Panels, sp)
	}

	if b := f.StatusBar; b != nil {
		n, err := create(b.ID, b.Label, graphics.Size{Height: b.Height})
		if err != nil {
			return nil, err
		}
		c.StatusBar = &widgets.StatusBar{Engine: eng, El: n}
		c.StatusBar.Mount()
		if b.Hidden {
			c.StatusBar.Toggle()
		}
	}

	ws, err := create(WorkspaceID, "", graphics.Size{})
	if err != nil {
		return nil, err
	}
	c.Workspace = ws
	eng.Registry().SetWorkspace(ws)
	return c, nil
}

// NewEngine creates a document sized to f's viewport and an engine over
// it using f's margin.
func (f *File) NewEngine(opts engine.Options) (*surface.Document, *engine.Engine) {
	doc := surface.NewDocument(graphics.Size{Width: f.Viewport.Width, Height: f.Viewport.Height})
	opts.Host = doc
	if opts.Margin == 0 {
		opts.Margin = f.Margin
	}
	return doc, engine.New(opts)
}
