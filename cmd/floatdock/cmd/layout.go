package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/go-drift/floatdock/pkg/config"
	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/graphics"
	"github.com/go-drift/floatdock/pkg/reflow"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Compute a docked layout and print its rectangles",
		Long: `Load a layout file, compute the docked chrome for its viewport and
print the rectangle of every toolbar, panel, bar and the workspace.

Without a file argument, floatdock.yaml in the current directory is used
when present, otherwise an empty layout.

Flags:
  --json             Print the layout as JSON
  --viewport WxH     Override the viewport size`,
		Usage: "floatdock layout [file] [--json] [--viewport WxH]",
		Run:   runLayout,
	})
}

type layoutOptions struct {
	path     string
	json     bool
	viewport *graphics.Size
}

func runLayout(args []string) error {
	opts := layoutOptions{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--json":
			opts.json = true
		case "--viewport":
			if i+1 >= len(args) {
				return fmt.Errorf("--viewport requires a value")
			}
			size, err := parseSize(args[i+1])
			if err != nil {
				return fmt.Errorf("--viewport: %w", err)
			}
			opts.viewport = &size
			i++
		default:
			if opts.path != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			opts.path = args[i]
		}
	}

	f, err := loadFile(opts.path)
	if err != nil {
		return err
	}
	if opts.viewport != nil {
		f.Viewport.Width = opts.viewport.Width
		f.Viewport.Height = opts.viewport.Height
	}

	l, err := computeLayout(f)
	if err != nil {
		return err
	}
	if opts.json {
		data, err := json.MarshalIndent(engine.SnapshotLayout(l), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	printLayout(f, l)
	return nil
}

func loadFile(path string) (*config.File, error) {
	if path == "" {
		return config.LoadOptional(".")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return config.Load(abs)
}

// computeLayout materializes f into a fresh document and runs one reflow
// pass over it.
func computeLayout(f *config.File) (dock.Layout, error) {
	frames := &reflow.ManualFrames{}
	doc, eng := f.NewEngine(engine.Options{Frames: frames})
	if _, err := f.Build(doc, eng); err != nil {
		return dock.Layout{}, err
	}
	frames.Flush()
	return eng.Layout(), nil
}

func printLayout(f *config.File, l dock.Layout) {
	fmt.Fprintf(out, "%s (%gx%g, margin %g)\n\n", f.Name, l.Viewport.Width, l.Viewport.Height, f.Margin)
	fmt.Fprintf(out, "%-14s %-10s %-7s %8s %8s %8s %8s\n", "ID", "ROLE", "SIDE", "LEFT", "TOP", "WIDTH", "HEIGHT")
	row := func(b dock.Box, side string) {
		id := ""
		if b.El != nil {
			id = b.El.ID()
		}
		if !b.Visible {
			fmt.Fprintf(out, "%-14s %-10s %-7s %8s\n", id, b.Role, side, "hidden")
			return
		}
		r := b.Rect
		fmt.Fprintf(out, "%-14s %-10s %-7s %8g %8g %8g %8g\n", id, b.Role, side, r.Left, r.Top, r.Width(), r.Height())
	}
	if l.MenuBar != nil {
		row(*l.MenuBar, "top")
	}
	for _, b := range l.Toolbars {
		row(b, b.Side.String())
	}
	for _, b := range l.Panels {
		row(b, b.Side.String())
	}
	if l.StatusBar != nil {
		row(*l.StatusBar, "bottom")
	}
	if l.Workspace.El != nil {
		row(l.Workspace, "-")
	}

	fmt.Fprintln(out)
	for _, side := range dock.Sides {
		fmt.Fprintf(out, "offset %-7s %g\n", side, l.Offsets[side])
	}
}
