package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-drift/floatdock/pkg/config"
	"github.com/go-drift/floatdock/pkg/tui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the interactive terminal demo",
		Long: `Run a terminal workbench with docked toolbars, side panels, a menu bar
and a status bar, plus a tooltip, a context menu and toasts that float
around them.

With a file argument the chrome comes from that layout file; sizes are
in terminal cells.

Press ? inside the demo for key bindings.`,
		Usage: "floatdock demo [file]",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument %q", args[1])
	}
	f := tui.DemoLayout()
	if len(args) == 1 {
		var err error
		if f, err = loadFile(args[0]); err != nil {
			return err
		}
	}
	return demo(f)
}

func demo(f *config.File) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tui.Run(ctx, f)
}
