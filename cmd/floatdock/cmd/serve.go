package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-drift/floatdock/pkg/engine"
)

func init() {
	RegisterCommand(&Command{
		Name:  "serve",
		Short: "Serve a layout's debug endpoints over HTTP",
		Long: `Build a layout file into a live engine and serve its debug endpoints
on localhost until interrupted:

  /layout   current docked rectangles and side offsets
  /stats    reflow pass counters
  /health   liveness

Flags:
  --port N      Port to listen on (default: 9231, 0 picks a free port)`,
		Usage: "floatdock serve [file] [--port N]",
		Run:   runServe,
	})
}

// DefaultDebugPort is the port serve listens on without --port.
const DefaultDebugPort = 9231

func runServe(args []string) error {
	path := ""
	port := DefaultDebugPort
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--port":
			if i+1 >= len(args) {
				return fmt.Errorf("--port requires a value")
			}
			p, err := strconv.Atoi(args[i+1])
			if err != nil || p < 0 {
				return fmt.Errorf("--port: invalid port %q", args[i+1])
			}
			port = p
			i++
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			path = args[i]
		}
	}

	f, err := loadFile(path)
	if err != nil {
		return err
	}
	doc, eng := f.NewEngine(engine.Options{})
	if _, err := f.Build(doc, eng); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, eng, port)
}

func serve(ctx context.Context, eng *engine.Engine, port int) error {
	bound, err := eng.StartDebugServer(port)
	if err != nil {
		return err
	}
	defer eng.StopDebugServer()
	fmt.Fprintf(out, "Serving layout debug endpoints on http://localhost:%d\n", bound)

	if err := eng.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	<-ctx.Done()
	return nil
}
