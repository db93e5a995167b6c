// Package cmd implements the floatdock CLI commands.
//
// A root command dispatches to subcommands (layout, place, serve, demo).
// Global flags are handled before dispatch.
package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/go-drift/floatdock/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// out and errOut are where commands write. Tests replace them.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// Command is one floatdock subcommand.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "floatdock",
	Short: "floatdock - floating placement and docked chrome layout",
	Long: `floatdock computes where floating elements go next to a reference and
how stacked toolbars, side panels, a menu bar and a status bar share the
viewport with the workspace.

Use "floatdock <command> --help" for more information about a command.`,
	Usage: "floatdock <command> [flags]",
}

// commands maps names to registered subcommands.
var commands = make(map[string]*Command)

// RegisterCommand makes cmd available by name. Commands register
// themselves from init.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

// globals are the flags accepted before the command name.
type globals struct {
	help    bool
	version bool
	verbose bool
}

// splitGlobals consumes global flags up to the first other argument, which
// is the command name.
func splitGlobals(args []string) (globals, []string) {
	var g globals
	for i, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			g.help = true
		case "-v", "--version", "version":
			g.version = true
		case "--verbose":
			g.verbose = true
		default:
			return g, args[i:]
		}
	}
	return g, nil
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func run(args []string) error {
	g, rest := splitGlobals(args)
	// --verbose is also accepted after the command name.
	if i := slices.Index(rest, "--verbose"); i > 0 {
		g.verbose = true
		rest = slices.Delete(slices.Clone(rest), i, i+1)
	}
	if g.verbose {
		errors.SetHandler(&errors.LogHandler{Verbose: true, Out: errOut})
	}

	switch {
	case g.version:
		fmt.Fprintf(out, "floatdock version %s (built %s)\n", Version, BuildTime)
		return nil
	case g.help || len(rest) == 0:
		printHelp()
		return nil
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(errOut, "Error: unknown command %q\n\n", rest[0])
		printHelp()
		return fmt.Errorf("unknown command: %s", rest[0])
	}
	if slices.ContainsFunc(rest[1:], isHelpFlag) {
		printCommandHelp(cmd)
		return nil
	}
	return cmd.Run(rest[1:])
}

func printHelp() {
	fmt.Fprintln(out, rootCmd.Long)
	fmt.Fprintf(out, "\nUsage:\n  %s\n\nCommands:\n", rootCmd.Usage)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintf(out, "  %-14s %s\n", name, commands[name].Short)
	}
	fmt.Fprint(out, `
Flags:
  -h, --help           Show help for a command
  -v, --version        Show version information
  --verbose            Report layout errors with stack traces

Examples:
  floatdock layout chrome.yaml              Print docked rectangles
  floatdock place --ref 800,10,100,20 --target 200x60
  floatdock demo                            Run the terminal demo
`)
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintf(out, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.Usage)
}
