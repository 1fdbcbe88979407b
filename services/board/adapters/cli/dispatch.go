package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// AppFactory builds the App on first use so commands like help run
// without a backend.
type AppFactory func(ctx context.Context) (*App, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *Registry
	factory  AppFactory
}

func NewDispatcher(registry *Registry, factory AppFactory) *Dispatcher {
	return &Dispatcher{registry: registry, factory: factory}
}

// Run parses args and dispatches to the named command. No args means list.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		args = []string{"list"}
	}

	name := args[0]
	cmd, found := d.registry.Find(name)
	if !found || strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var quiet bool
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&quiet, "q", false, "")
	cmd.RegisterFlags(fs)

	positional, err := parseInterspersed(fs, args[1:])
	if err != nil {
		return flagError(errOut, err)
	}

	var app *App
	if cmd.NeedsBackend() {
		if app, err = d.factory(ctx); err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
		app.Quiet = quiet
	}

	return cmd.Run(ctx, app, positional, out, errOut)
}

func flagError(errOut io.Writer, err error) int {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag provided but not defined: "):
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", strings.TrimPrefix(msg, "flag provided but not defined: "))
	case strings.HasPrefix(msg, "flag needs an argument: "):
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", strings.TrimPrefix(msg, "flag needs an argument: "))
	default:
		fmt.Fprintf(errOut, "error: %s\n", msg)
	}
	return exitcode.UserError
}

// parseInterspersed lets flags follow positional args, so
// "board edit <id> -s done" works. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// flag stops at "--" and drops it; rest then follows it in args
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
