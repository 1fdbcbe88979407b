package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// HelpCmd prints every command of its registry.
type HelpCmd struct {
	registry *Registry
}

func (c *HelpCmd) Name() string                { return "help" }
func (c *HelpCmd) Aliases() []string           { return nil }
func (c *HelpCmd) Synopsis() string            { return "Print usage" }
func (c *HelpCmd) Usage() string               { return "board help" }
func (c *HelpCmd) NeedsBackend() bool          { return false }
func (c *HelpCmd) RegisterFlags(*flag.FlagSet) {}

func (c *HelpCmd) Run(_ context.Context, _ *App, _ []string, out, _ io.Writer) int {
	fmt.Fprintln(out, "Usage:")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, cmd := range c.registry.All() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), cmd.Synopsis())
	}
	tw.Flush()

	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Running board with no command is the same as board list.

Common flags:
  -q, -quiet   Suppress informational output

Exit codes: 0 success, 1 bad input or unknown task, 2 cache or network failure.
`
