package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/output"
	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// ListCmd prints the board, or one column of it.
type ListCmd struct {
	status string
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "Show the board" }
func (c *ListCmd) Usage() string      { return "board list [-s <status>]" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *ListCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, c)
	}

	var only core.TaskStatus
	if c.status != "" {
		st, err := core.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
			return exitcode.UserError
		}
		only = st
	}

	b := app.Board
	if err := b.Load(ctx); err != nil {
		return report(errOut, b.Err(), err)
	}

	if only == "" {
		output.FormatBoard(out, b.Columns())
		return exitcode.Success
	}
	output.FormatColumn(out, core.Column{Status: only, Title: only.Label(), Tasks: b.ByStatus(only)})
	return exitcode.Success
}

// ShowCmd prints one task.
type ShowCmd struct{}

func (c *ShowCmd) Name() string                 { return "show" }
func (c *ShowCmd) Aliases() []string            { return nil }
func (c *ShowCmd) Synopsis() string             { return "Show one task" }
func (c *ShowCmd) Usage() string                { return "board show <id>" }
func (c *ShowCmd) NeedsBackend() bool           { return true }
func (c *ShowCmd) RegisterFlags(*flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		return usageError(errOut, c)
	}

	t, code := loadTask(ctx, app.Board, args[0], errOut)
	if code != exitcode.Success {
		return code
	}
	output.FormatDetail(out, t)
	return exitcode.Success
}

// loadTask loads the board and looks id up in it.
func loadTask(ctx context.Context, b *core.Board, id string, errOut io.Writer) (core.Task, int) {
	if err := b.Load(ctx); err != nil {
		return core.Task{}, report(errOut, b.Err(), err)
	}
	t, found := b.Find(id)
	if !found {
		fmt.Fprintf(errOut, "error: task not found: %s\n", id)
		return core.Task{}, exitcode.UserError
	}
	return t, exitcode.Success
}
