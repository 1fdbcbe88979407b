package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// MoveCmd puts a task into another column. Any column may follow any other.
type MoveCmd struct{}

func (c *MoveCmd) Name() string                { return "move" }
func (c *MoveCmd) Aliases() []string           { return []string{"mv"} }
func (c *MoveCmd) Synopsis() string            { return "Move a task to another column" }
func (c *MoveCmd) Usage() string               { return "board move <id> <todo|inprogress|done>" }
func (c *MoveCmd) NeedsBackend() bool          { return true }
func (c *MoveCmd) RegisterFlags(*flag.FlagSet) {}

func (c *MoveCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		return usageError(errOut, c)
	}

	status, err := core.ParseStatus(args[1])
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid status: %s\n", args[1])
		return exitcode.UserError
	}

	t, err := app.Board.Move(ctx, args[0], status)
	if err != nil {
		return report(errOut, app.Board.Err(), err)
	}
	printOK(app, out, "%s -> %s", t.ID, t.Status.Label())
	return exitcode.Success
}

// RmCmd deletes a task.
type RmCmd struct{}

func (c *RmCmd) Name() string                { return "rm" }
func (c *RmCmd) Aliases() []string           { return []string{"delete"} }
func (c *RmCmd) Synopsis() string            { return "Delete a task" }
func (c *RmCmd) Usage() string               { return "board rm <id>" }
func (c *RmCmd) NeedsBackend() bool          { return true }
func (c *RmCmd) RegisterFlags(*flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		return usageError(errOut, c)
	}

	if err := app.Board.Remove(ctx, args[0]); err != nil {
		return report(errOut, app.Board.Err(), err)
	}
	printOK(app, out, "ok")
	return exitcode.Success
}
