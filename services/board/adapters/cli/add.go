package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// AddCmd creates a task through the task form.
type AddCmd struct {
	description string
	status      string
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "board add [-d <description>] [-s <status>] <title...>" }
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *AddCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	var status core.TaskStatus
	if c.status != "" {
		st, err := core.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
			return exitcode.UserError
		}
		status = st
	}

	form := core.NewTaskForm(status)
	form.Title = strings.Join(args, " ")
	form.Description = c.description

	t, err := form.Submit(ctx, app.Board)
	if err != nil {
		return reportForm(errOut, app.Board, form, err)
	}
	printOK(app, out, "%s", t.ID)
	return exitcode.Success
}

// reportForm prefers the board's message and falls back to the form's.
func reportForm(errOut io.Writer, b *core.Board, f *core.TaskForm, err error) int {
	msg := b.Err()
	if msg == "" {
		msg = f.Err()
	}
	return report(errOut, msg, err)
}
