package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// optString is a string flag that remembers whether it was given, so an
// explicit empty description can clear the field.
type optString struct {
	val string
	set bool
}

func (o *optString) String() string { return o.val }

func (o *optString) Set(s string) error {
	o.val, o.set = s, true
	return nil
}

// EditCmd changes the given fields of a task through the edit form.
type EditCmd struct {
	title       optString
	description optString
	status      optString
}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return nil }
func (c *EditCmd) Synopsis() string   { return "Edit a task" }
func (c *EditCmd) Usage() string      { return "board edit <id> [-t <title>] [-d <description>] [-s <status>]" }
func (c *EditCmd) NeedsBackend() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.title, c.description, c.status = optString{}, optString{}, optString{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.description, "description", "")
	fs.Var(&c.description, "d", "")
	fs.Var(&c.status, "status", "")
	fs.Var(&c.status, "s", "")
}

func (c *EditCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		return usageError(errOut, c)
	}
	if !c.title.set && !c.description.set && !c.status.set {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	var status core.TaskStatus
	if c.status.set {
		st, err := core.ParseStatus(c.status.val)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status.val)
			return exitcode.UserError
		}
		status = st
	}

	t, code := loadTask(ctx, app.Board, args[0], errOut)
	if code != exitcode.Success {
		return code
	}

	form := core.EditTaskForm(t)
	if c.title.set {
		form.Title = c.title.val
	}
	if c.description.set {
		form.Description = c.description.val
	}
	if c.status.set {
		form.Status = status
	}

	if _, err := form.Submit(ctx, app.Board); err != nil {
		return reportForm(errOut, app.Board, form, err)
	}
	printOK(app, out, "ok")
	return exitcode.Success
}
