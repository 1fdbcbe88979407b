package cli

import (
	"context"
	"flag"
	"io"

	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// CacheCmd manages the offline copy of the board.
type CacheCmd struct{}

func (c *CacheCmd) Name() string                { return "cache" }
func (c *CacheCmd) Aliases() []string           { return nil }
func (c *CacheCmd) Synopsis() string            { return "Drop the offline copy of the board" }
func (c *CacheCmd) Usage() string               { return "board cache clear" }
func (c *CacheCmd) NeedsBackend() bool          { return true }
func (c *CacheCmd) RegisterFlags(*flag.FlagSet) {}

func (c *CacheCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) != 1 || args[0] != "clear" {
		return usageError(errOut, c)
	}

	// tasks created offline are lost; they are never sent to the server
	if err := app.Cache.Clear(ctx); err != nil {
		return report(errOut, "", err)
	}
	printOK(app, out, "ok")
	return exitcode.Success
}
