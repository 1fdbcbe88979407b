package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/export"
	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// ExportCmd writes a snapshot of the board to stdout or a file.
type ExportCmd struct {
	format string
	path   string
}

func (c *ExportCmd) Name() string       { return "export" }
func (c *ExportCmd) Aliases() []string  { return nil }
func (c *ExportCmd) Synopsis() string   { return "Export the board as json, csv or pdf" }
func (c *ExportCmd) Usage() string      { return "board export [-f json|csv|pdf] [-o <path>]" }
func (c *ExportCmd) NeedsBackend() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", export.FormatJSON, "")
	fs.StringVar(&c.format, "f", export.FormatJSON, "")
	fs.StringVar(&c.path, "output", "", "")
	fs.StringVar(&c.path, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, c)
	}

	format := strings.ToLower(strings.TrimSpace(c.format))
	switch format {
	case export.FormatJSON, export.FormatCSV, export.FormatPDF:
	default:
		fmt.Fprintf(errOut, "error: unknown export format: %s\n", c.format)
		return exitcode.UserError
	}

	b := app.Board
	if err := b.Load(ctx); err != nil {
		return report(errOut, b.Err(), err)
	}

	if c.path == "" {
		if err := export.Write(out, format, b.Columns()); err != nil {
			fmt.Fprintf(errOut, "error: export failed: %v\n", err)
			return exitcode.BackendError
		}
		return exitcode.Success
	}

	if err := writeFile(c.path, format, app); err != nil {
		fmt.Fprintf(errOut, "error: export failed: %v\n", err)
		return exitcode.BackendError
	}
	printOK(app, out, "%s", c.path)
	return exitcode.Success
}

func writeFile(path, format string, app *App) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return export.Write(f, format, app.Board.Columns())
}
