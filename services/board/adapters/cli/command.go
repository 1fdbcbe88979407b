// Package cli provides the board commands and their dispatcher.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
	"github.com/bhaktofmahakal/Kanban-board/services/board/pkg/exitcode"
)

// CacheClearer drops the offline copy of the board.
type CacheClearer interface {
	Clear(ctx context.Context) error
}

// App is what a command runs against.
type App struct {
	Board *core.Board
	Cache CacheClearer
	Quiet bool
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend reports whether Run needs an App. help does not.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional args left after flag
	// parsing and returns the exit code. app is nil when NeedsBackend is false.
	Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int
}

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // name and aliases map to command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// NewDefaultRegistry returns a registry with every board command.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []Command{
		&ListCmd{},
		&ShowCmd{},
		&AddCmd{},
		&EditCmd{},
		&MoveCmd{},
		&RmCmd{},
		&ExportCmd{},
		&CacheCmd{},
		&HelpCmd{registry: r},
	} {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a command. It fails if the name or an alias is taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if _, exists := r.cmds[name]; exists {
			return fmt.Errorf("command already registered: %s", name)
		}
	}
	for _, name := range names {
		r.cmds[name] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Name()] = cmd
	}

	out := make([]Command, 0, len(seen))
	for _, cmd := range seen {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// report prints the board's message for err, or err itself, and maps it to
// an exit code.
func report(errOut io.Writer, msg string, err error) int {
	if msg == "" {
		msg = err.Error()
	}
	fmt.Fprintf(errOut, "error: %s\n", msg)
	return exitcode.FromError(err)
}

func usageError(errOut io.Writer, c Command) int {
	fmt.Fprintf(errOut, "error: usage: %s\n", c.Usage())
	return exitcode.UserError
}

func printOK(app *App, out io.Writer, format string, args ...any) {
	if app.Quiet {
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}
