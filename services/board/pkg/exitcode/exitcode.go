// Package exitcode defines the exit codes of the board CLI.
package exitcode

import (
	"errors"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError covers bad arguments, validation failures and unknown ids.
	UserError = 1

	// BackendError covers cache and network failures.
	BackendError = 2
)

// FromError picks the exit code for an operation error.
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrNotFound):
		return UserError
	default:
		return BackendError
	}
}
