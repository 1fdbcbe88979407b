package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/pkg/res"
)

// Messages sent to API callers.
const (
	msgNotFound = "Task not found"
	msgInternal = "Internal server error"
)

// WriteErr maps service errors to HTTP responses. Unknown errors are logged
// and answered with a generic 500.
func WriteErr(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrTaskInvalidArgs):
		res.Error(w, validationMessage(err), http.StatusBadRequest)
	case errors.Is(err, core.ErrTaskNotFound):
		res.Error(w, msgNotFound, http.StatusNotFound)
	default:
		log.Error("internal error", "error", err)
		res.Error(w, msgInternal, http.StatusInternalServerError)
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), core.ErrTaskInvalidArgs.Error()+": ")
	if msg == "" {
		return core.ErrTaskInvalidArgs.Error()
	}
	return msg
}
