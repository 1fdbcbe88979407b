package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, svc core.Tasks, timeout time.Duration) {
	mux.Handle("GET /health", NewHealthHandler())
	mux.Handle("GET /api/ping", NewPingHandler(log, map[string]core.Pinger{"db": svc}, timeout))

	mux.Handle("GET /api/tasks", NewListTasksHandler(log, svc, timeout))
	mux.Handle("POST /api/tasks", NewCreateTaskHandler(log, svc, timeout))
	mux.Handle("GET /api/tasks/{id}", NewGetTaskHandler(log, svc, timeout))
	mux.Handle("PATCH /api/tasks/{id}", NewPatchTaskHandler(log, svc, timeout))
	mux.Handle("DELETE /api/tasks/{id}", NewDeleteTaskHandler(log, svc, timeout))
}
