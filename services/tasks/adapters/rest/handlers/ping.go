package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/pkg/res"
)

// NewHealthHandler reports process liveness only.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		res.Json(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}

// NewPingHandler checks every dependency and answers 503 if any is down.
func NewPingHandler(log *slog.Logger, pingmap map[string]core.Pinger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		out := map[string]string{}
		code := http.StatusOK

		for name, p := range pingmap {
			if err := p.Ping(ctx); err != nil {
				log.Warn("ping failed", "service", name, "error", err)
				out[name] = "down"
				code = http.StatusServiceUnavailable
			} else {
				out[name] = "ok"
			}
		}

		res.Json(w, map[string]any{"services": out}, code)
	}
}
