package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/adapters/rest"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/pkg/res"
)

func NewListTasksHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListTasks(ctx)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewCreateTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateTaskIn
		if err := res.DecodeJSON(w, r, &in); err != nil {
			res.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.CreateTask(ctx, in.Title, in.Description, core.TaskStatus(in.Status))
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		log.Debug("task created", "id", t.ID)
		res.Json(w, t, http.StatusCreated)
	}
}

func NewGetTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.GetTask(ctx, r.PathValue("id"))
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewPatchTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.PatchTaskIn
		if err := res.DecodeJSON(w, r, &in); err != nil {
			res.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		p := core.TaskPatch{
			Title:       in.Title,
			Description: in.Description,
		}
		if in.Status != nil {
			st := core.TaskStatus(*in.Status)
			p.Status = &st
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.PatchTask(ctx, r.PathValue("id"), p)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewDeleteTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteTask(ctx, r.PathValue("id")); err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.NoContent(w)
	}
}
