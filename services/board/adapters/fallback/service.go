// Package fallback tries the tasks API first and serves from the local
// cache only when the API is unreachable.
package fallback

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

type Service struct {
	log     *slog.Logger
	primary core.Tasks
	backup  core.Tasks
}

func New(log *slog.Logger, primary, backup core.Tasks) *Service {
	return &Service{log: log, primary: primary, backup: backup}
}

// unavailable reports whether err should be retried against the backup.
// Validation and not-found answers from the API are final.
func (s *Service) unavailable(op string, err error) bool {
	if err == nil || !errors.Is(err, core.ErrUnavailable) {
		return false
	}
	s.log.Warn("tasks api unavailable, using local cache", "op", op, "error", err)
	return true
}

func (s *Service) ListTasks(ctx context.Context) ([]core.Task, error) {
	items, err := s.primary.ListTasks(ctx)
	if s.unavailable("list", err) {
		return s.backup.ListTasks(ctx)
	}
	return items, err
}

func (s *Service) CreateTask(ctx context.Context, in core.TaskInput) (core.Task, error) {
	t, err := s.primary.CreateTask(ctx, in)
	if s.unavailable("create", err) {
		return s.backup.CreateTask(ctx, in)
	}
	return t, err
}

func (s *Service) PatchTask(ctx context.Context, id string, p core.TaskPatch) (core.Task, error) {
	t, err := s.primary.PatchTask(ctx, id, p)
	if s.unavailable("update", err) {
		return s.backup.PatchTask(ctx, id, p)
	}
	return t, err
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	err := s.primary.DeleteTask(ctx, id)
	if s.unavailable("delete", err) {
		return s.backup.DeleteTask(ctx, id)
	}
	return err
}

var _ core.Tasks = (*Service)(nil)
