package core

import "context"

// Tasks is the CRUD contract the board works against. Implementations
// classify failures with ErrValidation, ErrNotFound and ErrUnavailable.
type Tasks interface {
	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, in TaskInput) (Task, error)
	PatchTask(ctx context.Context, id string, p TaskPatch) (Task, error)
	DeleteTask(ctx context.Context, id string) error
}
