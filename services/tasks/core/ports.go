package core

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// DB is the persistence port of the tasks service.
type DB interface {
	Pinger

	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, t Task) (Task, error)
	GetTask(ctx context.Context, id string) (Task, error)
	// PatchTask stamps NextUpdatedAt(stored updated_at, updatedAt).
	PatchTask(ctx context.Context, id string, p TaskPatch, updatedAt time.Time) (Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Tasks is what the transport adapters need from the service.
type Tasks interface {
	Pinger

	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, title, description string, status TaskStatus) (Task, error)
	GetTask(ctx context.Context, id string) (Task, error)
	PatchTask(ctx context.Context, id string, p TaskPatch) (Task, error)
	DeleteTask(ctx context.Context, id string) error
}

var _ Tasks = (*Service)(nil)
