package handlers_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
)

var errStoreDown = errors.New("connection refused")

// memDB keeps tasks in insertion order; it lists newest first.
type memDB struct {
	mu    sync.Mutex
	tasks []core.Task
	down  atomic.Bool
}

func (db *memDB) Ping(context.Context) error {
	if db.down.Load() {
		return errStoreDown
	}
	return nil
}

func (db *memDB) ListTasks(context.Context) ([]core.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.down.Load() {
		return nil, errStoreDown
	}
	out := make([]core.Task, 0, len(db.tasks))
	for i := len(db.tasks) - 1; i >= 0; i-- {
		out = append(out, db.tasks[i])
	}
	return out, nil
}

func (db *memDB) CreateTask(_ context.Context, t core.Task) (core.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := t.Validate(); err != nil {
		return core.Task{}, err
	}
	db.tasks = append(db.tasks, t)
	return t, nil
}

func (db *memDB) GetTask(_ context.Context, id string) (core.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, t := range db.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Task{}, core.ErrTaskNotFound
}

func (db *memDB) PatchTask(_ context.Context, id string, p core.TaskPatch, updatedAt time.Time) (core.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, t := range db.tasks {
		if t.ID == id {
			t = p.Apply(t)
			t.UpdatedAt = core.NextUpdatedAt(t.UpdatedAt, updatedAt)
			db.tasks[i] = t
			return t, nil
		}
	}
	return core.Task{}, core.ErrTaskNotFound
}

func (db *memDB) DeleteTask(_ context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, t := range db.tasks {
		if t.ID == id {
			db.tasks = append(db.tasks[:i], db.tasks[i+1:]...)
			return nil
		}
	}
	return core.ErrTaskNotFound
}

func (db *memDB) count() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.tasks)
}
