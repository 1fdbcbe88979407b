package core_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
)

type fakeDB struct {
	mu sync.RWMutex

	tasks   map[string]core.Task
	pingErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{tasks: make(map[string]core.Task)}
}

func (db *fakeDB) Ping(context.Context) error {
	return db.pingErr
}

func (db *fakeDB) ListTasks(context.Context) ([]core.Task, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if len(db.tasks) == 0 {
		return nil, nil
	}

	out := make([]core.Task, 0, len(db.tasks))
	for _, t := range db.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (db *fakeDB) CreateTask(_ context.Context, t core.Task) (core.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if err := t.Validate(); err != nil {
		return core.Task{}, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.tasks[t.ID] = t
	return t, nil
}

func (db *fakeDB) GetTask(_ context.Context, id string) (core.Task, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, ok := db.tasks[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}
	return t, nil
}

func (db *fakeDB) PatchTask(_ context.Context, id string, p core.TaskPatch, updatedAt time.Time) (core.Task, error) {
	if err := p.Validate(); err != nil {
		return core.Task{}, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	t, ok := db.tasks[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}
	t = p.Apply(t)
	t.UpdatedAt = core.NextUpdatedAt(t.UpdatedAt, updatedAt)
	db.tasks[id] = t
	return t, nil
}

func (db *fakeDB) DeleteTask(_ context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.tasks[id]; !ok {
		return core.ErrTaskNotFound
	}
	delete(db.tasks, id)
	return nil
}
