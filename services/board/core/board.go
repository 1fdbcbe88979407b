package core

import (
	"context"
	"fmt"
	"strings"
)

// Board holds the task list of one session. It is not safe for
// concurrent use.
type Board struct {
	svc   Tasks
	tasks []Task
	err   string
}

func NewBoard(svc Tasks) *Board {
	return &Board{svc: svc, tasks: []Task{}}
}

// Err is the message of the last failed operation, empty after a success.
func (b *Board) Err() string {
	return b.err
}

// Tasks returns a copy of the current list.
func (b *Board) Tasks() []Task {
	out := make([]Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Find returns the task with the given id from the loaded list.
func (b *Board) Find(id string) (Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Load replaces the list with the service's.
func (b *Board) Load(ctx context.Context) error {
	b.err = ""
	items, err := b.svc.ListTasks(ctx)
	if err != nil {
		return b.fail("Failed to load tasks", err)
	}
	if items == nil {
		items = []Task{}
	}
	b.tasks = items
	return nil
}

// Reload is Load under the name the UI uses for a refresh.
func (b *Board) Reload(ctx context.Context) error {
	return b.Load(ctx)
}

func (b *Board) Add(ctx context.Context, in TaskInput) (Task, error) {
	b.err = ""
	t, err := b.svc.CreateTask(ctx, in)
	if err != nil {
		return Task{}, b.fail("Failed to add task", err)
	}
	b.tasks = append(b.tasks, t)
	return t, nil
}

func (b *Board) Update(ctx context.Context, id string, p TaskPatch) (Task, error) {
	b.err = ""
	t, err := b.svc.PatchTask(ctx, id, p)
	if err != nil {
		return Task{}, b.fail("Failed to update task", err)
	}
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks[i] = t
		}
	}
	return t, nil
}

// Move changes only the status. Any status may follow any other.
func (b *Board) Move(ctx context.Context, id string, status TaskStatus) (Task, error) {
	return b.Update(ctx, id, TaskPatch{Status: &status})
}

func (b *Board) Remove(ctx context.Context, id string) error {
	b.err = ""
	if err := b.svc.DeleteTask(ctx, id); err != nil {
		return b.fail("Failed to delete task", err)
	}
	kept := make([]Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	b.tasks = kept
	return nil
}

// ByStatus filters the list, keeping its order.
func (b *Board) ByStatus(status TaskStatus) []Task {
	out := []Task{}
	for _, t := range b.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Columns partitions the list into the three board columns.
func (b *Board) Columns() []Column {
	cols := make([]Column, 0, len(Statuses))
	for _, st := range Statuses {
		cols = append(cols, Column{Status: st, Title: st.Label(), Tasks: b.ByStatus(st)})
	}
	return cols
}

func (b *Board) fail(action string, err error) error {
	b.err = fmt.Sprintf("%s: %v", action, err)
	return err
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
