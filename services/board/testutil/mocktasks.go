// Package testutil provides test doubles shared by the board packages.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

// MockTasks is a testify mock of core.Tasks.
type MockTasks struct {
	mock.Mock
}

func (m *MockTasks) ListTasks(ctx context.Context) ([]core.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Task), args.Error(1)
}

func (m *MockTasks) CreateTask(ctx context.Context, in core.TaskInput) (core.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(core.Task), args.Error(1)
}

func (m *MockTasks) PatchTask(ctx context.Context, id string, p core.TaskPatch) (core.Task, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(core.Task), args.Error(1)
}

func (m *MockTasks) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ core.Tasks = (*MockTasks)(nil)
