// Package local implements core.Tasks over a single cached document.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/local/blob"
	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

// DefaultKey is the cache key the web client used as well.
const DefaultKey = "kanban_tasks"

// IDPrefix marks ids assigned offline; server ids are UUIDs.
const IDPrefix = "local-"

// Cache keeps the whole task list as one JSON array under one key. Every
// mutation reads the full list, changes it in memory and writes it back.
type Cache struct {
	mu    sync.Mutex
	store blob.Store
	key   string
	now   func() time.Time
}

type Option func(*Cache)

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(store blob.Store, key string, opts ...Option) *Cache {
	if key == "" {
		key = DefaultKey
	}
	c := &Cache{store: store, key: key, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTasks returns the cached tasks, newest first with ties broken by id
// descending, as the server orders them. A missing document is an empty list.
func (c *Cache) ListTasks(ctx context.Context) ([]core.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tasks, err := c.read(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})
	return tasks, nil
}

func (c *Cache) CreateTask(ctx context.Context, in core.TaskInput) (core.Task, error) {
	if err := core.ValidateInput(in); err != nil {
		return core.Task{}, err
	}
	status := in.Status
	if status == "" {
		status = core.StatusTODO
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tasks, err := c.read(ctx)
	if err != nil {
		return core.Task{}, err
	}

	now := c.timestamp()
	t := core.Task{
		ID:          newID(now, tasks),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tasks = append(tasks, t)

	if err := c.write(ctx, tasks); err != nil {
		return core.Task{}, err
	}
	return t, nil
}

func (c *Cache) PatchTask(ctx context.Context, id string, p core.TaskPatch) (core.Task, error) {
	if err := core.ValidatePatch(p); err != nil {
		return core.Task{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tasks, err := c.read(ctx)
	if err != nil {
		return core.Task{}, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return core.Task{}, core.ErrNotFound
	}

	t := p.Apply(tasks[i])
	// updatedAt advances on every mutation, even within one clock tick
	ts := c.timestamp()
	if !ts.After(t.UpdatedAt) {
		ts = t.UpdatedAt.Add(time.Millisecond)
	}
	t.UpdatedAt = ts
	tasks[i] = t

	if err := c.write(ctx, tasks); err != nil {
		return core.Task{}, err
	}
	return t, nil
}

func (c *Cache) DeleteTask(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tasks, err := c.read(ctx)
	if err != nil {
		return err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return core.ErrNotFound
	}
	tasks = append(tasks[:i], tasks[i+1:]...)

	return c.write(ctx, tasks)
}

// Clear drops the cached document.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("clear cache %q: %w", c.key, err)
	}
	return nil
}

func (c *Cache) read(ctx context.Context) ([]core.Task, error) {
	data, err := c.store.Get(ctx, c.key)
	if errors.Is(err, blob.ErrNotExist) {
		return []core.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache %q: %w", c.key, err)
	}

	tasks := []core.Task{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return tasks, nil
	}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode cache %q: %w", c.key, err)
	}
	if tasks == nil {
		tasks = []core.Task{}
	}
	return tasks, nil
}

func (c *Cache) write(ctx context.Context, tasks []core.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := c.store.Put(ctx, c.key, data); err != nil {
		return fmt.Errorf("write cache %q: %w", c.key, err)
	}
	return nil
}

func (c *Cache) timestamp() time.Time {
	return c.now().UTC().Truncate(time.Millisecond)
}

// newID derives an id from the clock and bumps it past any id already in
// the list.
func newID(now time.Time, tasks []core.Task) string {
	taken := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		taken[t.ID] = struct{}{}
	}
	n := now.UnixNano()
	for {
		id := IDPrefix + strconv.FormatInt(n, 10)
		if _, ok := taken[id]; !ok {
			return id
		}
		n++
	}
}

func indexOf(tasks []core.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

var _ core.Tasks = (*Cache)(nil)
