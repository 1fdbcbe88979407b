package local_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/local"
	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/local/blob"
	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

// fixedClock returns the same instant until advanced.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newCache(t *testing.T) (*local.Cache, *blob.FileStore, *fixedClock) {
	t.Helper()

	store, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	clock := &fixedClock{now: time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)}
	return local.New(store, "", local.WithClock(clock.Now)), store, clock
}

func ptr[T any](v T) *T {
	return &v
}

func TestCacheList_Empty(t *testing.T) {
	t.Parallel()

	c, _, _ := newCache(t)

	items, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCacheCreate(t *testing.T) {
	t.Parallel()

	c, store, _ := newCache(t)
	ctx := context.Background()

	got, err := c.CreateTask(ctx, core.TaskInput{Title: "  My First Task ", Description: "Task description"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.ID, local.IDPrefix))
	assert.Equal(t, "My First Task", got.Title)
	assert.Equal(t, core.StatusTODO, got.Status)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	raw, err := store.Get(ctx, local.DefaultKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"title":"My First Task"`)
}

func TestCacheCreate_UniqueIDsOnSameTick(t *testing.T) {
	t.Parallel()

	c, _, _ := newCache(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for range 5 {
		got, err := c.CreateTask(ctx, core.TaskInput{Title: "same instant"})
		require.NoError(t, err)
		assert.False(t, seen[got.ID], "duplicate id %s", got.ID)
		seen[got.ID] = true
	}
}

func TestCacheList_SameTickNewestFirst(t *testing.T) {
	t.Parallel()

	c, _, _ := newCache(t)
	ctx := context.Background()

	first, err := c.CreateTask(ctx, core.TaskInput{Title: "first"})
	require.NoError(t, err)
	second, err := c.CreateTask(ctx, core.TaskInput{Title: "second"})
	require.NoError(t, err)
	require.Equal(t, first.CreatedAt, second.CreatedAt)

	items, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first", items[1].Title)
}

func TestCacheCreate_Validation(t *testing.T) {
	t.Parallel()

	c, store, _ := newCache(t)
	ctx := context.Background()

	_, err := c.CreateTask(ctx, core.TaskInput{Title: "   "})
	require.ErrorIs(t, err, core.ErrValidation)

	_, err = c.CreateTask(ctx, core.TaskInput{Title: "x", Status: "blocked"})
	require.ErrorIs(t, err, core.ErrValidation)

	_, err = store.Get(ctx, local.DefaultKey)
	assert.ErrorIs(t, err, blob.ErrNotExist, "nothing written")
}

func TestCachePatch(t *testing.T) {
	t.Parallel()

	c, _, clock := newCache(t)
	ctx := context.Background()

	created, err := c.CreateTask(ctx, core.TaskInput{Title: "move me", Description: "d"})
	require.NoError(t, err)

	// same tick: updatedAt still advances
	updated, err := c.PatchTask(ctx, created.ID, core.TaskPatch{Status: ptr(core.StatusInProgress)})
	require.NoError(t, err)
	assert.Equal(t, core.StatusInProgress, updated.Status)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	clock.Advance(time.Hour)
	again, err := c.PatchTask(ctx, created.ID, core.TaskPatch{Title: ptr(" renamed ")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", again.Title)
	assert.Equal(t, clock.Now(), again.UpdatedAt)
	assert.Equal(t, created.CreatedAt, again.CreatedAt)
}

func TestCachePatch_Errors(t *testing.T) {
	t.Parallel()

	c, _, _ := newCache(t)
	ctx := context.Background()

	created, err := c.CreateTask(ctx, core.TaskInput{Title: "keep"})
	require.NoError(t, err)

	_, err = c.PatchTask(ctx, created.ID, core.TaskPatch{})
	require.ErrorIs(t, err, core.ErrValidation)

	_, err = c.PatchTask(ctx, created.ID, core.TaskPatch{Title: ptr(" ")})
	require.ErrorIs(t, err, core.ErrValidation)

	_, err = c.PatchTask(ctx, "local-404", core.TaskPatch{Title: ptr("x")})
	require.ErrorIs(t, err, core.ErrNotFound)

	items, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestCacheDelete_Twice(t *testing.T) {
	t.Parallel()

	c, _, _ := newCache(t)
	ctx := context.Background()

	created, err := c.CreateTask(ctx, core.TaskInput{Title: "bye"})
	require.NoError(t, err)

	require.NoError(t, c.DeleteTask(ctx, created.ID))
	require.ErrorIs(t, c.DeleteTask(ctx, created.ID), core.ErrNotFound)
	require.ErrorIs(t, c.DeleteTask(ctx, created.ID), core.ErrNotFound)
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()

	c, store, clock := newCache(t)
	ctx := context.Background()

	a, err := c.CreateTask(ctx, core.TaskInput{Title: "a", Description: "first"})
	require.NoError(t, err)
	clock.Advance(time.Second)
	b, err := c.CreateTask(ctx, core.TaskInput{Title: "b", Status: core.StatusDone})
	require.NoError(t, err)
	clock.Advance(time.Second)
	d, err := c.CreateTask(ctx, core.TaskInput{Title: "d"})
	require.NoError(t, err)
	clock.Advance(time.Second)
	a, err = c.PatchTask(ctx, a.ID, core.TaskPatch{Description: ptr("")})
	require.NoError(t, err)
	require.NoError(t, c.DeleteTask(ctx, b.ID))

	// a second cache over the same store sees the same tasks
	reloaded := local.New(store, local.DefaultKey)
	items, err := reloaded.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.Task{d, a}, items)
}

func TestCacheClear(t *testing.T) {
	t.Parallel()

	c, store, _ := newCache(t)
	ctx := context.Background()

	_, err := c.CreateTask(ctx, core.TaskInput{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, c.Clear(ctx))
	_, err = store.Get(ctx, local.DefaultKey)
	assert.ErrorIs(t, err, blob.ErrNotExist)

	items, err := c.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

type brokenStore struct {
	data []byte
}

func (s brokenStore) Get(context.Context, string) ([]byte, error) {
	if s.data != nil {
		return s.data, nil
	}
	return nil, errors.New("io error")
}

func (brokenStore) Put(context.Context, string, []byte) error { return errors.New("read-only") }
func (brokenStore) Delete(context.Context, string) error      { return errors.New("read-only") }

func TestCache_StoreErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := local.New(brokenStore{}, "k").ListTasks(ctx)
	require.Error(t, err)

	_, err = local.New(brokenStore{data: []byte("{not json")}, "k").ListTasks(ctx)
	require.ErrorContains(t, err, "decode cache")

	_, err = local.New(brokenStore{data: []byte("[]")}, "k").CreateTask(ctx, core.TaskInput{Title: "x"})
	require.ErrorContains(t, err, "write cache")

	// local failures never look like an unreachable server
	assert.False(t, errors.Is(err, core.ErrUnavailable))
}
