//go:build integration

package blob

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisTestcontainer(t *testing.T) *RedisStore {
	t.Helper()
	ctx := context.Background()

	ctr, err := redis.Run(ctx, "redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").WithOccurrence(1).WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skipf("failed to start redis testcontainer: %v", err)
	}
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	url, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	s, err := NewRedisStore(url + "/1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return s.Ping(pingCtx) == nil
	}, 10*time.Second, 200*time.Millisecond)

	return s
}

func TestRedisStore_RoundTrip(t *testing.T) {
	s := setupRedisTestcontainer(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "kanban_tasks")
	require.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, s.Put(ctx, "kanban_tasks", []byte(`[{"id":"local-1"}]`)))
	got, err := s.Get(ctx, "kanban_tasks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"local-1"}]`, string(got))

	require.NoError(t, s.Delete(ctx, "kanban_tasks"))
	_, err = s.Get(ctx, "kanban_tasks")
	require.ErrorIs(t, err, ErrNotExist)
	require.NoError(t, s.Delete(ctx, "kanban_tasks"))
}
