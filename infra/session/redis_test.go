package session

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/orioninvest/brokerage/pkg/session"
)

func TestRedisStoreKey(t *testing.T) {
	store := NewRedisStore(&redis.Options{}, "orion:session:", slog.Default())
	require.Equal(t, "orion:session:"+session.Slot, store.key())
}

// TestRedisStoreLifecycle runs against a real Redis when REDIS_URL is set.
func TestRedisStoreLifecycle(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	require := require.New(t)
	ctx := context.Background()

	opt, err := redis.ParseURL(url)
	require.NoError(err)
	store := NewRedisStore(opt, "test:session:", slog.Default())
	require.NoError(store.Clear(ctx))

	_, ok, err := store.Get(ctx)
	require.NoError(err, "an empty slot is not an error")
	require.False(ok)

	require.NoError(store.Set(ctx, "user-a"))
	require.NoError(store.Set(ctx, "user-b"))
	id, ok, err := store.Get(ctx)
	require.NoError(err)
	require.True(ok)
	require.Equal("user-b", id, "last write wins")

	require.NoError(store.Clear(ctx))
	_, ok, err = store.Get(ctx)
	require.NoError(err)
	require.False(ok)
}
