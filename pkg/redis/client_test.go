package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)
	return srv
}

func TestConnectInvalidURL(t *testing.T) {
	_, err := Connect("://invalid-url", "")
	assert.Error(t, err)
}

func TestConnectPingFailure(t *testing.T) {
	orig := pingClient
	t.Cleanup(func() { pingClient = orig })
	pingClient = func(context.Context, *goredis.Client) error { return assert.AnError }

	_, err := Connect("redis://127.0.0.1:6379/0", "secret")
	require.ErrorIs(t, err, assert.AnError)
}

func TestConnectAndOps(t *testing.T) {
	srv := startMiniRedis(t)
	store, err := Connect("redis://"+srv.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))

	_, err = store.Get(ctx, "k")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	ok, err := store.SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Del(ctx, "k"))
	ok, err = store.SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	srv.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, "k")
	require.ErrorIs(t, err, ErrMiss)
}

func TestStoreWithUnreachableRedis(t *testing.T) {
	cli := goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:0", // invalid/unreachable
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	})
	store := NewStore(cli)
	t.Cleanup(func() { _ = store.Close() })
	assert.Same(t, cli, store.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.Error(t, store.Set(ctx, "k", "v", time.Second))
	_, err := store.Get(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
	assert.Error(t, store.Del(ctx, "k"))
	_, err = store.SetNX(ctx, "k", "v", time.Second)
	assert.Error(t, err)
	assert.Error(t, store.Ping(ctx))
}
