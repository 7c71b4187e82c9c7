package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	sess := Session{AdminID: 1, Username: "superadmin", Role: "superadmin"}
	require.NoError(t, store.Put(ctx, "jti-1", sess, time.Minute))

	got, err := store.Get(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.AdminID)
	assert.Equal(t, "superadmin", got.Username)

	require.NoError(t, store.Delete(ctx, "jti-1"))
	_, err = store.Get(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreMiss(t *testing.T) {
	store, _ := newRedisStore(t)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "jti-1", Session{UserID: 7}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
