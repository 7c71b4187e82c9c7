package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "jti-1", Session{UserID: 7, Email: "test@example.com"}, time.Minute))

	sess, err := store.Get(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, "test@example.com", sess.Email)

	require.NoError(t, store.Delete(ctx, "jti-1"))
	_, err = store.Get(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "jti-1", Session{UserID: 7}, -time.Second))

	_, err := store.Get(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "dead", Session{UserID: 1}, -time.Second))
	require.NoError(t, store.Put(ctx, "live", Session{UserID: 2}, time.Minute))

	store.Sweep()

	assert.Len(t, store.entries, 1)
	sess, err := store.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, int64(2), sess.UserID)
}
