package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"storefront/internal/domain/repository"
)

func newTestBucketStore(t *testing.T) *BucketStore {
	t.Helper()
	store := newBucketStore(memblob.OpenBucket(nil), "storefront")
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBucketStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := newTestBucketStore(t)
	key := store.GenerateKey("cart", "session-1")

	require.NoError(t, store.Set(ctx, key, []byte(`{"items":[]}`), 0))

	value, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(value))

	require.NoError(t, store.Set(ctx, key, []byte(`{"items":[1]}`), 0))
	value, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"items":[1]}`, string(value))
}

func TestBucketStore_Get_Missing(t *testing.T) {
	store := newTestBucketStore(t)

	_, err := store.Get(context.Background(), "storefront:cart:nobody")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBucketStore_Get_Expired(t *testing.T) {
	ctx := context.Background()
	store := newTestBucketStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	store.now = func() time.Time { return base.Add(30 * time.Second) }
	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(value))

	store.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBucketStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestBucketStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBucketStore_GenerateKey(t *testing.T) {
	store := newTestBucketStore(t)

	assert.Equal(t, "storefront:newsletter:queue", store.GenerateKey("newsletter", "queue"))
}

func TestBucketStore_Ping(t *testing.T) {
	store := newTestBucketStore(t)

	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenBucketStore_File(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBucketStore(ctx, "file://"+t.TempDir(), "storefront")
	require.NoError(t, err)
	defer store.Close()

	key := store.GenerateKey("confirmation", "abc")
	require.NoError(t, store.Set(ctx, key, []byte("order"), 0))

	value, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "order", string(value))
}
