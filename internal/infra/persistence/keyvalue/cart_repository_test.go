package keyvalue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

func TestCartRepository_Load_Absent(t *testing.T) {
	repo := NewCartRepository(CartRepositoryParams{Store: newTestStore(t), Config: newTestConfig()})

	snapshot, err := repo.Load(context.Background(), "new-session")
	require.NoError(t, err)
	assert.Equal(t, entity.NewCartSnapshot(), snapshot)
}

func TestCartRepository_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(CartRepositoryParams{Store: newTestStore(t), Config: newTestConfig()})

	snapshot := entity.CartSnapshot{
		Items: []entity.CartLineItem{
			{ID: "l1", ProductID: "1", Quantity: 2},
			{ID: "l2", ProductID: "3", Quantity: 1, SelectedVariant: "Black"},
		},
		IsOpen: true,
	}
	require.NoError(t, repo.Save(ctx, "s-1", snapshot))

	loaded, err := repo.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, snapshot.Items, loaded.Items)
	assert.Equal(t, snapshot.IsOpen, loaded.IsOpen)
	assert.Equal(t, 3, loaded.ItemCount())

	other, err := repo.Load(ctx, "s-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartRepository_Save_WritesItemCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCartRepository(CartRepositoryParams{Store: store, Config: newTestConfig()})

	require.NoError(t, repo.Save(ctx, "s-1", entity.CartSnapshot{
		Items: []entity.CartLineItem{{ID: "l1", ProductID: "1", Quantity: 4}},
	}))

	raw, err := store.Get(ctx, store.GenerateKey(cartCollection, "s-1"))
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.EqualValues(t, 4, stored["itemCount"])
}

func TestCartRepository_Load_IgnoresStoredItemCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCartRepository(CartRepositoryParams{Store: store, Config: newTestConfig()})

	raw := `{"items":[{"id":"l1","productId":"1","quantity":2}],"isOpen":false,"itemCount":99}`
	require.NoError(t, store.Set(ctx, store.GenerateKey(cartCollection, "s-1"), []byte(raw), 0))

	snapshot, err := repo.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.ItemCount())
}

func TestCartRepository_Load_Malformed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCartRepository(CartRepositoryParams{Store: store, Config: newTestConfig()})

	require.NoError(t, store.Set(ctx, store.GenerateKey(cartCollection, "s-1"), []byte("{not json"), 0))

	snapshot, err := repo.Load(ctx, "s-1")
	assert.ErrorIs(t, err, repository.ErrMalformedSnapshot)
	assert.Equal(t, entity.NewCartSnapshot(), snapshot)
}

func TestCartRepository_Load_DropsInvalidLines(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCartRepository(CartRepositoryParams{Store: store, Config: newTestConfig()})

	raw := `{"items":[
		{"id":"a","productId":"1","quantity":1},
		{"id":"b","productId":"1","quantity":5},
		{"id":"c","productId":"2","quantity":0},
		{"id":"d","productId":"","quantity":1},
		{"id":"e","productId":"removed-from-catalog","quantity":1}
	],"isOpen":true}`
	require.NoError(t, store.Set(ctx, store.GenerateKey(cartCollection, "s-1"), []byte(raw), 0))

	snapshot, err := repo.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, snapshot.IsOpen)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "a", snapshot.Items[0].ID)
	assert.Equal(t, "removed-from-catalog", snapshot.Items[1].ProductID)
}

func TestCartRepository_Load_NullItems(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCartRepository(CartRepositoryParams{Store: store, Config: newTestConfig()})

	require.NoError(t, store.Set(ctx, store.GenerateKey(cartCollection, "s-1"), []byte(`{"items":null}`), 0))

	snapshot, err := repo.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Items)
	assert.Empty(t, snapshot.Items)
}
