package keyvalue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/kv"
)

func newTestStore(t *testing.T) repository.KeyValueStore {
	t.Helper()
	store, err := kv.OpenBucketStore(context.Background(), "mem://", "storefront")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newTestConfig() *config.Config {
	return &config.Config{}
}
