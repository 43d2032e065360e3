package repository

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key is absent or expired.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistent key-value port behind cart snapshots,
// the local newsletter queue and order confirmations.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl keeps the value until it is overwritten or deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// GenerateKey namespaces key under the service prefix and a logical collection.
	GenerateKey(collection, key string) string

	Ping(ctx context.Context) error
}
