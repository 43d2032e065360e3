package kv

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// URLs
	_ "gocloud.dev/blob/memblob"  // mem:// URLs
	"gocloud.dev/gcerrors"

	"storefront/internal/domain/repository"
)

// expiresAtKey is blob metadata holding the unix expiry of a value.
const expiresAtKey = "expires-at"

// BucketStore keeps each value as one blob object. Expiry is checked on read.
type BucketStore struct {
	bucket    *blob.Bucket
	keyPrefix string
	now       func() time.Time
}

// OpenBucketStore opens a gocloud bucket URL such as file:///var/lib/storefront or mem://.
func OpenBucketStore(ctx context.Context, url, keyPrefix string) (*BucketStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	return newBucketStore(bucket, keyPrefix), nil
}

func newBucketStore(bucket *blob.Bucket, keyPrefix string) *BucketStore {
	return &BucketStore{
		bucket:    bucket,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (s *BucketStore) Get(ctx context.Context, key string) ([]byte, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, s.translate(err, "stat", key)
	}
	if s.expired(attrs.Metadata) {
		if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return nil, errors.Wrapf(err, "bucket delete expired %s", key)
		}

		return nil, repository.ErrKeyNotFound
	}

	value, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, s.translate(err, "read", key)
	}

	return value, nil
}

func (s *BucketStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	opts := &blob.WriterOptions{ContentType: "application/octet-stream"}
	if ttl > 0 {
		opts.Metadata = map[string]string{
			expiresAtKey: strconv.FormatInt(s.now().Add(ttl).Unix(), 10),
		}
	}

	return errors.Wrapf(s.bucket.WriteAll(ctx, key, value, opts), "bucket write %s", key)
}

func (s *BucketStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "bucket delete %s", key)
	}

	return nil
}

func (s *BucketStore) GenerateKey(collection, key string) string {
	return fmt.Sprintf("%s:%s:%s", s.keyPrefix, collection, key)
}

func (s *BucketStore) Ping(ctx context.Context) error {
	ok, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return errors.Wrap(err, "bucket ping")
	}
	if !ok {
		return errors.New("bucket is not accessible")
	}

	return nil
}

func (s *BucketStore) Close() error {
	return s.bucket.Close()
}

func (s *BucketStore) expired(metadata map[string]string) bool {
	raw, ok := metadata[expiresAtKey]
	if !ok {
		return false
	}
	expiresAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}

	return !s.now().Before(time.Unix(expiresAt, 0))
}

func (s *BucketStore) translate(err error, op, key string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return repository.ErrKeyNotFound
	}

	return errors.Wrapf(err, "bucket %s %s", op, key)
}
