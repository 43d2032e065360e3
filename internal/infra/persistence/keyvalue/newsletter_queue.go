package keyvalue

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const (
	newsletterCollection = "newsletter"
	newsletterQueueKey   = "queue"
	// newsletterCorruptKey holds the last queue value that could not be decoded.
	newsletterCorruptKey = "queue.corrupt"
)

// newsletterQueue stores the whole pending list as one JSON array.
// The mutex serialises read-modify-write cycles within this process.
type newsletterQueue struct {
	store  repository.KeyValueStore
	logger *slog.Logger
	mu     sync.Mutex
}

// NewsletterQueueParams holds dependencies for NewsletterQueue, injected by Fx
type NewsletterQueueParams struct {
	fx.In

	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// NewNewsletterQueue creates the local newsletter fallback queue.
func NewNewsletterQueue(params NewsletterQueueParams) repository.NewsletterQueue {
	return &newsletterQueue{store: params.Store, logger: params.Logger}
}

// Enqueue is a no-op when a signup for the same email is already pending.
func (q *newsletterQueue) Enqueue(ctx context.Context, signup entity.NewsletterSignup) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending, err := q.read(ctx)
	if err != nil {
		return err
	}

	for _, queued := range pending {
		if strings.EqualFold(queued.Email, signup.Email) {
			return nil
		}
	}

	return q.write(ctx, append(pending, signup))
}

func (q *newsletterQueue) Pending(ctx context.Context) ([]entity.NewsletterSignup, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.read(ctx)
}

func (q *newsletterQueue) Acknowledge(ctx context.Context, done []entity.NewsletterSignup) error {
	if len(done) == 0 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	pending, err := q.read(ctx)
	if err != nil {
		return err
	}

	acked := make(map[string]int, len(done))
	for _, signup := range done {
		acked[signupKey(signup)]++
	}

	remaining := make([]entity.NewsletterSignup, 0, len(pending))
	for _, signup := range pending {
		key := signupKey(signup)
		if acked[key] > 0 {
			acked[key]--

			continue
		}
		remaining = append(remaining, signup)
	}

	if len(remaining) == 0 {
		return errors.Wrap(q.store.Delete(ctx, q.key()), "clear newsletter queue")
	}

	return q.write(ctx, remaining)
}

func (q *newsletterQueue) read(ctx context.Context) ([]entity.NewsletterSignup, error) {
	raw, err := q.store.Get(ctx, q.key())
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []entity.NewsletterSignup{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read newsletter queue")
	}

	var pending []entity.NewsletterSignup
	if err := json.Unmarshal(raw, &pending); err != nil {
		return q.discard(ctx, raw, err)
	}
	if pending == nil {
		pending = []entity.NewsletterSignup{}
	}

	return pending, nil
}

// discard moves an undecodable queue value aside and starts over with an empty queue.
func (q *newsletterQueue) discard(ctx context.Context, raw []byte, decodeErr error) ([]entity.NewsletterSignup, error) {
	corruptKey := q.store.GenerateKey(newsletterCollection, newsletterCorruptKey)
	if err := q.store.Set(ctx, corruptKey, raw, 0); err != nil {
		return nil, errors.Wrap(err, "move aside malformed newsletter queue")
	}
	if err := q.store.Delete(ctx, q.key()); err != nil {
		return nil, errors.Wrap(err, "drop malformed newsletter queue")
	}

	q.logger.Warn("Discarded malformed newsletter queue",
		slog.String("movedTo", corruptKey),
		slog.Int("bytes", len(raw)),
		slog.Any("error", decodeErr),
	)

	return []entity.NewsletterSignup{}, nil
}

func (q *newsletterQueue) write(ctx context.Context, pending []entity.NewsletterSignup) error {
	raw, err := json.Marshal(pending)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(q.store.Set(ctx, q.key(), raw, 0), "write newsletter queue")
}

func (q *newsletterQueue) key() string {
	return q.store.GenerateKey(newsletterCollection, newsletterQueueKey)
}

// signupKey identifies a queued signup independently of time zone and monotonic clock data.
func signupKey(signup entity.NewsletterSignup) string {
	return signup.Email + "|" + signup.Date.UTC().Format(time.RFC3339Nano)
}
