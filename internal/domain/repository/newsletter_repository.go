package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrDuplicateSignup is returned when the email is already subscribed.
var ErrDuplicateSignup = errors.New("email already subscribed")

// NewsletterRepository is the remote subscription store.
type NewsletterRepository interface {
	Insert(ctx context.Context, signup *entity.NewsletterSignup) error
}

// NewsletterQueue is the local fallback list, written only when the remote insert is unavailable.
type NewsletterQueue interface {
	Enqueue(ctx context.Context, signup entity.NewsletterSignup) error

	// Pending returns queued signups in insertion order.
	Pending(ctx context.Context) ([]entity.NewsletterSignup, error)

	// Acknowledge removes the given signups from the queue, leaving any enqueued since Pending.
	Acknowledge(ctx context.Context, done []entity.NewsletterSignup) error
}
