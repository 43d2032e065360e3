package usecase

import "context"

// SubscribeOutput reports where a signup ended up.
type SubscribeOutput struct {
	Email         string
	QueuedLocally bool
}

// NewsletterUsecase manages newsletter signups.
type NewsletterUsecase interface {
	// Subscribe stores the signup remotely, falling back to the local queue.
	Subscribe(ctx context.Context, email string) (*SubscribeOutput, error)

	// Flush replays locally queued signups to the remote store and returns how many were delivered.
	Flush(ctx context.Context) (int, error)
}
