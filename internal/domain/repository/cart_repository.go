package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrMalformedSnapshot is returned together with an empty snapshot when the stored value cannot be decoded.
var ErrMalformedSnapshot = errors.New("malformed cart snapshot")

// CartRepository persists one cart snapshot per session under a fixed key.
type CartRepository interface {
	// Load returns the stored snapshot, or an empty snapshot when none exists.
	// On any error the returned snapshot is still a valid empty snapshot.
	Load(ctx context.Context, sessionID string) (entity.CartSnapshot, error)

	// Save replaces the stored snapshot for sessionID.
	Save(ctx context.Context, sessionID string, snapshot entity.CartSnapshot) error
}
