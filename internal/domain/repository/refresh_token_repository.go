package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is unknown or expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores hashed refresh tokens, one per signed-in session.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash only returns tokens that have not expired.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends a session. Deleting an unknown hash is not an error.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// CountActiveSessionsByUserID counts non-expired tokens of a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	DeleteExpiredRefreshTokens(ctx context.Context) error
}
