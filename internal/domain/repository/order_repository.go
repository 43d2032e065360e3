package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when a confirmation is absent or expired.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository keeps checkout confirmations so they can be shown again.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
