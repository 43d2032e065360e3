package keyvalue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const confirmationCollection = "confirmation"

// storedOrder keeps the owning session next to the order, which never renders it.
type storedOrder struct {
	*entity.Order
	SessionID string `json:"sessionId,omitempty"`
}

type orderRepository struct {
	store repository.KeyValueStore
	ttl   time.Duration
}

// OrderRepositoryParams holds dependencies for OrderRepository, injected by Fx
type OrderRepositoryParams struct {
	fx.In

	Store  repository.KeyValueStore
	Config *config.Config
}

// NewOrderRepository keeps order confirmations for the configured TTL.
func NewOrderRepository(params OrderRepositoryParams) repository.OrderRepository {
	return &orderRepository{
		store: params.Store,
		ttl:   params.Config.Checkout.ConfirmationTTL,
	}
}

func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	raw, err := json.Marshal(storedOrder{Order: order, SessionID: order.SessionID})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(repo.store.Set(ctx, repo.key(order.ID), raw, repo.ttl), "save order confirmation")
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	raw, err := repo.store.Get(ctx, repo.key(id))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, repository.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order confirmation")
	}

	stored := storedOrder{Order: &entity.Order{}}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.Wrap(err, "decode order confirmation")
	}
	stored.Order.SessionID = stored.SessionID

	return stored.Order, nil
}

func (repo *orderRepository) key(id uuid.UUID) string {
	return repo.store.GenerateKey(confirmationCollection, id.String())
}
