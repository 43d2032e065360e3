package keyvalue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

func TestOrderRepository_SaveFindByID(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	cfg.Checkout.ConfirmationTTL = time.Hour
	repo := NewOrderRepository(OrderRepositoryParams{Store: newTestStore(t), Config: cfg})

	order := &entity.Order{
		ID: uuid.New(),
		Items: []entity.OrderItem{
			{ID: "l1", ProductID: "1", Name: "Premium Wireless Headphones", Price: decimal.RequireFromString("199.99"), Quantity: 1},
		},
		Subtotal:      decimal.RequireFromString("199.99"),
		Shipping:      decimal.RequireFromString("4.99"),
		Tax:           decimal.RequireFromString("16.00"),
		Total:         decimal.RequireFromString("220.98"),
		Status:        entity.OrderStatusProcessing,
		Contact:       entity.ContactInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		PaymentMethod: "card ending 4242",
		CreatedAt:     time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.True(t, order.Total.Equal(found.Total))
	assert.Equal(t, order.Contact, found.Contact)
	assert.Equal(t, order.CreatedAt, found.CreatedAt)
	require.Len(t, found.Items, 1)
	assert.True(t, found.Items[0].Price.Equal(decimal.RequireFromString("199.99")))
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewOrderRepository(OrderRepositoryParams{Store: newTestStore(t), Config: newTestConfig()})

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_KeepsOwningSession(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(OrderRepositoryParams{Store: newTestStore(t), Config: newTestConfig()})

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusProcessing, SessionID: "5f0c6f3e-2b1a-4c55-9d0e-0a4f1f1d2c3b"}
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.SessionID, found.SessionID)
	assert.True(t, found.OwnedBy(order.SessionID, nil))
	assert.False(t, found.OwnedBy("", nil))
}
