package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// AddItemInput describes one add-to-cart request.
type AddItemInput struct {
	ProductID       string
	Quantity        int
	SelectedVariant string
}

// CartView is what every cart operation returns: the snapshot and its priced projection.
type CartView struct {
	Snapshot entity.CartSnapshot
	Priced   pricing.PricedCart
}

// CartUsecase is the cart state store. Each method loads the session's snapshot,
// applies one transition and persists the result before returning the new view.
type CartUsecase interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID string, input *AddItemInput) (*CartView, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error)
	Clear(ctx context.Context, sessionID string) (*CartView, error)
	// CompleteCheckout removes the ordered lines from the session's current cart,
	// keeping anything added after ordered was read.
	CompleteCheckout(ctx context.Context, sessionID string, ordered entity.CartSnapshot) (*CartView, error)
	Toggle(ctx context.Context, sessionID string) (*CartView, error)
	Open(ctx context.Context, sessionID string) (*CartView, error)
	Close(ctx context.Context, sessionID string) (*CartView, error)
}
