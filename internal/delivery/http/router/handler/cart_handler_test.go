package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/usecase"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	uc := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: uc, Logger: newDiscardLogger()}), uc
}

// newPricedView projects snapshot against products with the default policy.
func newPricedView(snapshot entity.CartSnapshot, products ...*entity.Product) *usecase.CartView {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	lookup := pricing.LookupFunc(func(id string) (*entity.Product, bool) {
		p, ok := byID[id]
		return p, ok
	})

	return &usecase.CartView{Snapshot: snapshot, Priced: pricing.Project(snapshot, lookup, pricing.DefaultPolicy())}
}

func TestCartHandler_GetCart_PricedView(t *testing.T) {
	h, uc := createTestCartHandler(t)
	snapshot := entity.CartSnapshot{
		Items: []entity.CartLineItem{
			{ID: "l1", ProductID: "1", Quantity: 2},
			{ID: "l2", ProductID: "gone", Quantity: 1},
		},
		IsOpen: true,
	}

	uc.EXPECT().Get(mock.Anything, testSessionID).Return(newPricedView(snapshot, newHandlerTestProduct("1", 100)), nil)

	rec := serve(http.MethodGet, "/cart", "/cart", "", h.GetCart, withCartSession(testSessionID))

	var cart CartResponse
	decodeEnvelope(t, rec, &cart)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.ItemCount)
	assert.True(t, cart.IsOpen)
	assert.True(t, cart.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, cart.HasMissingProducts)
	assert.False(t, cart.Items[0].Missing)
	assert.True(t, cart.Items[1].Missing)
	assert.Nil(t, cart.Items[1].Product)
}

func TestCartHandler_GetCart_MissingSession(t *testing.T) {
	h, _ := createTestCartHandler(t)

	rec := serve(http.MethodGet, "/cart", "/cart", "", h.GetCart)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_CART_SESSION", env.Error.Code)
}

func TestCartHandler_AddItem_DefaultsQuantity(t *testing.T) {
	h, uc := createTestCartHandler(t)

	uc.EXPECT().
		AddItem(mock.Anything, testSessionID, &usecase.AddItemInput{ProductID: "1", Quantity: 1, SelectedVariant: "black"}).
		Return(newPricedView(entity.NewCartSnapshot()), nil)

	rec := serve(http.MethodPost, "/cart/items", "/cart/items",
		`{"product_id":"1","selected_variant":"black"}`, h.AddItem, withCartSession(testSessionID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddItem_ExplicitQuantity(t *testing.T) {
	h, uc := createTestCartHandler(t)

	uc.EXPECT().
		AddItem(mock.Anything, testSessionID, &usecase.AddItemInput{ProductID: "1", Quantity: 3}).
		Return(newPricedView(entity.NewCartSnapshot()), nil)

	rec := serve(http.MethodPost, "/cart/items", "/cart/items",
		`{"product_id":"1","quantity":3}`, h.AddItem, withCartSession(testSessionID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	h, _ := createTestCartHandler(t)

	rec := serve(http.MethodPost, "/cart/items", "/cart/items", `{"quantity":1}`, h.AddItem, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "product_id is required")
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	h, uc := createTestCartHandler(t)

	uc.EXPECT().AddItem(mock.Anything, testSessionID, mock.Anything).Return(nil, domainerrors.ErrProductNotFound)

	rec := serve(http.MethodPost, "/cart/items", "/cart/items", `{"product_id":"999"}`, h.AddItem, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestCartHandler_AddItem_MalformedBody(t *testing.T) {
	h, _ := createTestCartHandler(t)

	rec := serve(http.MethodPost, "/cart/items", "/cart/items", `{"product_id":`, h.AddItem, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestCartHandler_UpdateQuantity_ZeroIsAllowed(t *testing.T) {
	h, uc := createTestCartHandler(t)

	uc.EXPECT().UpdateQuantity(mock.Anything, testSessionID, "1", 0).Return(newPricedView(entity.NewCartSnapshot()), nil)

	rec := serve(http.MethodPatch, "/cart/items/:productId", "/cart/items/1", `{"quantity":0}`, h.UpdateQuantity, withCartSession(testSessionID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateQuantity_MissingQuantity(t *testing.T) {
	h, _ := createTestCartHandler(t)

	rec := serve(http.MethodPatch, "/cart/items/:productId", "/cart/items/1", `{}`, h.UpdateQuantity, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Details, "quantity is required")
}

func TestCartHandler_UpdateQuantity_InsufficientStock(t *testing.T) {
	h, uc := createTestCartHandler(t)

	uc.EXPECT().UpdateQuantity(mock.Anything, testSessionID, "1", 50).Return(nil, domainerrors.ErrInsufficientStock)

	rec := serve(http.MethodPatch, "/cart/items/:productId", "/cart/items/1", `{"quantity":50}`, h.UpdateQuantity, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	h, uc := createTestCartHandler(t)

	uc.EXPECT().RemoveItem(mock.Anything, testSessionID, "1").Return(newPricedView(entity.NewCartSnapshot()), nil)

	rec := serve(http.MethodDelete, "/cart/items/:productId", "/cart/items/1", "", h.RemoveItem, withCartSession(testSessionID))

	var cart CartResponse
	decodeEnvelope(t, rec, &cart)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.ItemCount)
}

func TestCartHandler_ClearCart_StoreFailure(t *testing.T) {
	h, uc := createTestCartHandler(t)

	uc.EXPECT().Clear(mock.Anything, testSessionID).Return(nil, errors.Wrap(domainerrors.ErrCartUnavailable, "redis: i/o timeout"))

	rec := serve(http.MethodDelete, "/cart", "/cart", "", h.ClearCart, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "CART_UNAVAILABLE", env.Error.Code)
}

func TestCartHandler_Visibility(t *testing.T) {
	for _, tc := range []struct {
		name   string
		path   string
		isOpen bool
		setup  func(uc *mockUsecase.MockCartUsecase, view *usecase.CartView)
	}{
		{
			name:   "toggle",
			path:   "/cart/toggle",
			isOpen: true,
			setup: func(uc *mockUsecase.MockCartUsecase, view *usecase.CartView) {
				uc.EXPECT().Toggle(mock.Anything, testSessionID).Return(view, nil)
			},
		},
		{
			name:   "open",
			path:   "/cart/open",
			isOpen: true,
			setup: func(uc *mockUsecase.MockCartUsecase, view *usecase.CartView) {
				uc.EXPECT().Open(mock.Anything, testSessionID).Return(view, nil)
			},
		},
		{
			name:   "close",
			path:   "/cart/close",
			isOpen: false,
			setup: func(uc *mockUsecase.MockCartUsecase, view *usecase.CartView) {
				uc.EXPECT().Close(mock.Anything, testSessionID).Return(view, nil)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h, uc := createTestCartHandler(t)
			snapshot := entity.NewCartSnapshot()
			snapshot.IsOpen = tc.isOpen
			tc.setup(uc, newPricedView(snapshot))

			handlers := map[string]echo.HandlerFunc{
				"/cart/toggle": h.ToggleCart,
				"/cart/open":   h.OpenCart,
				"/cart/close":  h.CloseCart,
			}

			rec := serve(http.MethodPost, tc.path, tc.path, "", handlers[tc.path], withCartSession(testSessionID))

			var cart CartResponse
			decodeEnvelope(t, rec, &cart)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.isOpen, cart.IsOpen)
		})
	}
}
