package handler

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const validCheckoutBody = `{
	"contact": {"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com"},
	"shipping_address": {"address": "1 Analytical Way", "city": "London", "state": "LDN", "zip_code": "N1 9GU", "country": "UK"},
	"payment": {"card_number": "4242 4242 4242 4242", "expiry_date": "12/30", "cvv": "123", "name_on_card": "Ada Lovelace"}
}`

func createTestCheckoutHandler(t *testing.T) (*CheckoutHandler, *mockUsecase.MockCheckoutUsecase) {
	uc := mockUsecase.NewMockCheckoutUsecase(t)

	return NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: uc, Logger: newDiscardLogger()}), uc
}

func newHandlerTestOrder() *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		Items:         []entity.OrderItem{{ID: "l1", ProductID: "1", Name: "Product 1", Price: decimal.NewFromInt(100), Quantity: 1}},
		Subtotal:      decimal.NewFromInt(100),
		Shipping:      decimal.RequireFromString("9.99"),
		Tax:           decimal.NewFromInt(8),
		Total:         decimal.RequireFromString("117.99"),
		Status:        entity.OrderStatusProcessing,
		PaymentMethod: "Card ending in 4242",
		CreatedAt:     time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestCheckoutHandler_Prefill_Anonymous(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)

	uc.EXPECT().Prefill(mock.Anything, (*uuid.UUID)(nil)).Return(&entity.ContactInfo{}, nil)

	rec := serve(http.MethodGet, "/checkout/prefill", "/checkout/prefill", "", h.Prefill)

	var contact entity.ContactInfo
	decodeEnvelope(t, rec, &contact)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, contact.Email)
}

func TestCheckoutHandler_Prefill_SignedIn(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)
	userID := uuid.New()

	uc.EXPECT().Prefill(mock.Anything, &userID).Return(&entity.ContactInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil)

	rec := serve(http.MethodGet, "/checkout/prefill", "/checkout/prefill", "", h.Prefill, withUser(userID))

	var contact entity.ContactInfo
	decodeEnvelope(t, rec, &contact)
	assert.Equal(t, "ada@example.com", contact.Email)
	assert.Equal(t, "Ada", contact.FirstName)
}

func TestCheckoutHandler_PlaceOrder_Success(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)
	userID := uuid.New()
	order := newHandlerTestOrder()

	uc.EXPECT().
		PlaceOrder(mock.Anything, testSessionID, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.UserID != nil && *in.UserID == userID &&
				in.Contact.Email == "ada@example.com" &&
				in.ShippingAddress.ZipCode == "N1 9GU" &&
				in.Payment.CardNumber == "4242 4242 4242 4242"
		})).
		Return(order, nil)

	rec := serve(http.MethodPost, "/checkout", "/checkout", validCheckoutBody, h.PlaceOrder,
		withCartSession(testSessionID), withUser(userID))

	var got entity.Order
	env := decodeEnvelope(t, rec, &got)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, order.ID, got.ID)
	assert.True(t, got.Total.Equal(order.Total))
	assert.Equal(t, "Card ending in 4242", got.PaymentMethod)
	assert.NotContains(t, rec.Body.String(), "4242 4242 4242 4242")
}

func TestCheckoutHandler_PlaceOrder_EmptyCart(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)

	uc.EXPECT().PlaceOrder(mock.Anything, testSessionID, mock.Anything).Return(nil, domainerrors.ErrCartEmpty)

	rec := serve(http.MethodPost, "/checkout", "/checkout", validCheckoutBody, h.PlaceOrder, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "CART_EMPTY", env.Error.Code)
}

func TestCheckoutHandler_PlaceOrder_PaymentDeclined(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)

	uc.EXPECT().PlaceOrder(mock.Anything, testSessionID, mock.Anything).Return(nil, domainerrors.ErrPaymentDeclined)

	rec := serve(http.MethodPost, "/checkout", "/checkout", validCheckoutBody, h.PlaceOrder, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "PAYMENT_DECLINED", env.Error.Code)
}

func TestCheckoutHandler_PlaceOrder_ValidationFailure(t *testing.T) {
	h, _ := createTestCheckoutHandler(t)

	rec := serve(http.MethodPost, "/checkout", "/checkout",
		`{"contact":{"first_name":"Ada","last_name":"Lovelace","email":"not-an-email"}}`,
		h.PlaceOrder, withCartSession(testSessionID))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "contact.email must be a valid email")
	assert.Contains(t, env.Error.Details, "shipping_address.city is required")
	assert.Contains(t, env.Error.Details, "payment.card_number is required")
}

func TestCheckoutHandler_GetConfirmation(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)
	order := newHandlerTestOrder()

	uc.EXPECT().
		GetConfirmation(mock.Anything, order.ID, usecase.ConfirmationViewer{SessionID: testSessionID}).
		Return(order, nil)

	rec := serve(http.MethodGet, "/checkout/confirmations/:id", "/checkout/confirmations/"+order.ID.String(), "", h.GetConfirmation,
		withCartSession(testSessionID))

	var got entity.Order
	decodeEnvelope(t, rec, &got)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, order.ID, got.ID)
}

func TestCheckoutHandler_GetConfirmation_PassesSignedInUser(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)
	order := newHandlerTestOrder()
	userID := uuid.New()

	uc.EXPECT().
		GetConfirmation(mock.Anything, order.ID, usecase.ConfirmationViewer{UserID: &userID}).
		Return(order.Redacted(), nil)

	rec := serve(http.MethodGet, "/checkout/confirmations/:id", "/checkout/confirmations/"+order.ID.String(), "", h.GetConfirmation,
		withUser(userID))

	var got entity.Order
	decodeEnvelope(t, rec, &got)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.ShippingAddress.Address)
}

func TestCheckoutHandler_GetConfirmation_InvalidID(t *testing.T) {
	h, _ := createTestCheckoutHandler(t)

	rec := serve(http.MethodGet, "/checkout/confirmations/:id", "/checkout/confirmations/latest", "", h.GetConfirmation)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ORDER_ID", env.Error.Code)
}

func TestCheckoutHandler_GetConfirmation_NotFound(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)
	orderID := uuid.New()

	uc.EXPECT().GetConfirmation(mock.Anything, orderID, mock.Anything).Return(nil, domainerrors.ErrOrderNotFound)

	rec := serve(http.MethodGet, "/checkout/confirmations/:id", "/checkout/confirmations/"+orderID.String(), "", h.GetConfirmation)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
}

func TestCheckoutHandler_ConfirmationQR(t *testing.T) {
	h, uc := createTestCheckoutHandler(t)
	orderID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	uc.EXPECT().ConfirmationQR(mock.Anything, orderID).Return(png, nil)

	rec := serve(http.MethodGet, "/checkout/confirmations/:id/qr", "/checkout/confirmations/"+orderID.String()+"/qr", "", h.ConfirmationQR)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
